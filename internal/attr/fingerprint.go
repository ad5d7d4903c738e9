package attr

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/mzakariabigdata/imobject"
)

// Fingerprint hashes the normalized form of values. Values that are
// [Equal] element-wise produce the same fingerprint, so it can bucket
// tuples of maps or slices that Go cannot use as map keys. Distinct
// values may collide; callers confirm bucket members with [Equal].
func Fingerprint(values ...any) (uint64, error) {
	normalized := make([]any, len(values))
	for i, v := range values {
		normalized[i] = Normalize(v)
	}
	h, err := hashstructure.Hash(normalized, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot fingerprint value: %v", imobject.ErrInvalidArgument, err)
	}
	return h, nil
}
