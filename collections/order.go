package collections

import (
	"sort"

	"github.com/mzakariabigdata/imobject"
	"github.com/mzakariabigdata/imobject/internal/attr"
)

// orderOp names ordering failures in type mismatch errors.
const orderOp = "order_by"

// compareKeys orders two sort keys. Lists compare element by element, so
// a key function may return []any{a, b} to sort on several criteria.
func compareKeys(a, b any) (int, error) {
	ka, kb := attr.KindOf(a), attr.KindOf(b)
	if ka == attr.KindList && kb == attr.KindList {
		return compareLists(listOf(a), listOf(b))
	}
	if ka != kb {
		return 0, &imobject.TypeMismatchError{Op: orderOp, Expected: ka.String(), Found: kb.String()}
	}
	c, ok := attr.Compare(a, b)
	if !ok {
		return 0, &imobject.TypeMismatchError{
			Op:     orderOp,
			Found:  ka.String(),
			Reason: "cannot order " + ka.String() + " keys",
		}
	}
	return c, nil
}

func compareLists(a, b []any) (int, error) {
	for i := range min(len(a), len(b)) {
		c, err := compareKeys(a[i], b[i])
		if err != nil || c != 0 {
			return c, err
		}
	}
	switch {
	case len(a) < len(b):
		return -1, nil
	case len(a) > len(b):
		return 1, nil
	}
	return 0, nil
}

func listOf(v any) []any {
	if l, ok := attr.Normalize(v).([]any); ok {
		return l
	}
	return nil
}

// sortByKeys stably sorts items by keys[i]. With reverse, larger keys
// come first and equal keys keep their original order. Every pair of keys
// must be comparable.
func sortByKeys[T any](items []T, keys []any, reverse bool) ([]T, error) {
	for i := 1; i < len(keys); i++ {
		if _, err := compareKeys(keys[0], keys[i]); err != nil {
			return nil, err
		}
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	var sortErr error
	sort.SliceStable(idx, func(i, j int) bool {
		c, err := compareKeys(keys[idx[i]], keys[idx[j]])
		if err != nil && sortErr == nil {
			sortErr = err
		}
		if reverse {
			return c > 0
		}
		return c < 0
	})
	if sortErr != nil {
		return nil, sortErr
	}

	out := make([]T, len(items))
	for i, k := range idx {
		out[i] = items[k]
	}
	return out, nil
}
