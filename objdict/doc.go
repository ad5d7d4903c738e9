// Package objdict provides ObjDict, an ordered string-keyed container
// whose entries are read and written as attributes.
//
// # Wrapping
//
// Every value stored in an ObjDict goes through [Wrap]: nested maps become
// *ObjDict and slices become *collections.Collection[any], so a document
// loaded from YAML or JSON can be navigated and queried without type
// assertions on map[string]any:
//
//	cfg, _ := objdict.FromYAML(data)
//	host, _ := cfg.GetPath("server.host")
//	admins, _ := cfg.Get("users")
//	found, _ := admins.(*collections.Collection[any]).Where(query.Shorthand{"role": "admin"})
//
// # Order
//
// Keys keep insertion order, which is also the order used by Keys, All,
// JSON and YAML output. [From] receives an unordered Go map and inserts
// its keys sorted; [FromPairs], [FromYAML] and [FromJSON] keep source
// order.
//
// # Plain values
//
// [ObjDict.ToPlain] unwraps nested ObjDicts into map[string]any. A nested
// collection becomes a []any of the same elements: ObjDicts inside lists
// stay wrapped.
//
// # Dot paths
//
//	d.SetPath("user.address.city", "London")
//	d.GetPath("user.address.city")  // "London", nil
//	d.Dot()                         // {"user.address.city": "London"}
package objdict
