// Package factory builds object graphs from configuration trees.
//
// A configuration names a registered type, the params handed to its
// constructor, and any number of child slots:
//
//	type: Garage
//	params: {city: Lyon}
//	owner:
//	  type: Person
//	  params: {name: Eve}
//	cars:
//	  - {type: Car, params: {brand: Fiat, year: 2019}}
//	  - {type: Car, params: {brand: Audi, year: 2022}}
//
// The [Registry] maps type names to constructors. Building the tree
// above returns an [*Object] whose slot "owner" holds one *Object and
// whose slot "cars" holds a *collections.Collection[any], so children can
// be queried straight away:
//
//	garage, err := reg.BuildYAML(data)
//	cars, _ := garage.ChildList("cars")
//	recent, _ := cars.Where(query.Shorthand{"year__gte": 2020})
//
// Unknown types fail with [ErrUnknownType], which matches
// imobject.ErrInvalidArgument. Configs are validated with
// go-playground/validator before anything is constructed.
package factory
