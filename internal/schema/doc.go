// Package schema loads the record schema and answers default-value lookups.
//
// The schema is a YAML document that declares, per record type, the
// target-object category the type materializes into and its fields:
//
//	version: "1.0"
//	types:
//	  EnergyWindowMaterialGas:
//	    category: material
//	    fields:
//	      name: {kind: string}
//	      thickness: {kind: number, min: 0, exclusive_min: true, default: 0.0125}
//	      gas_type: {kind: enum, values: [Air, Argon, Krypton, Xenon], default: Air}
//
// # Defaults
//
// A field without a `default` key is mandatory. A field with `default: null`
// is optional and has no value to substitute: the facet is simply omitted.
// Any other default is substituted when the record leaves the field out.
//
// # Field kinds
//
//   - string, number, integer, boolean
//   - enum, enum_list: values restricted to `values`
//   - number_or_keyword: a number or one of the keywords in `values`
//   - number_list, point_list, array
//   - reference, reference_list: names of records of the `reference` category
//   - object, object_list: nested `fields`
//   - record_list: nested records of type `item`
//
// A default schema covering every supported record type is embedded and
// returned by Default.
package schema
