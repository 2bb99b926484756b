// Package validate checks raw JSON records against the record schema before
// they are decoded.
//
// Validation never fails fast: every problem in the record is reported as a
// diagnostic with a field path such as "apertures[0].geometry.boundary".
// Only input that cannot be validated at all (unparseable JSON, a non-object
// root or an undeclared record type) is returned as an error.
package validate
