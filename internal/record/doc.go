// Package record defines the typed entity records accepted by the translator
// and decodes them from JSON.
//
// Every record carries a `type` discriminator and a `name`. Optional values
// are pointers so that an absent field can be told apart from a zero value;
// the engine substitutes schema defaults for absent fields.
//
// Input documents come in three shapes, all handled by Split:
//
//   - a single record object
//   - an array of record objects
//   - a Model document whose properties.energy families and top-level faces
//     are flattened into one ordered batch
package record
