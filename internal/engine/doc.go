// Package engine materializes decoded records into a target model.
//
// A Session resolves one record at a time:
//
//  1. the record type must match the type the caller expects
//  2. records of deduplicated categories (materials, constructions, schedule
//     type limits, schedules) are looked up by name first and reused untouched
//  3. every name reference is resolved depth-first, from the registry or from
//     the pending records of the session input, before the record itself
//  4. the resolver registered for the record type creates the target object,
//     substituting schema defaults for absent fields
//  5. nested records (a face's apertures and doors) are materialized after
//     their parent and attached to it
//
// Materialization of one entity is all-or-nothing: if anything in its subtree
// fails, every object created for it is removed from the target model and
// nothing is registered. Dependencies that materialized on their own stay.
//
// Engine.Translate runs a whole input document (a record, an array of records
// or a Model document) through validation, decoding and materialization.
package engine
