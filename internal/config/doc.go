// Package config resolves the scraper's runtime configuration.
//
// A sparse [Document] (built from a file, the environment and flags, see
// [LoadDocument]) is walked by [Resolve] against a static schema. Every leaf
// that was not supplied takes its entry from the default table
// ([DefaultValue]); supplied values are coerced to the field type and win
// even when they are false, zero or empty. The only leaf without a default
// is the Application Insights instrumentation key, which stays nil.
//
// Resolution is a pure function of the document: it performs no I/O, holds
// no state and is safe to call concurrently.
package config
