// Package resolver turns a track's semantic tags into ranked folder
// suggestions. Curated mapping rules provide the primary evidence; a
// Jaccard similarity fallback over existing folder contents fills in when
// the rules leave slots open.
package resolver
