// Package rules holds the compiled-in tag vocabulary: the mapping rules
// that tie type:value tags to taxonomy folder paths and the ordered weight
// table that ranks tag types by specificity.
package rules
