// Command soundvault is the CLI for the tag-driven audio library: it
// catalogs tracks, manages the virtual folder taxonomy, suggests folders
// from semantic tags, and batch-files confident matches.
package main
