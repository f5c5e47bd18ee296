// Package library persists the track catalog, semantic tags, the virtual
// folder taxonomy, and folder membership in SQLite.
//
// The Store is the single source of truth for taxonomy semantics: folder
// moves run through a cycle guard, deletes refuse folders with children,
// and filing is append-ordered and idempotent. Folder membership carries no
// foreign key to folders on purpose; deleting a folder orphans its
// membership rows instead of cascading.
package library
