// Package nprop provides path-addressed access to heterogeneous in-memory
// document trees and a Mongo-style query engine for filtering them.
//
// A document tree is any mix of Mappings (map[string]any), Sequences
// ([]any), Records (host types implementing the Record interface, or
// struct pointers via reflection) and scalar leaves. All operations
// address locations with dot-delimited paths and mutate the caller's
// structure in place:
//
//	root := map[string]any{}
//	nprop.Set(root, "a.b.0.c", 5)
//	// root == map[string]any{"a": map[string]any{"b": []any{map[string]any{"c": 5}}}}
//
//	v, _ := nprop.Get(root, "a.b.0.c")
//
// A path segment consisting entirely of digits addresses a sequence index.
// When that collides with numeric field names, configure an index prefix:
//
//	nprop.Get(root, "users.#0.name", nprop.WithIndexPrefix("#"))
//
// Queries are nested Mappings combining logical operators ($and, $or,
// $not, $expr) with field-level conditions ($eq, $ne, $gt, $gte, $lt,
// $lte, $in, $nin, $len, $regex/$options):
//
//	q := nprop.Query{"age": map[string]any{"$gte": 21}}
//	adults, _ := nprop.FindAll(people, q)
//
// Creating operations (Set, Push) materialize missing intermediate
// containers. When an existing node has the wrong shape for the next
// segment, its content is discarded and the parent slot is given a fresh
// empty container of the required shape. This destructive coercion is
// documented behavior, not an error.
//
// The package performs no locking; callers must not mutate the same root
// concurrently from multiple goroutines during a call.
package nprop
