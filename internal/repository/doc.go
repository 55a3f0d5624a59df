// Package repository implements data access for themes and extensions.
//
// Repositories speak SurrealQL through the database.Database interface and
// return domain types from internal/model. Records are keyed by their
// application id (the SurrealDB record key), so "extensions:ext-1" surfaces
// to callers as plain "ext-1".
//
// Lookup methods return (nil, nil) when no record matches; callers translate
// that into their own typed not-found errors. Mutations are plain UPSERTs —
// insert-or-replace keyed by id — with no optimistic concurrency.
package repository
