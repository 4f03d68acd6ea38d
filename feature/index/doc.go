// Package index builds the denormalized search index from the CMS collections.
//
// A run proceeds in three passes:
//
//  1. The reference collections (authors, resource types, use cases,
//     industries) are fetched and projected into in-memory Lookups, rebuilt
//     from scratch every run.
//  2. Each content collection is fetched in a fixed order and every raw record
//     is flattened by Normalize, resolving reference fields against the
//     Lookups. Unresolvable references are dropped, not null-filled.
//  3. The accumulated items are wrapped into a Document whose totalItems is
//     derived from the item count.
//
// Normalization is total: malformed or missing fields degrade to documented
// defaults ("" for title/slug/excerpt, null for thumbnail, publishedDate,
// resourceType and author). Any upstream fetch error aborts the whole run so
// a partially fresh index is never produced.
package index
