// Package webflow provides a read-only client for the Webflow CMS API.
//
// It wraps the paginated collection items endpoint behind a single FetchAll
// call that walks pages of 100 items until a short page signals exhaustion.
// Items are returned as untyped field bags (Item) because every collection
// carries its own field schema; the index feature applies the per-collection
// interpretation.
//
// # Client Interface
//
// The Client interface abstracts the CMS, making it easy to mock collection
// reads for unit testing (as seen in core/webflow/mocks).
//
// # Failure Model
//
// Any non-success response aborts the whole collection fetch with an
// UpstreamError carrying the collection identifier, status code and response
// body. There are no retries; resilience comes from re-running the sync.
package webflow
