// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the search index document can be mirrored to
// any S3-compatible bucket alongside the primary GitHub publish target. The
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the mirror bucket if needed.
//   - PutObject: Uploads the serialized index document.
package storage
