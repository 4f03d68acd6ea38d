// Package publish persists the serialized search index document.
//
// Three targets exist:
//
//   - LocalTarget: atomic write to a file on disk. Mandatory; its failure
//     fails the run.
//   - GitHubTarget: commit to a repository file via the contents API
//     (read-current-SHA then create-or-update). Optional.
//   - MirrorTarget: upload to an S3-compatible bucket. Optional.
//
// The Service applies the publish policy: a local failure is fatal, a remote
// failure is logged and reported but does not fail the process, since the
// next scheduled rebuild republishes the same document.
package publish
