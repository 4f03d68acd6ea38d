// Package webhook exposes the CMS-facing trigger endpoint.
//
// One route, POST /webhook/sync. A request carrying the correct shared secret
// in X-Webhook-Secret emits a single repository_dispatch event that starts a
// full index rebuild; a mismatch is a 401 with no dispatch, any other method
// is a 405 without secret inspection, and a misconfigured or failing dispatch
// is a 500. The receiver itself holds no state and performs none of the sync
// logic.
package webhook
