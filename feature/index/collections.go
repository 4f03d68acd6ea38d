package index

import "search-sync/core/webflow"

// Collection is one configured content collection.
type Collection struct {
	// Key tags every output item with its source collection.
	Key string
	// ID is the CMS collection identifier.
	ID string
	// PathPrefix is prepended to the item slug to form the site URL.
	PathPrefix string
}

// Collection keys. Every output item's Collection field is one of these.
const (
	CollectionBlog        = "blog"
	CollectionCaseStudies = "case-studies"
	CollectionResources   = "resources"
)

// ContentCollections returns the content collections in the fixed order they
// are fetched and emitted. The order is part of the output contract.
func ContentCollections(cfg webflow.Config) []Collection {
	return []Collection{
		{Key: CollectionBlog, ID: cfg.BlogCollectionID, PathPrefix: "/blog/"},
		{Key: CollectionCaseStudies, ID: cfg.CaseStudyCollectionID, PathPrefix: "/case-studies/"},
		{Key: CollectionResources, ID: cfg.ResourceCollectionID, PathPrefix: "/resources/"},
	}
}
