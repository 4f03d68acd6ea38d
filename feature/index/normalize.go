package index

import (
	"search-sync/core/webflow"
	"search-sync/feature/index/models"
)

// Lookups bundles the reference lookups a run resolves items against.
type Lookups struct {
	ResourceTypes Lookup
	Authors       Lookup
	UseCases      Lookup
	Industries    Lookup
}

// Raw field names of the author lookup projections.
const (
	authorField      = "author"
	authorPhotoField = "photo"
)

// Normalize maps one raw CMS record into the unified index item shape. It is
// total: missing or malformed fields degrade to "" or null per field, never
// to an error. Candidate field lists absorb the per-collection naming
// variance (e.g. blog posts say "post-summary" where resources say
// "description").
func Normalize(item webflow.Item, col Collection, lookups Lookups) models.Item {
	slug := FirstString(item, "slug")

	return models.Item{
		ID:            item.ID(),
		Collection:    col.Key,
		ResourceType:  resolveResourceType(item, lookups.ResourceTypes),
		Title:         FirstString(item, "name", "title"),
		Slug:          slug,
		URL:           col.PathPrefix + slug,
		Excerpt:       FirstString(item, "excerpt", "post-summary", "description"),
		Thumbnail:     FirstImageURL(item, "image", "thumbnail", "featured-image"),
		PublishedDate: OptString(item, "publish-date", "published-date", "date"),
		Author:        resolveAuthor(item, lookups.Authors),
		UseCases:      ResolveRefs(item["use-cases"], lookups.UseCases),
		Industries:    ResolveRefs(item["industries"], lookups.Industries),
	}
}

// resolveResourceType resolves the resource type reference, tolerating the
// plural/singular field naming split across collections. The first present
// field value wins; an unresolvable reference yields null rather than falling
// through to the next candidate.
func resolveResourceType(item webflow.Item, lookup Lookup) *string {
	ref := FirstString(item, "resource-types", "resource-type")
	return ResolveRef(ref, lookup)
}

// resolveAuthor builds the author object only when the raw item carries an
// author reference. Name and photo come from the lookup independently, so
// either may be null on a present author.
func resolveAuthor(item webflow.Item, authors Lookup) *models.Author {
	id, ok := item[authorField].(string)
	if !ok || id == "" {
		return nil
	}

	author := &models.Author{
		Name: ResolveRef(id, authors),
	}
	if rec, ok := authors[id]; ok {
		author.Photo = rec.Extra[authorPhotoField]
	}
	return author
}
