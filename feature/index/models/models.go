package models

import "time"

// Author is the resolved author reference on an index item. Both fields come
// from the author lookup independently, so either may be null even when the
// raw item carried a valid author reference.
type Author struct {
	Name  *string `json:"name"`
	Photo *string `json:"photo"`
}

// Item is one denormalized, search-ready record. String fields default to ""
// and pointer fields to null; the distinction is part of the index contract
// and consumed by the site search frontend.
type Item struct {
	ID            string   `json:"id"`
	Collection    string   `json:"collection"`
	ResourceType  *string  `json:"resourceType"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	URL           string   `json:"url"`
	Excerpt       string   `json:"excerpt"`
	Thumbnail     *string  `json:"thumbnail"`
	PublishedDate *string  `json:"publishedDate"`
	Author        *Author  `json:"author"`
	UseCases      []string `json:"useCases"`
	Industries    []string `json:"industries"`
}

// Document is the full search index as persisted. It replaces the previous
// document wholesale on every successful run.
type Document struct {
	LastUpdated string `json:"lastUpdated"`
	TotalItems  int    `json:"totalItems"`
	Items       []Item `json:"items"`
}

// NewDocument wraps the accumulated items with metadata. TotalItems is always
// derived from the item count here so the totalItems == len(items) invariant
// cannot be violated by a caller.
func NewDocument(items []Item, now time.Time) *Document {
	if items == nil {
		items = []Item{}
	}
	return &Document{
		LastUpdated: now.UTC().Format(time.RFC3339),
		TotalItems:  len(items),
		Items:       items,
	}
}
