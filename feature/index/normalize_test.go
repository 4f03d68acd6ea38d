package index_test

import (
	"testing"

	"search-sync/core/webflow"
	"search-sync/feature/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogCollection() index.Collection {
	return index.Collection{Key: "blog", ID: "blog-col", PathPrefix: "/blog/"}
}

func fullLookups() index.Lookups {
	photo := "https://cdn.example.com/ada.png"
	return index.Lookups{
		ResourceTypes: index.Lookup{
			"rt-1": {Name: "Article"},
			"rt-2": {Name: "Webinar"},
		},
		Authors: index.Lookup{
			"auth-1": {Name: "Ada Example", Extra: map[string]*string{"photo": &photo}},
			"auth-2": {Name: "", Extra: map[string]*string{"photo": nil}},
		},
		UseCases: index.Lookup{
			"uc-1": {Name: "Forecasting"},
			"uc-2": {Name: "Planning"},
		},
		Industries: index.Lookup{
			"ind-1": {Name: "Retail"},
		},
	}
}

func TestNormalizeFullItem(t *testing.T) {
	item := webflow.Item{
		"_id":            "post-1",
		"name":           "Forecast Deep Dive",
		"slug":           "forecast-deep-dive",
		"excerpt":        "A deep dive.",
		"image":          map[string]any{"url": "https://cdn.example.com/cover.png"},
		"publish-date":   "2024-03-01T00:00:00Z",
		"resource-types": "rt-1",
		"author":         "auth-1",
		"use-cases":      []any{"uc-2", "uc-1"},
		"industries":     []any{"ind-1", "ind-404"},
	}

	got := index.Normalize(item, blogCollection(), fullLookups())

	assert.Equal(t, "post-1", got.ID)
	assert.Equal(t, "blog", got.Collection)
	assert.Equal(t, "Forecast Deep Dive", got.Title)
	assert.Equal(t, "forecast-deep-dive", got.Slug)
	assert.Equal(t, "/blog/forecast-deep-dive", got.URL)
	assert.Equal(t, "A deep dive.", got.Excerpt)

	require.NotNil(t, got.ResourceType)
	assert.Equal(t, "Article", *got.ResourceType)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/cover.png", *got.Thumbnail)
	require.NotNil(t, got.PublishedDate)
	assert.Equal(t, "2024-03-01T00:00:00Z", *got.PublishedDate)

	require.NotNil(t, got.Author)
	require.NotNil(t, got.Author.Name)
	assert.Equal(t, "Ada Example", *got.Author.Name)
	require.NotNil(t, got.Author.Photo)
	assert.Equal(t, "https://cdn.example.com/ada.png", *got.Author.Photo)

	assert.Equal(t, []string{"Planning", "Forecasting"}, got.UseCases)
	assert.Equal(t, []string{"Retail"}, got.Industries)
}

func TestNormalizeFallbackChains(t *testing.T) {
	// Both resource type spellings populated: the plural field wins.
	item := webflow.Item{
		"_id":            "post-2",
		"resource-types": "rt-1",
		"resource-type":  "rt-2",
		"title":          "Fallback Title",
		"post-summary":   "Summary text",
		"thumbnail":      map[string]any{"url": "https://cdn.example.com/t.png"},
		"published-date": "2023-12-24",
	}

	got := index.Normalize(item, blogCollection(), fullLookups())

	require.NotNil(t, got.ResourceType)
	assert.Equal(t, "Article", *got.ResourceType)
	assert.Equal(t, "Fallback Title", got.Title)
	assert.Equal(t, "Summary text", got.Excerpt)
	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "https://cdn.example.com/t.png", *got.Thumbnail)
	require.NotNil(t, got.PublishedDate)
	assert.Equal(t, "2023-12-24", *got.PublishedDate)
}

func TestNormalizeEmptyItemDefaults(t *testing.T) {
	got := index.Normalize(webflow.Item{"_id": "post-3"}, blogCollection(), fullLookups())

	// Empty-string defaults
	assert.Equal(t, "", got.Title)
	assert.Equal(t, "", got.Slug)
	assert.Equal(t, "", got.Excerpt)
	// Missing slug still yields the prefix-only path, never a null url
	assert.Equal(t, "/blog/", got.URL)
	// Null defaults
	assert.Nil(t, got.ResourceType)
	assert.Nil(t, got.Thumbnail)
	assert.Nil(t, got.PublishedDate)
	// No author reference means a null author, not an object of nulls
	assert.Nil(t, got.Author)
	// Reference arrays are empty, not null
	require.NotNil(t, got.UseCases)
	assert.Empty(t, got.UseCases)
	require.NotNil(t, got.Industries)
	assert.Empty(t, got.Industries)
}

func TestNormalizeAuthorFieldsIndependentlyNull(t *testing.T) {
	// auth-2 exists but has neither a usable name nor a photo: the author
	// object is present with both fields null.
	item := webflow.Item{"_id": "post-4", "author": "auth-2"}
	got := index.Normalize(item, blogCollection(), fullLookups())

	require.NotNil(t, got.Author)
	assert.Nil(t, got.Author.Name)
	assert.Nil(t, got.Author.Photo)

	// Unknown author id still yields a present author object with null fields
	item = webflow.Item{"_id": "post-5", "author": "auth-404"}
	got = index.Normalize(item, blogCollection(), fullLookups())
	require.NotNil(t, got.Author)
	assert.Nil(t, got.Author.Name)
	assert.Nil(t, got.Author.Photo)
}

func TestNormalizeUnresolvableResourceType(t *testing.T) {
	// A present but unknown reference resolves to null; it does not fall
	// through to the singular field.
	item := webflow.Item{
		"_id":            "post-6",
		"resource-types": "rt-404",
		"resource-type":  "rt-2",
	}
	got := index.Normalize(item, blogCollection(), fullLookups())
	assert.Nil(t, got.ResourceType)
}
