package index

import "search-sync/core/webflow"

// Field access helpers for the raw CMS field bags. Output fields are built
// from explicit ordered candidate lists (collections name the same concept
// differently), resolved by a generic first-present rule.

// FirstString returns the first non-empty string among the candidate fields,
// or "" when none is present.
func FirstString(item webflow.Item, candidates ...string) string {
	for _, key := range candidates {
		if s, ok := item[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// OptString is FirstString with a null default instead of "".
func OptString(item webflow.Item, candidates ...string) *string {
	if s := FirstString(item, candidates...); s != "" {
		return &s
	}
	return nil
}

// FirstImageURL returns the url of the first candidate field holding a CMS
// image object ({"url": ...}), or null when none resolves.
func FirstImageURL(item webflow.Item, candidates ...string) *string {
	for _, key := range candidates {
		if url := imageURL(item[key]); url != nil {
			return url
		}
	}
	return nil
}

// imageURL extracts a non-empty url from a CMS image object.
func imageURL(value any) *string {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	if url, ok := obj["url"].(string); ok && url != "" {
		return &url
	}
	return nil
}
