package index

import (
	"context"

	"search-sync/core/webflow"
)

// RefRecord is the projection of one reference entity kept in memory for the
// duration of a run.
type RefRecord struct {
	// Name is the display name. Missing upstream name fields project to ""
	// (never null); the resolver treats "" as unresolvable downstream.
	Name string
	// Extra holds additional projected fields by field name. A missing or
	// unprojectable field is kept as a nil entry, preserved per key.
	Extra map[string]*string
}

// Lookup maps reference entity identifiers to their projected records. It is
// built fresh every run and read-only afterwards.
type Lookup map[string]RefRecord

// BuildLookup fetches a reference collection and projects it into a Lookup
// keyed by item identifier. nameField supplies the display name; extraFields
// are projected as optional strings (plain string fields or image objects).
// Fetch errors propagate unchanged.
func BuildLookup(ctx context.Context, client webflow.Client, collectionID, nameField string, extraFields ...string) (Lookup, error) {
	items, err := client.FetchAll(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	lookup := make(Lookup, len(items))
	for _, item := range items {
		rec := RefRecord{Name: FirstString(item, nameField)}

		if len(extraFields) > 0 {
			rec.Extra = make(map[string]*string, len(extraFields))
			for _, field := range extraFields {
				rec.Extra[field] = projectField(item[field])
			}
		}

		lookup[item.ID()] = rec
	}
	return lookup, nil
}

// projectField flattens a raw reference field value to an optional string.
func projectField(value any) *string {
	if s, ok := value.(string); ok && s != "" {
		return &s
	}
	return imageURL(value)
}
