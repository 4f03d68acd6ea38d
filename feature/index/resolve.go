package index

// ResolveRef resolves a single reference field value to a display name.
// It returns nil when the value is not an identifier string, the identifier is
// absent from the lookup, or the matched record carries an empty name.
func ResolveRef(value any, lookup Lookup) *string {
	id, ok := value.(string)
	if !ok || id == "" {
		return nil
	}

	rec, ok := lookup[id]
	if !ok || rec.Name == "" {
		return nil
	}
	return &rec.Name
}

// ResolveRefs resolves a multi-reference field value to the ordered names of
// its resolvable identifiers. Non-slice input yields an empty slice, not an
// error. Unresolvable identifiers are dropped, never null-filled, so the
// result may be shorter than the input; relative order of the resolvable
// subset is preserved.
func ResolveRefs(value any, lookup Lookup) []string {
	names := []string{}

	ids, ok := value.([]any)
	if !ok {
		return names
	}

	for _, id := range ids {
		if name := ResolveRef(id, lookup); name != nil {
			names = append(names, *name)
		}
	}
	return names
}
