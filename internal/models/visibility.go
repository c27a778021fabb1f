package models

// Visibility is embedded in every audience-scoped content item. It pairs
// the master on/off switch with the optional audience targeting list.
type Visibility struct {
	IsVisible bool `json:"isVisible"`

	// Audiences is nil for legacy items (shown to all audiences) and an
	// explicit empty list for items shown to nobody. See AudienceList.
	Audiences AudienceList `json:"audiences"`
}

// ShownTo decides whether the item is rendered for the given audience.
// IsVisible false always wins; a nil audience list means the item predates
// targeting and is shown to everyone; an explicit empty list hides it from
// everyone.
func (v Visibility) ShownTo(aud Audience) bool {
	if !v.IsVisible {
		return false
	}
	if v.Audiences == nil {
		return true
	}
	return v.Audiences.Contains(aud)
}

// shownTo is implemented by every item type that can be audience-filtered.
type shownTo interface {
	ShownTo(Audience) bool
}

// filterShown returns the items visible to the given audience, preserving
// order. The caller is responsible for parent-level short-circuiting — a
// hidden section or category must not reach this call at all.
func filterShown[T shownTo](items []T, aud Audience) []T {
	var out []T
	for _, it := range items {
		if it.ShownTo(aud) {
			out = append(out, it)
		}
	}
	return out
}
