package models

// Preset is the coarse visibility choice offered in the admin editors.
// One select per item replaces three audience checkboxes plus a hidden
// toggle; presets expand to a concrete Visibility on save and are derived
// back from stored state when an editor loads.
type Preset string

const (
	PresetEveryone         Preset = "everyone"
	PresetGeneralCompany   Preset = "gen_comp"
	PresetGeneralFreelance Preset = "gen_free"
	PresetCompanyFreelance Preset = "comp_free"
	PresetOnlyGeneral      Preset = "only_gen"
	PresetOnlyCompany      Preset = "only_comp"
	PresetOnlyFreelance    Preset = "only_free"
	PresetHidden           Preset = "hidden"
)

// Presets lists every preset in the order the admin select shows them.
var Presets = []Preset{
	PresetEveryone,
	PresetGeneralCompany,
	PresetGeneralFreelance,
	PresetCompanyFreelance,
	PresetOnlyGeneral,
	PresetOnlyCompany,
	PresetOnlyFreelance,
	PresetHidden,
}

// presetAudiences maps each visible preset to its audience set.
var presetAudiences = map[Preset]AudienceList{
	PresetEveryone:         {AudienceGeneral, AudienceCompany, AudienceFreelance},
	PresetGeneralCompany:   {AudienceGeneral, AudienceCompany},
	PresetGeneralFreelance: {AudienceGeneral, AudienceFreelance},
	PresetCompanyFreelance: {AudienceCompany, AudienceFreelance},
	PresetOnlyGeneral:      {AudienceGeneral},
	PresetOnlyCompany:      {AudienceCompany},
	PresetOnlyFreelance:    {AudienceFreelance},
}

// Valid reports whether p is one of the eight known presets.
func (p Preset) Valid() bool {
	if p == PresetHidden {
		return true
	}
	_, ok := presetAudiences[p]
	return ok
}

// Label returns the human-readable option text for the admin select.
func (p Preset) Label() string {
	switch p {
	case PresetEveryone:
		return "Everyone (General + Company + Freelance)"
	case PresetGeneralCompany:
		return "General + Company"
	case PresetGeneralFreelance:
		return "General + Freelance"
	case PresetCompanyFreelance:
		return "Company + Freelance"
	case PresetOnlyGeneral:
		return "Only General"
	case PresetOnlyCompany:
		return "Only Company"
	case PresetOnlyFreelance:
		return "Only Freelance"
	case PresetHidden:
		return "Hidden"
	default:
		return string(p)
	}
}

// State expands the preset into the concrete Visibility stored on the item.
// Hidden clears the audience list to keep stored state deterministic.
// Unknown presets expand like everyone, mirroring PresetFor's fallback.
func (p Preset) State() Visibility {
	if p == PresetHidden {
		return Visibility{IsVisible: false, Audiences: AudienceList{}}
	}
	audiences, ok := presetAudiences[p]
	if !ok {
		audiences = presetAudiences[PresetEveryone]
	}
	// Copy so callers can't mutate the shared table.
	out := make(AudienceList, len(audiences))
	copy(out, audiences)
	return Visibility{IsVisible: true, Audiences: out}
}

// PresetFor derives the preset matching a stored Visibility. A hidden item
// always reports hidden regardless of its audience list. Visible items are
// matched by set membership, widest combination first, so duplicates and
// ordering in the stored list don't matter. Combinations outside the table
// (including a nil legacy list) report everyone — a defined fallback, not
// an error.
func PresetFor(v Visibility) Preset {
	if !v.IsVisible {
		return PresetHidden
	}

	set := v.Audiences
	switch {
	case set.ContainsAll(AudienceGeneral, AudienceCompany, AudienceFreelance):
		return PresetEveryone
	case set.ContainsAll(AudienceGeneral, AudienceCompany):
		return PresetGeneralCompany
	case set.ContainsAll(AudienceGeneral, AudienceFreelance):
		return PresetGeneralFreelance
	case set.ContainsAll(AudienceCompany, AudienceFreelance):
		return PresetCompanyFreelance
	case set.Contains(AudienceGeneral):
		return PresetOnlyGeneral
	case set.Contains(AudienceCompany):
		return PresetOnlyCompany
	case set.Contains(AudienceFreelance):
		return PresetOnlyFreelance
	}
	return PresetEveryone
}
