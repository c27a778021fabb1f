// Package models defines the portfolio content types: audiences, the
// visibility rules applied to every section, the section payloads stored
// as JSON documents, heroes, and contact submissions.
package models

// Audience identifies which kind of visitor the site is being shown to.
// It is carried as a query parameter on the public page and stamped onto
// content items to control what each visitor type sees.
type Audience string

const (
	AudienceGeneral   Audience = "general"
	AudienceCompany   Audience = "company"
	AudienceFreelance Audience = "freelance"
)

// ParseAudience maps a raw query value to an Audience. Unknown or empty
// values fall back to the general audience.
func ParseAudience(raw string) Audience {
	switch Audience(raw) {
	case AudienceCompany:
		return AudienceCompany
	case AudienceFreelance:
		return AudienceFreelance
	default:
		return AudienceGeneral
	}
}

// Valid reports whether a is one of the three known audiences.
func (a Audience) Valid() bool {
	return a == AudienceGeneral || a == AudienceCompany || a == AudienceFreelance
}

// AllAudiences returns the full audience set in canonical order.
func AllAudiences() AudienceList {
	return AudienceList{AudienceGeneral, AudienceCompany, AudienceFreelance}
}

// AudienceList is the set of audiences an item is targeted at.
//
// The nil list and the empty list mean different things and both occur in
// stored documents: a nil list (field absent or JSON null) marks a record
// created before audience targeting existed and is treated as visible to
// every audience, while an explicitly empty list hides the item from
// everyone. Serialization must keep the two apart, so the field is never
// tagged omitempty — encoding/json writes nil as null and a non-nil empty
// slice as [], which round-trips the distinction.
type AudienceList []Audience

// Contains reports whether a is a member of the list.
func (l AudienceList) Contains(a Audience) bool {
	for _, v := range l {
		if v == a {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every given audience is a member of the list.
func (l AudienceList) ContainsAll(audiences ...Audience) bool {
	for _, a := range audiences {
		if !l.Contains(a) {
			return false
		}
	}
	return true
}
