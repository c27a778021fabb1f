package models

import "testing"

// TestPresetState verifies the preset → state expansion table.
func TestPresetState(t *testing.T) {
	tests := []struct {
		preset    Preset
		isVisible bool
		audiences AudienceList
	}{
		{PresetEveryone, true, AudienceList{AudienceGeneral, AudienceCompany, AudienceFreelance}},
		{PresetGeneralCompany, true, AudienceList{AudienceGeneral, AudienceCompany}},
		{PresetGeneralFreelance, true, AudienceList{AudienceGeneral, AudienceFreelance}},
		{PresetCompanyFreelance, true, AudienceList{AudienceCompany, AudienceFreelance}},
		{PresetOnlyGeneral, true, AudienceList{AudienceGeneral}},
		{PresetOnlyCompany, true, AudienceList{AudienceCompany}},
		{PresetOnlyFreelance, true, AudienceList{AudienceFreelance}},
		{PresetHidden, false, AudienceList{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			got := tt.preset.State()
			if got.IsVisible != tt.isVisible {
				t.Errorf("IsVisible = %v, want %v", got.IsVisible, tt.isVisible)
			}
			if len(got.Audiences) != len(tt.audiences) {
				t.Fatalf("audiences = %v, want %v", got.Audiences, tt.audiences)
			}
			for _, a := range tt.audiences {
				if !got.Audiences.Contains(a) {
					t.Errorf("audiences %v missing %q", got.Audiences, a)
				}
			}
			// Hidden must clear the list, never leave it nil.
			if tt.preset == PresetHidden && got.Audiences == nil {
				t.Error("hidden state has nil audiences, want explicit empty list")
			}
		})
	}
}

// TestPresetRoundTrip checks that expanding a preset and mapping the state
// back yields the same preset, and that the round-tripped state filters
// identically for every audience.
func TestPresetRoundTrip(t *testing.T) {
	for _, p := range Presets {
		t.Run(string(p), func(t *testing.T) {
			state := p.State()
			back := PresetFor(state)
			if back != p {
				t.Fatalf("PresetFor(%v.State()) = %q, want %q", p, back, p)
			}

			again := back.State()
			for _, aud := range AllAudiences() {
				if state.ShownTo(aud) != again.ShownTo(aud) {
					t.Errorf("audience %q: filter outcome changed across round trip", aud)
				}
			}
		})
	}
}

// TestPresetForEdgeCases covers the defined fallbacks: hidden wins over
// any stored list, and unrecognized combinations report everyone.
func TestPresetForEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		v    Visibility
		want Preset
	}{
		{name: "hidden ignores stored audiences", v: Visibility{IsVisible: false, Audiences: AudienceList{AudienceGeneral}}, want: PresetHidden},
		{name: "legacy nil list reports everyone", v: Visibility{IsVisible: true}, want: PresetEveryone},
		{name: "explicit empty reports everyone fallback", v: Visibility{IsVisible: true, Audiences: AudienceList{}}, want: PresetEveryone},
		{name: "duplicates don't matter", v: Visibility{IsVisible: true, Audiences: AudienceList{AudienceGeneral, AudienceGeneral, AudienceCompany}}, want: PresetGeneralCompany},
		{name: "order doesn't matter", v: Visibility{IsVisible: true, Audiences: AudienceList{AudienceFreelance, AudienceGeneral, AudienceCompany}}, want: PresetEveryone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PresetFor(tt.v); got != tt.want {
				t.Errorf("PresetFor = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPresetValid checks validity for known and unknown values.
func TestPresetValid(t *testing.T) {
	for _, p := range Presets {
		if !p.Valid() {
			t.Errorf("preset %q reported invalid", p)
		}
	}
	if Preset("vip_only").Valid() {
		t.Error("unknown preset reported valid")
	}
}
