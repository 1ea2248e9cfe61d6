package arabic

import "testing"

func TestNormalizeSkeleton(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"strips_harakat", "بِسْمِ", "بسم"},
		{"alef_wasla_and_dagger_alef", "ٱلرَّحْمَٰنِ", "الرحمن"},
		{"hamza_variants", "أَإِآ", "ااا"},
		{"teh_marbuta_and_maqsura", "رَحْمَةً عَلَى", "رحمه علي"},
		{"tatweel", "الـــله", "الله"},
		{"punctuation_and_spaces", "  قُلْ،   هُوَ ۝ ", "قل هو"},
		{"waqf_sign", "رَيْبَ ۛ فِيهِ", "ريب فيه"},
		{"presentation_forms", "ﻻ", "لا"},
		{"unknown_passthrough", "abc 123", "abc 123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in, Skeleton); got != tt.want {
				t.Errorf("Normalize(%q, Skeleton) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFull(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"keeps_harakat", "بِسْمِ", "بِسْمِ"},
		{"strips_punctuation", "  قُلْ،   هُوَ. ", "قُلْ هُوَ"},
		{"strips_tatweel", "اللـه", "الله"},
		{"keeps_dagger_alef", "هَٰذَا", "هَٰذَا"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in, Full); got != tt.want {
				t.Errorf("Normalize(%q, Full) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ"
	for _, profile := range []Profile{Skeleton, Full} {
		once := Normalize(in, profile)
		if twice := Normalize(once, profile); twice != once {
			t.Fatalf("expected idempotent normalization for profile %d: %q != %q", profile, once, twice)
		}
	}
}
