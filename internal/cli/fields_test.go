package cli

import (
	"testing"

	"github.com/muhasaba/muhasaba/internal/models"
)

func TestParseBoolField(t *testing.T) {
	cases := map[string]models.BoolField{
		"fasting":      models.FieldFasting,
		"FAST":         models.FieldFasting,
		"sawm":         models.FieldFasting,
		"qiyam":        models.FieldQiyam,
		"taraweeh":     models.FieldQiyam,
		"duha":         models.FieldDuha,
		"rawatib":      models.FieldRawatib,
		"charity":      models.FieldCharity,
		"sadaqah":      models.FieldCharity,
		"family":       models.FieldFamilyVisit,
		"family-visit": models.FieldFamilyVisit,
		" happiness ":  models.FieldHappiness,
		"feeding":      models.FieldFeeding,
		"iftar":        models.FieldFeeding,
	}
	for in, want := range cases {
		got, err := ParseBoolField(in)
		if err != nil {
			t.Errorf("ParseBoolField(%q) returned unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseBoolField(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "witr", "quran", "dhikr"} {
		if _, err := ParseBoolField(in); err == nil {
			t.Errorf("ParseBoolField(%q) did not error", in)
		}
	}
}

func TestParseDhikrSlot(t *testing.T) {
	cases := map[string]models.DhikrSlot{
		"morning": models.DhikrMorning,
		"AM":      models.DhikrMorning,
		"evening": models.DhikrEvening,
		"pm":      models.DhikrEvening,
	}
	for in, want := range cases {
		got, err := ParseDhikrSlot(in)
		if err != nil {
			t.Errorf("ParseDhikrSlot(%q) returned unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseDhikrSlot(%q) = %q, want %q", in, got, want)
		}
	}

	for _, in := range []string{"", "noon", "night"} {
		if _, err := ParseDhikrSlot(in); err == nil {
			t.Errorf("ParseDhikrSlot(%q) did not error", in)
		}
	}
}
