package cli

import (
	"fmt"
	"strings"

	"github.com/muhasaba/muhasaba/internal/models"
)

// ParseBoolField maps a user-supplied field name (with a few aliases) to
// the activity field enum.
func ParseBoolField(s string) (models.BoolField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fasting", "fast", "sawm":
		return models.FieldFasting, nil
	case "qiyam", "taraweeh":
		return models.FieldQiyam, nil
	case "duha":
		return models.FieldDuha, nil
	case "rawatib":
		return models.FieldRawatib, nil
	case "charity", "sadaqah":
		return models.FieldCharity, nil
	case "family", "family-visit", "familyvisit":
		return models.FieldFamilyVisit, nil
	case "happiness":
		return models.FieldHappiness, nil
	case "feeding", "iftar":
		return models.FieldFeeding, nil
	default:
		return "", fmt.Errorf("unknown activity field: %q", s)
	}
}

// ParseDhikrSlot maps a user-supplied session name to the slot enum.
func ParseDhikrSlot(s string) (models.DhikrSlot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "morning", "am":
		return models.DhikrMorning, nil
	case "evening", "pm":
		return models.DhikrEvening, nil
	default:
		return "", fmt.Errorf("unknown dhikr session: %q (expected morning or evening)", s)
	}
}
