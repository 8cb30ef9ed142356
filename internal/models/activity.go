package models

// BoolField identifies one of the checkbox fields on a DailyActivity.
type BoolField string

const (
	FieldFasting     BoolField = "fasting"
	FieldQiyam       BoolField = "qiyam"
	FieldDuha        BoolField = "duha"
	FieldRawatib     BoolField = "rawatib"
	FieldCharity     BoolField = "charity"
	FieldFamilyVisit BoolField = "familyVisit"
	FieldHappiness   BoolField = "happiness"
	FieldFeeding     BoolField = "feeding"
)

// DhikrSlot identifies one of the two daily remembrance sessions.
type DhikrSlot string

const (
	DhikrMorning DhikrSlot = "dhikrMorning"
	DhikrEvening DhikrSlot = "dhikrEvening"
)

// PrayerFields are the checkbox fields counted toward the prayers percentage.
var PrayerFields = []BoolField{FieldFasting, FieldQiyam, FieldDuha, FieldRawatib}

// DeedFields are the checkbox fields counted toward the good-deeds percentage.
var DeedFields = []BoolField{FieldCharity, FieldFamilyVisit, FieldHappiness, FieldFeeding}

// DailyActivity is one record per day of the 30-day cycle. The Quran counter
// holds verses read that day; the dhikr counters hold free-form session
// counts where "0" or empty means not performed. All counters are stored as
// text and only parsed during aggregation.
type DailyActivity struct {
	Day          int    `json:"day"`
	Fasting      bool   `json:"fasting"`
	Qiyam        bool   `json:"qiyam"`
	Duha         bool   `json:"duha"`
	Rawatib      bool   `json:"rawatib"`
	Quran        string `json:"quran"`
	DhikrMorning string `json:"dhikrMorning"`
	DhikrEvening string `json:"dhikrEvening"`
	Charity      bool   `json:"charity"`
	FamilyVisit  bool   `json:"familyVisit"`
	Happiness    bool   `json:"happiness"`
	Feeding      bool   `json:"feeding"`
}

// NewDailyActivity returns the default record for a cycle day: all flags
// false, all counters "0".
func NewDailyActivity(day int) DailyActivity {
	return DailyActivity{
		Day:          day,
		Quran:        "0",
		DhikrMorning: "0",
		DhikrEvening: "0",
	}
}

// Flag returns the value of the named checkbox field. Unknown fields read
// as false.
func (a DailyActivity) Flag(field BoolField) bool {
	switch field {
	case FieldFasting:
		return a.Fasting
	case FieldQiyam:
		return a.Qiyam
	case FieldDuha:
		return a.Duha
	case FieldRawatib:
		return a.Rawatib
	case FieldCharity:
		return a.Charity
	case FieldFamilyVisit:
		return a.FamilyVisit
	case FieldHappiness:
		return a.Happiness
	case FieldFeeding:
		return a.Feeding
	default:
		return false
	}
}

// WithFlag returns a copy of the record with the named checkbox field set.
// The second return reports whether the field was recognized.
func (a DailyActivity) WithFlag(field BoolField, value bool) (DailyActivity, bool) {
	switch field {
	case FieldFasting:
		a.Fasting = value
	case FieldQiyam:
		a.Qiyam = value
	case FieldDuha:
		a.Duha = value
	case FieldRawatib:
		a.Rawatib = value
	case FieldCharity:
		a.Charity = value
	case FieldFamilyVisit:
		a.FamilyVisit = value
	case FieldHappiness:
		a.Happiness = value
	case FieldFeeding:
		a.Feeding = value
	default:
		return a, false
	}
	return a, true
}

// Dhikr returns the counter text for the given session slot.
func (a DailyActivity) Dhikr(slot DhikrSlot) string {
	if slot == DhikrEvening {
		return a.DhikrEvening
	}
	return a.DhikrMorning
}

// WithDhikr returns a copy of the record with the given session counter set.
// The second return reports whether the slot was recognized.
func (a DailyActivity) WithDhikr(slot DhikrSlot, value string) (DailyActivity, bool) {
	switch slot {
	case DhikrMorning:
		a.DhikrMorning = value
	case DhikrEvening:
		a.DhikrEvening = value
	default:
		return a, false
	}
	return a, true
}

// DhikrPerformed reports whether a stored session counter counts as
// performed: anything other than "0" or empty.
func DhikrPerformed(value string) bool {
	return value != "" && value != "0"
}
