package models

import "testing"

func TestNewDailyActivity(t *testing.T) {
	a := NewDailyActivity(12)
	if a.Day != 12 {
		t.Errorf("Day = %d, want 12", a.Day)
	}
	if a.Quran != "0" || a.DhikrMorning != "0" || a.DhikrEvening != "0" {
		t.Errorf("counters not defaulted to \"0\": %+v", a)
	}
}

func TestFlagRoundTrip(t *testing.T) {
	fields := append(append([]BoolField{}, PrayerFields...), DeedFields...)
	if len(fields) != 8 {
		t.Fatalf("expected 8 checkbox fields, got %d", len(fields))
	}

	for _, f := range fields {
		a := NewDailyActivity(1)
		if a.Flag(f) {
			t.Errorf("fresh record has %s set", f)
		}
		updated, ok := a.WithFlag(f, true)
		if !ok {
			t.Fatalf("WithFlag(%s) not recognized", f)
		}
		if !updated.Flag(f) {
			t.Errorf("WithFlag(%s, true) did not set the field", f)
		}
		if a.Flag(f) {
			t.Errorf("WithFlag(%s) mutated the receiver", f)
		}
	}
}

func TestFlagUnknownField(t *testing.T) {
	a := NewDailyActivity(1)
	if a.Flag(BoolField("witr")) {
		t.Error("unknown field reads as true")
	}
	if _, ok := a.WithFlag(BoolField("witr"), true); ok {
		t.Error("WithFlag accepted an unknown field")
	}
}

func TestDhikrSlots(t *testing.T) {
	a := NewDailyActivity(1)

	updated, ok := a.WithDhikr(DhikrMorning, "5")
	if !ok || updated.DhikrMorning != "5" || updated.DhikrEvening != "0" {
		t.Errorf("WithDhikr(morning) = %+v, %v", updated, ok)
	}
	updated, ok = a.WithDhikr(DhikrEvening, "2")
	if !ok || updated.DhikrEvening != "2" {
		t.Errorf("WithDhikr(evening) = %+v, %v", updated, ok)
	}
	if _, ok := a.WithDhikr(DhikrSlot("noon"), "1"); ok {
		t.Error("WithDhikr accepted an unknown slot")
	}

	if updated.Dhikr(DhikrEvening) != "2" {
		t.Errorf("Dhikr(evening) = %q", updated.Dhikr(DhikrEvening))
	}
}

func TestDhikrPerformed(t *testing.T) {
	cases := map[string]bool{
		"":     false,
		"0":    false,
		"1":    true,
		"12":   true,
		"many": true,
	}
	for value, want := range cases {
		if got := DhikrPerformed(value); got != want {
			t.Errorf("DhikrPerformed(%q) = %v, want %v", value, got, want)
		}
	}
}
