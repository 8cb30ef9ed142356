package system

import (
	"testing"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

func initializedState() models.State {
	state := models.DefaultState()
	for day := 1; day <= constants.RamadanDays; day++ {
		state.Activities = append(state.Activities, models.NewDailyActivity(day))
	}
	return state
}

func TestCheckLogInvariant(t *testing.T) {
	// A pre-init empty log is legal.
	if err := checkLogInvariant(models.DefaultState()); err != nil {
		t.Errorf("empty log = %v, want nil", err)
	}
	if err := checkLogInvariant(initializedState()); err != nil {
		t.Errorf("full log = %v, want nil", err)
	}

	short := initializedState()
	short.Activities = short.Activities[:29]
	if err := checkLogInvariant(short); err == nil {
		t.Error("29-record log passed the invariant check")
	}

	dup := initializedState()
	dup.Activities[5].Day = 1
	if err := checkLogInvariant(dup); err == nil {
		t.Error("duplicate day passed the invariant check")
	}

	gap := initializedState()
	gap.Activities[29].Day = 31
	if err := checkLogInvariant(gap); err == nil {
		t.Error("out-of-range day passed the invariant check")
	}
}

func TestCheckStatsBounds(t *testing.T) {
	if err := checkStatsBounds(models.Stats{Quran: 0, Prayers: 100, Dhikr: 50, GoodDeeds: 1, Overall: 38}); err != nil {
		t.Errorf("in-bounds stats = %v, want nil", err)
	}
	for _, s := range []models.Stats{
		{Quran: -1},
		{Prayers: 101},
		{Overall: 200},
	} {
		if err := checkStatsBounds(s); err == nil {
			t.Errorf("out-of-bounds stats %+v passed the check", s)
		}
	}
}
