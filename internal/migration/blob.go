package migration

import (
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/stats"
)

// CurrentBlobVersion is the schema version of the persisted JSON snapshot.
// Version 0 is the legacy unversioned blob (no read-surah markers, goals or
// journal may be absent, stats possibly computed under the old cumulative
// Qur'an model). Version 2 is the current shape.
const CurrentBlobVersion = 2

// UpgradeState brings a legacy snapshot up to the current shape: missing
// collections are initialized empty and the stats snapshot is recomputed
// from the activity log, so an old blob can never feed stale statistics
// into the new model.
func UpgradeState(fromVersion int, state *models.State) {
	if fromVersion >= CurrentBlobVersion {
		state.Normalize()
		return
	}

	state.Normalize()
	state.Stats = stats.Compute(state.Activities)
}
