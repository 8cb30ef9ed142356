package system

import (
	"fmt"

	"github.com/muhasaba/muhasaba/internal/backup"
	"github.com/muhasaba/muhasaba/internal/cli"
	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReadable := false

	var state models.State

	// Check 1: store readable
	if loaded, err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store readable: OK\n")
		state = loaded
		storeReadable = true
	}

	// Check 2: activity log invariant (30 contiguous days)
	if storeReadable {
		if err := checkLogInvariant(state); err != nil {
			fmt.Printf("❌ Activity log: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Activity log: OK\n")
		}
	} else {
		fmt.Printf("⊘ Activity log: SKIPPED (store not readable)\n")
	}

	// Check 3: stats within bounds
	if storeReadable {
		if err := checkStatsBounds(state.Stats); err != nil {
			fmt.Printf("❌ Stats bounds: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Stats bounds: OK\n")
		}
	} else {
		fmt.Printf("⊘ Stats bounds: SKIPPED (store not readable)\n")
	}

	// Check 4: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.ListBackups(); err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found; run 'muhasaba backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkLogInvariant(state models.State) error {
	if len(state.Activities) == 0 {
		// Legal before the first InitializeData.
		return nil
	}
	if len(state.Activities) != constants.RamadanDays {
		return fmt.Errorf("expected %d activity records, found %d", constants.RamadanDays, len(state.Activities))
	}
	seen := make(map[int]bool, constants.RamadanDays)
	for _, a := range state.Activities {
		if a.Day < 1 || a.Day > constants.RamadanDays {
			return fmt.Errorf("activity record with out-of-range day %d", a.Day)
		}
		if seen[a.Day] {
			return fmt.Errorf("duplicate activity record for day %d", a.Day)
		}
		seen[a.Day] = true
	}
	return nil
}

func checkStatsBounds(s models.Stats) error {
	for name, pct := range map[string]int{
		"quran":     s.Quran,
		"prayers":   s.Prayers,
		"dhikr":     s.Dhikr,
		"goodDeeds": s.GoodDeeds,
		"overall":   s.Overall,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("stat %s out of bounds: %d", name, pct)
		}
	}
	return nil
}
