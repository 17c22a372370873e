package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/timetrail/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: config readable
	if err := checkConfig(ctx); err != nil {
		fmt.Printf("❌ Config file: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config file: OK\n")
	}

	// Check 2: input file present
	if err := checkInput(ctx); err != nil {
		fmt.Printf("⚠ Input file: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Input file: OK\n")
	}

	// Check 3: output directory writable
	if err := checkOutputDir(ctx); err != nil {
		fmt.Printf("❌ Output directory writable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Output directory writable: OK\n")
	}

	// Check 4: store reachable (warning only; CSV mode needs no store)
	if err := checkStore(ctx); err != nil {
		fmt.Printf("⚠ Record store: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Record store: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	// Check 6: concurrent instances (warning only)
	if err := checkOtherInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *Context) error {
	if _, err := os.Stat(ctx.ConfigPath); os.IsNotExist(err) {
		fmt.Printf("   Note: no config file at %s, using defaults\n", ctx.ConfigPath)
		return nil
	}
	data, err := os.ReadFile(ctx.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("config file is empty: %s", ctx.ConfigPath)
	}
	return nil
}

func checkInput(ctx *Context) error {
	if _, err := os.Stat(ctx.Config.Input); os.IsNotExist(err) {
		return fmt.Errorf("input file %s not found - pass --input or drop the export there", ctx.Config.Input)
	}
	return nil
}

func checkOutputDir(ctx *Context) error {
	dir := filepath.Dir(ctx.Config.Output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".timetrail-probe-*")
	if err != nil {
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	return os.Remove(probe.Name())
}

func checkStore(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	count, err := ctx.Store.CountRecords()
	if err != nil {
		return err
	}
	fmt.Printf("   Note: store holds %d records\n", count)
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkOtherInstances warns when another timetrail process is running;
// two processes writing the same SQLite store can contend for the
// database lock.
func checkOtherInstances() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == "timetrail" {
			return fmt.Errorf("another timetrail process is running (pid %d)", p.Pid())
		}
	}
	return nil
}
