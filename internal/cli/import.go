package cli

import (
	"fmt"

	"github.com/julianstephens/timetrail/internal/ingest"
	"github.com/julianstephens/timetrail/internal/logger"
)

type ImportCmd struct {
	Input string `help:"CSV export to read." short:"i" type:"path"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	input := c.Input
	if input == "" {
		input = ctx.Config.Input
	}

	records, err := ingest.ReadFile(input, ctx.Config)
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := ctx.Store.AddRecords(records); err != nil {
		return fmt.Errorf("failed to store records: %w", err)
	}

	count, err := ctx.Store.CountRecords()
	if err != nil {
		return err
	}

	logger.Info("Imported records", "added", len(records), "total", count)
	fmt.Printf("Imported %d records from %s (%d total in store)\n", len(records), input, count)
	return nil
}
