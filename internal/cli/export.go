package cli

import (
	"fmt"

	"github.com/julianstephens/timetrail/internal/logger"
	"github.com/julianstephens/timetrail/internal/xlsx"
)

type ExportCmd struct {
	Input     string `help:"CSV export to read." short:"i" type:"path"`
	Output    string `help:"Workbook file to write." short:"o" type:"path"`
	FromStore bool   `help:"Read records from the local store instead of a CSV file."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	input := c.Input
	if input == "" {
		input = ctx.Config.Input
	}
	output := c.Output
	if output == "" {
		output = ctx.Config.Output
	}

	records, err := loadRecords(ctx, input, c.FromStore)
	if err != nil {
		return err
	}

	buckets := bucketize(records)
	if len(buckets) == 0 {
		// Unreachable while loadRecords rejects empty inputs, but the
		// writer must never run against an empty bucket set.
		return fmt.Errorf("no weekly buckets built, nothing to write")
	}
	logger.Debug("Built weekly buckets", "weeks", len(buckets))

	sheets := buildSheets(buckets)
	if err := xlsx.WriteWorkbook(output, sheets); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Printf("Wrote %s (%d weeks):\n", output, len(buckets))
	for _, sheet := range sheets {
		fmt.Printf("  %-14s %d rows\n", sheet.Name, len(sheet.Rows))
	}

	return nil
}
