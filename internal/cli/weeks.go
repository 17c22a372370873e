package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var (
	weekHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))
)

type WeeksCmd struct {
	Input     string `help:"CSV export to read." short:"i" type:"path"`
	FromStore bool   `help:"Read records from the local store instead of a CSV file."`
}

func (c *WeeksCmd) Run(ctx *Context) error {
	input := c.Input
	if input == "" {
		input = ctx.Config.Input
	}

	records, err := loadRecords(ctx, input, c.FromStore)
	if err != nil {
		return err
	}

	for _, bucket := range bucketize(records) {
		total := bucket.TotalMinutes()
		fmt.Println(weekHeaderStyle.Render(bucket.Label()) + "  " +
			totalStyle.Render(fmt.Sprintf("%.1fh total", float64(total)/60)))

		fmt.Println(sectionStyle.Render("  projects"))
		printTotals(bucket.ByProject)
		fmt.Println(sectionStyle.Render("  tasks"))
		printTotals(bucket.ByTask)
		fmt.Println()
	}

	return nil
}

// printTotals prints category totals minutes-descending, names
// ascending on ties, mirroring the long-form sheet order.
func printTotals(totals map[string]int) {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		minutes := totals[name]
		fmt.Printf("    %-30s %5d min  %6.2f h\n", name, minutes, float64(minutes)/60)
	}
}
