package weekly

import (
	"math"
	"sort"
)

// LongRow is one (week, category) aggregate: total minutes and the
// same total expressed in hours, rounded to two decimals.
type LongRow struct {
	Week    string
	Name    string
	Minutes int
	Hours   float64
}

// WideTable is the pivoted view: one row per week, one column per
// category. Rows hold the week label followed by int minute cells in
// header order, zero-filled where a category did not occur that week.
type WideTable struct {
	Header []string
	Rows   [][]any
}

// WeekColumn is the first header cell of every table.
const WeekColumn = "week"

// BuildLong derives the long-form project and task tables. Buckets
// are walked week ascending; within a week, rows are ordered by
// minutes descending with ties broken by name so output is identical
// across runs regardless of map iteration order.
func BuildLong(buckets []*Bucket) (projects, tasks []LongRow) {
	for _, b := range buckets {
		projects = append(projects, longRows(b.Label(), b.ByProject)...)
		tasks = append(tasks, longRows(b.Label(), b.ByTask)...)
	}
	return projects, tasks
}

func longRows(label string, totals map[string]int) []LongRow {
	rows := make([]LongRow, 0, len(totals))
	for name, minutes := range totals {
		if minutes <= 0 {
			continue
		}
		rows = append(rows, LongRow{
			Week:    label,
			Name:    name,
			Minutes: minutes,
			Hours:   roundHours(minutes),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Minutes != rows[j].Minutes {
			return rows[i].Minutes > rows[j].Minutes
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// BuildWide derives the pivoted project and task tables. The column
// universe is the union of category names across all buckets, sorted
// lexicographically.
func BuildWide(buckets []*Bucket) (projects, tasks WideTable) {
	projectNames := categoryUniverse(buckets, func(b *Bucket) map[string]int { return b.ByProject })
	taskNames := categoryUniverse(buckets, func(b *Bucket) map[string]int { return b.ByTask })

	projects.Header = append([]string{WeekColumn}, projectNames...)
	tasks.Header = append([]string{WeekColumn}, taskNames...)

	for _, b := range buckets {
		projects.Rows = append(projects.Rows, wideRow(b.Label(), b.ByProject, projectNames))
		tasks.Rows = append(tasks.Rows, wideRow(b.Label(), b.ByTask, taskNames))
	}
	return projects, tasks
}

func categoryUniverse(buckets []*Bucket, totals func(*Bucket) map[string]int) []string {
	seen := make(map[string]bool)
	for _, b := range buckets {
		for name := range totals(b) {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wideRow(label string, totals map[string]int, names []string) []any {
	row := make([]any, 0, len(names)+1)
	row = append(row, label)
	for _, name := range names {
		row = append(row, totals[name]) // missing intersections read as 0
	}
	return row
}

func roundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
