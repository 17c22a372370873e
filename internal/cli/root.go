package cli

import (
	"fmt"

	"github.com/julianstephens/timetrail/internal/config"
	"github.com/julianstephens/timetrail/internal/ingest"
	"github.com/julianstephens/timetrail/internal/logger"
	"github.com/julianstephens/timetrail/internal/models"
	"github.com/julianstephens/timetrail/internal/storage"
	"github.com/julianstephens/timetrail/internal/weekly"
	"github.com/julianstephens/timetrail/internal/xlsx"
)

type Context struct {
	Config     config.Config
	ConfigPath string
	Store      storage.Provider
}

// Sheet names and long-form headers, in workbook order. The wide
// sheets derive their headers from the category universe at runtime.
const (
	SheetProjectsLong = "projects_long"
	SheetTasksLong    = "tasks_long"
	SheetProjectsWide = "projects_wide"
	SheetTasksWide    = "tasks_wide"
)

var (
	projectsLongHeader = xlsx.Row{weekly.WeekColumn, "project", "total_minutes", "total_hours"}
	tasksLongHeader    = xlsx.Row{weekly.WeekColumn, "task", "total_minutes", "total_hours"}
)

// loadRecords fetches activity records either straight from the CSV
// export or from the local store.
func loadRecords(ctx *Context, input string, fromStore bool) ([]models.ActivityRecord, error) {
	if fromStore {
		if err := ctx.Store.Load(); err != nil {
			return nil, err
		}
		defer ctx.Store.Close()

		records, err := ctx.Store.AllRecords()
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("store %s holds no records, run 'timetrail import' first", ctx.Store.GetPath())
		}
		logger.Debug("Loaded records from store", "count", len(records), "path", ctx.Store.GetPath())
		return records, nil
	}

	records, err := ingest.ReadFile(input, ctx.Config)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded records from export", "count", len(records), "path", input)
	return records, nil
}

// bucketize runs records through the week bucketer and returns the
// buckets week ascending.
func bucketize(records []models.ActivityRecord) []*weekly.Bucket {
	bucketer := weekly.NewBucketer()
	bucketer.AddAll(records)
	return bucketer.Buckets()
}

// buildSheets derives the four workbook sheets from the buckets, in
// the fixed order projects_long, tasks_long, projects_wide,
// tasks_wide.
func buildSheets(buckets []*weekly.Bucket) []xlsx.Sheet {
	projectLong, taskLong := weekly.BuildLong(buckets)
	projectWide, taskWide := weekly.BuildWide(buckets)

	return []xlsx.Sheet{
		{Name: SheetProjectsLong, Header: projectsLongHeader, Rows: longSheetRows(projectLong)},
		{Name: SheetTasksLong, Header: tasksLongHeader, Rows: longSheetRows(taskLong)},
		{Name: SheetProjectsWide, Header: wideSheetHeader(projectWide), Rows: wideSheetRows(projectWide)},
		{Name: SheetTasksWide, Header: wideSheetHeader(taskWide), Rows: wideSheetRows(taskWide)},
	}
}

func longSheetRows(rows []weekly.LongRow) []xlsx.Row {
	out := make([]xlsx.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, xlsx.Row{r.Week, r.Name, r.Minutes, r.Hours})
	}
	return out
}

func wideSheetHeader(table weekly.WideTable) xlsx.Row {
	header := make(xlsx.Row, 0, len(table.Header))
	for _, name := range table.Header {
		header = append(header, name)
	}
	return header
}

func wideSheetRows(table weekly.WideTable) []xlsx.Row {
	out := make([]xlsx.Row, 0, len(table.Rows))
	for _, r := range table.Rows {
		out = append(out, xlsx.Row(r))
	}
	return out
}
