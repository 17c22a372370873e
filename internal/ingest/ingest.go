// Package ingest reads activity records out of a time-tracker CSV
// export. It owns the messy edge of the pipeline: BOM stripping,
// localized header mapping, date and duration parsing, and placeholder
// substitution for blank categories. Everything downstream sees only
// normalized ActivityRecords.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/timetrail/internal/config"
	"github.com/julianstephens/timetrail/internal/models"
)

// DateLayout is the date format used by tracker exports.
const DateLayout = "2006/01/02"

// ErrInputNotFound reports a missing source file.
var ErrInputNotFound = errors.New("input file not found")

// ErrNoRecords reports an export with a header but no data rows.
var ErrNoRecords = errors.New("no records in input")

// ReadFile parses the CSV export at path into activity records.
// Any malformed row aborts the read: skipping rows would silently
// corrupt the weekly totals.
func ReadFile(path string, cfg config.Config) ([]models.ActivityRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses CSV content from r. The first row is the header; its
// cells are matched against cfg.Columns to locate the record fields.
func Read(r io.Reader, cfg config.Config) ([]models.ActivityRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports pad trailing columns inconsistently

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	if len(header) > 0 {
		// utf-8-sig exports carry a BOM on the first header cell
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	cols, err := mapHeader(header, cfg.Columns)
	if err != nil {
		return nil, err
	}

	var records []models.ActivityRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line+1, err)
		}
		line++

		rec, err := parseRow(row, cols, cfg)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// columnIndexes holds the resolved position of each mapped column.
// Optional columns that are absent from the header are -1.
type columnIndexes struct {
	date    int
	project int
	task    int
	minutes int
	note    int
}

func mapHeader(header []string, cols config.Columns) (columnIndexes, error) {
	idx := columnIndexes{date: -1, project: -1, task: -1, minutes: -1, note: -1}

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case cols.Date:
			idx.date = i
		case cols.Project:
			idx.project = i
		case cols.Task:
			idx.task = i
		case cols.Minutes:
			idx.minutes = i
		case cols.Note:
			idx.note = i
		}
	}

	if idx.date < 0 {
		return idx, fmt.Errorf("header is missing the date column %q", cols.Date)
	}
	if idx.minutes < 0 {
		return idx, fmt.Errorf("header is missing the minutes column %q", cols.Minutes)
	}
	return idx, nil
}

func parseRow(row []string, cols columnIndexes, cfg config.Config) (models.ActivityRecord, error) {
	var rec models.ActivityRecord

	dateText := cell(row, cols.date)
	date, err := time.Parse(DateLayout, strings.TrimSpace(dateText))
	if err != nil {
		return rec, fmt.Errorf("cannot parse date %q: %w", dateText, err)
	}

	minutesText := cell(row, cols.minutes)
	minutes, err := strconv.Atoi(strings.TrimSpace(minutesText))
	if err != nil {
		return rec, fmt.Errorf("cannot parse duration minutes %q", minutesText)
	}
	if minutes < 0 {
		return rec, fmt.Errorf("negative duration minutes %q", minutesText)
	}

	project := strings.TrimSpace(cell(row, cols.project))
	if project == "" {
		project = cfg.Labels.Project
	}
	task := strings.TrimSpace(cell(row, cols.task))
	if task == "" {
		task = cfg.Labels.Task
	}

	rec = models.ActivityRecord{
		Date:    date,
		Project: project,
		Task:    task,
		Minutes: minutes,
		Note:    strings.TrimSpace(cell(row, cols.note)),
	}
	rec.Code, rec.Contents = SplitNote(rec.Note)
	return rec, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// SplitNote splits a note into its project code and contents on the
// first underscore. "AP_chapter 3" yields ("AP", "chapter 3"); a note
// without an underscore is treated as all code.
func SplitNote(note string) (code, contents string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return "", ""
	}
	if before, after, found := strings.Cut(note, "_"); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return note, ""
}
