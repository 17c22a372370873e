package cli

import (
	"testing"
	"time"

	"github.com/julianstephens/timetrail/internal/models"
)

func TestBuildSheets_FixedOrderAndHeaders(t *testing.T) {
	records := []models.ActivityRecord{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Project: "Alpha", Task: "Write", Minutes: 60},
		{Date: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), Project: "Beta", Task: "Review", Minutes: 45},
	}

	sheets := buildSheets(bucketize(records))

	wantNames := []string{SheetProjectsLong, SheetTasksLong, SheetProjectsWide, SheetTasksWide}
	if len(sheets) != 4 {
		t.Fatalf("expected 4 sheets, got %d", len(sheets))
	}
	for i, name := range wantNames {
		if sheets[i].Name != name {
			t.Errorf("sheet %d = %q, want %q", i, sheets[i].Name, name)
		}
	}

	if sheets[0].Header[1] != "project" || sheets[1].Header[1] != "task" {
		t.Errorf("long headers wrong: %v / %v", sheets[0].Header, sheets[1].Header)
	}

	// Wide headers start with the week column then categories ascending
	if sheets[2].Header[0] != "week" || sheets[2].Header[1] != "Alpha" || sheets[2].Header[2] != "Beta" {
		t.Errorf("projects_wide header wrong: %v", sheets[2].Header)
	}

	// Both wide sheets carry one row per week
	if len(sheets[2].Rows) != 2 || len(sheets[3].Rows) != 2 {
		t.Errorf("wide sheets should have 2 rows each, got %d and %d", len(sheets[2].Rows), len(sheets[3].Rows))
	}
}
