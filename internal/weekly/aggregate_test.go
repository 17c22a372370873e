package weekly

import (
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/timetrail/internal/models"
)

func exampleBuckets(t *testing.T) []*Bucket {
	t.Helper()
	bucketer := NewBucketer()
	bucketer.AddAll([]models.ActivityRecord{
		{Date: date(2024, time.January, 1), Project: "Alpha", Task: "Write", Minutes: 60},
		{Date: date(2024, time.January, 2), Project: "Alpha", Task: "Review", Minutes: 30},
		{Date: date(2024, time.January, 8), Project: "Beta", Task: "Write", Minutes: 45},
	})
	return bucketer.Buckets()
}

func TestBuildLong_ExampleProjectTable(t *testing.T) {
	projects, tasks := BuildLong(exampleBuckets(t))

	if len(projects) != 2 {
		t.Fatalf("expected 2 project rows, got %d", len(projects))
	}

	want := []LongRow{
		{Week: "2024/01/01~2024/01/07", Name: "Alpha", Minutes: 90, Hours: 1.5},
		{Week: "2024/01/08~2024/01/14", Name: "Beta", Minutes: 45, Hours: 0.75},
	}
	if !reflect.DeepEqual(projects, want) {
		t.Errorf("project rows = %+v, want %+v", projects, want)
	}

	// Week 1 tasks ordered minutes-descending
	if tasks[0].Name != "Write" || tasks[1].Name != "Review" {
		t.Errorf("task rows not minutes-descending: %+v", tasks[:2])
	}
}

func TestBuildLong_TiesBreakByNameAscending(t *testing.T) {
	bucketer := NewBucketer()
	bucketer.AddAll([]models.ActivityRecord{
		{Date: date(2024, time.May, 6), Project: "Zeta", Task: "t", Minutes: 30},
		{Date: date(2024, time.May, 7), Project: "Alpha", Task: "t", Minutes: 30},
		{Date: date(2024, time.May, 8), Project: "Mid", Task: "t", Minutes: 30},
	})

	projects, _ := BuildLong(bucketer.Buckets())
	got := []string{projects[0].Name, projects[1].Name, projects[2].Name}
	want := []string{"Alpha", "Mid", "Zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tie order = %v, want %v", got, want)
	}
}

func TestBuildLong_SkipsZeroMinuteCategories(t *testing.T) {
	bucketer := NewBucketer()
	bucketer.Add(models.ActivityRecord{Date: date(2024, time.May, 6), Project: "Empty", Task: "t", Minutes: 0})
	bucketer.Add(models.ActivityRecord{Date: date(2024, time.May, 6), Project: "Real", Task: "t", Minutes: 5})

	projects, _ := BuildLong(bucketer.Buckets())
	if len(projects) != 1 || projects[0].Name != "Real" {
		t.Errorf("zero-minute category should be skipped, got %+v", projects)
	}
}

func TestBuildLong_HoursRoundedToTwoDecimals(t *testing.T) {
	bucketer := NewBucketer()
	bucketer.Add(models.ActivityRecord{Date: date(2024, time.May, 6), Project: "P", Task: "t", Minutes: 50})

	projects, _ := BuildLong(bucketer.Buckets())
	if projects[0].Hours != 0.83 {
		t.Errorf("50 minutes = %v hours, want 0.83", projects[0].Hours)
	}
}

func TestBuildWide_ExampleProjectTable(t *testing.T) {
	projects, _ := BuildWide(exampleBuckets(t))

	wantHeader := []string{"week", "Alpha", "Beta"}
	if !reflect.DeepEqual(projects.Header, wantHeader) {
		t.Fatalf("wide header = %v, want %v", projects.Header, wantHeader)
	}

	wantRows := [][]any{
		{"2024/01/01~2024/01/07", 90, 0},
		{"2024/01/08~2024/01/14", 0, 45},
	}
	if !reflect.DeepEqual(projects.Rows, wantRows) {
		t.Errorf("wide rows = %v, want %v", projects.Rows, wantRows)
	}
}

func TestBuildWide_AgreesWithBuildLong(t *testing.T) {
	bucketer := NewBucketer()
	bucketer.AddAll([]models.ActivityRecord{
		{Date: date(2024, time.July, 1), Project: "A", Task: "x", Minutes: 10},
		{Date: date(2024, time.July, 2), Project: "B", Task: "y", Minutes: 20},
		{Date: date(2024, time.July, 8), Project: "A", Task: "y", Minutes: 30},
		{Date: date(2024, time.July, 15), Project: "C", Task: "z", Minutes: 40},
	})
	buckets := bucketer.Buckets()

	longRows, _ := BuildLong(buckets)
	wide, _ := BuildWide(buckets)

	// Index wide cells by (week, category)
	cells := make(map[[2]string]int)
	for _, row := range wide.Rows {
		week := row[0].(string)
		for col := 1; col < len(row); col++ {
			cells[[2]string{week, wide.Header[col]}] = row[col].(int)
		}
	}

	for _, lr := range longRows {
		if cells[[2]string{lr.Week, lr.Name}] != lr.Minutes {
			t.Errorf("wide[%s][%s] = %d, long says %d", lr.Week, lr.Name, cells[[2]string{lr.Week, lr.Name}], lr.Minutes)
		}
		delete(cells, [2]string{lr.Week, lr.Name})
	}

	// Everything left in the wide table must be a zero fill
	for key, v := range cells {
		if v != 0 {
			t.Errorf("wide cell %v = %d has no long-form row", key, v)
		}
	}
}

func TestBuildWide_DeterministicAcrossRuns(t *testing.T) {
	records := []models.ActivityRecord{
		{Date: date(2024, time.July, 1), Project: "B", Task: "y", Minutes: 20},
		{Date: date(2024, time.July, 1), Project: "A", Task: "x", Minutes: 20},
		{Date: date(2024, time.July, 1), Project: "C", Task: "z", Minutes: 20},
	}

	var first WideTable
	for run := 0; run < 20; run++ {
		bucketer := NewBucketer()
		bucketer.AddAll(records)
		wide, _ := BuildWide(bucketer.Buckets())
		if run == 0 {
			first = wide
			continue
		}
		if !reflect.DeepEqual(wide, first) {
			t.Fatalf("run %d produced different table: %v vs %v", run, wide, first)
		}
	}
}
