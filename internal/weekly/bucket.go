// Package weekly assigns activity records to Monday–Sunday calendar
// weeks and derives the aggregate tables the workbook is built from.
package weekly

import (
	"sort"
	"time"

	"github.com/julianstephens/timetrail/internal/models"
)

// Bucket accumulates minute totals for one Monday–Sunday week.
// End is always Start plus six days.
type Bucket struct {
	Start     time.Time
	End       time.Time
	ByProject map[string]int
	ByTask    map[string]int
}

// Label renders the human-readable week window, e.g.
// "2024/01/01~2024/01/07".
func (b *Bucket) Label() string {
	return b.Start.Format("2006/01/02") + "~" + b.End.Format("2006/01/02")
}

// TotalMinutes is the sum of all project minutes in the bucket.
// Project and task totals are two views of the same records, so
// either side sums to the same value.
func (b *Bucket) TotalMinutes() int {
	total := 0
	for _, m := range b.ByProject {
		total += m
	}
	return total
}

// WeekStart returns the Monday on or before d, at date precision in
// d's location.
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	start := d.AddDate(0, 0, -offset)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

// Bucketer routes records into per-week buckets. Each distinct week
// start gets exactly one bucket, created on first use.
type Bucketer struct {
	buckets map[string]*Bucket
}

func NewBucketer() *Bucketer {
	return &Bucketer{buckets: make(map[string]*Bucket)}
}

// Add accumulates one record into its week bucket. Blank categories
// were replaced with placeholder labels at ingestion, and negative
// durations were rejected there, so Add itself cannot fail.
func (k *Bucketer) Add(rec models.ActivityRecord) {
	start := WeekStart(rec.Date)
	key := start.Format("2006/01/02")

	b, ok := k.buckets[key]
	if !ok {
		b = &Bucket{
			Start:     start,
			End:       start.AddDate(0, 0, 6),
			ByProject: make(map[string]int),
			ByTask:    make(map[string]int),
		}
		k.buckets[key] = b
	}

	b.ByProject[rec.Project] += rec.Minutes
	b.ByTask[rec.Task] += rec.Minutes
}

// AddAll accumulates every record in order.
func (k *Bucketer) AddAll(records []models.ActivityRecord) {
	for _, rec := range records {
		k.Add(rec)
	}
}

// Len returns the number of distinct weeks observed so far.
func (k *Bucketer) Len() int {
	return len(k.buckets)
}

// Buckets returns the buckets sorted by week start ascending.
func (k *Bucketer) Buckets() []*Bucket {
	out := make([]*Bucket, 0, len(k.buckets))
	for _, b := range k.buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
