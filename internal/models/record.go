package models

import "time"

// ActivityRecord is one normalized row from a time-tracker export:
// something happened on a date, under a project and a task, for a
// number of minutes. Records are never mutated after ingestion.
type ActivityRecord struct {
	ID      string    `json:"id,omitempty"`
	Date    time.Time `json:"date"` // date precision, local midnight
	Project string    `json:"project"`
	Task    string    `json:"task"`
	Minutes int       `json:"minutes"`
	Note    string    `json:"note,omitempty"`

	// Code and Contents are the note split on its first underscore,
	// e.g. "AP_chapter 3" -> Code "AP", Contents "chapter 3". A note
	// without an underscore is all Code.
	Code     string `json:"code,omitempty"`
	Contents string `json:"contents,omitempty"`
}

// DateString renders the record date in the export's YYYY/MM/DD form.
func (r ActivityRecord) DateString() string {
	return r.Date.Format("2006/01/02")
}
