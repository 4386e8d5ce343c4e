// Package stats aggregates enquiries into the weekly series shown on the
// enrollment chart.
package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// DateKeys are tried in order when reading a record's date.
var DateKeys = []string{"createdAt", "date", "timestamp"}

var calendar = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
	TimeFormats: []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	},
}

// Record is a loosely typed JSON object.
type Record map[string]any

type Bucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// ParseMonth reads "2006-01". An empty value means the month of ref.
func ParseMonth(v string, ref time.Time) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return calendar.With(ref.In(time.UTC)).BeginningOfMonth(), nil
	}
	t, err := time.ParseInLocation("2006-01", v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q must look like 2006-01", v)
	}
	return t, nil
}

// Weeks returns the start of every Monday-aligned week overlapping month.
func Weeks(month time.Time) []time.Time {
	n := calendar.With(month.In(time.UTC))
	first := n.BeginningOfMonth()
	last := n.EndOfMonth()

	var weeks []time.Time
	for w := calendar.With(first).BeginningOfWeek(); !w.After(last); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

// DateOf returns the first parsable value among DateKeys. Strings are
// parsed as dates, numbers are epoch milliseconds.
func DateOf(r Record) (time.Time, bool) {
	for _, k := range DateKeys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch d := v.(type) {
		case time.Time:
			return d.UTC(), true
		case float64:
			// epoch milliseconds, as JavaScript's Date stores them
			if d > 0 {
				return time.UnixMilli(int64(d)).UTC(), true
			}
		case int64:
			if d > 0 {
				return time.UnixMilli(d).UTC(), true
			}
		case int:
			if d > 0 {
				return time.UnixMilli(int64(d)).UTC(), true
			}
		case string:
			if strings.TrimSpace(d) == "" {
				continue
			}
			t, err := calendar.Parse(d)
			if err == nil {
				return t.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

// WeeklyCounts buckets records dated inside month into calendar weeks. Weeks
// without records are still present with a zero count.
func WeeklyCounts(records []Record, month time.Time) []Bucket {
	weeks := Weeks(month)
	buckets := make([]Bucket, len(weeks))
	for i, w := range weeks {
		end := w.AddDate(0, 0, 6)
		buckets[i] = Bucket{
			Label: fmt.Sprintf("%s - %s", w.Format("Jan 2"), end.Format("Jan 2")),
			Start: w,
		}
	}
	if len(weeks) == 0 {
		return buckets
	}

	n := calendar.With(month.In(time.UTC))
	first, last := n.BeginningOfMonth(), n.EndOfMonth()
	for _, r := range records {
		d, ok := DateOf(r)
		if !ok || d.Before(first) || d.After(last) {
			continue
		}
		i := int(d.Sub(weeks[0]).Hours() / (24 * 7))
		if i >= 0 && i < len(buckets) {
			buckets[i].Count++
		}
	}
	return buckets
}
