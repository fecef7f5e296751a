package main

import (
	"fmt"
	"time"
)

const absTimeLayout = "2006-01-02 15:04"

// fuzzyBuckets is ordered finest-first; a delta on a boundary belongs
// to the next coarser bucket (exactly 60s reads "1 minute").
var fuzzyBuckets = []struct {
	limit int64 // exclusive upper bound in seconds
	unit  int64
	name  string
}{
	{60, 1, "second"},
	{3600, 60, "minute"},
	{86400, 3600, "hour"},
	{7 * 86400, 86400, "day"},
	{30 * 86400, 7 * 86400, "week"},
	{365 * 86400, 30 * 86400, "month"},
}

// formatTime renders a modification timestamp either as a fuzzy
// relative duration or as a fixed absolute layout. A zero timestamp
// means the metadata could not be read.
func formatTime(modified, now time.Time, fuzzy bool) string {
	if modified.IsZero() {
		return "unknown"
	}
	if !fuzzy {
		return modified.Format(absTimeLayout)
	}

	delta := now.Unix() - modified.Unix()
	switch {
	case delta < 0:
		return "future"
	case delta == 0:
		return "now"
	}
	for _, b := range fuzzyBuckets {
		if delta < b.limit {
			return pluralize(delta/b.unit, b.name)
		}
	}
	return pluralize(delta/(365*86400), "year")
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
