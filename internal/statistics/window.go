package statistics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-stats/internal/entity"
	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
)

const dateLayout = "2006-01-02"

var yearRe = regexp.MustCompile(`^\d{4}$`)

// RangeWindow resolves calendar dates into [start 00:00:00.000, end 23:59:59.999] UTC.
func RangeWindow(startDate, endDate string) (entity.TimeRange, error) {
	startDate, endDate = strings.TrimSpace(startDate), strings.TrimSpace(endDate)
	if startDate == "" || endDate == "" {
		return entity.TimeRange{}, gerr.Validation("startDate and endDate are required")
	}
	from, err := parseDate(startDate)
	if err != nil {
		return entity.TimeRange{}, gerr.Validation("startDate %q is not a valid date, expected YYYY-MM-DD", startDate)
	}
	to, err := parseDate(endDate)
	if err != nil {
		return entity.TimeRange{}, gerr.Validation("endDate %q is not a valid date, expected YYYY-MM-DD", endDate)
	}
	if to.Before(from) {
		return entity.TimeRange{}, gerr.Validation("endDate %s is before startDate %s", endDate, startDate)
	}
	return entity.TimeRange{From: from, To: endOfDay(to)}, nil
}

// YearWindow resolves a 4-digit year into [Jan 1 00:00:00.000, Dec 31 23:59:59.999] UTC.
func YearWindow(year string) (entity.TimeRange, error) {
	year = strings.TrimSpace(year)
	if year == "" {
		return entity.TimeRange{}, gerr.Validation("year is required")
	}
	if !yearRe.MatchString(year) {
		return entity.TimeRange{}, gerr.Validation("year %q must be a 4-digit number", year)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return entity.TimeRange{}, gerr.Validation("year %q must be a 4-digit number", year)
	}
	return yearRange(y), nil
}

// PreviousYear returns the window of the year preceding tr.From.
func PreviousYear(tr entity.TimeRange) entity.TimeRange {
	return yearRange(tr.From.Year() - 1)
}

func yearRange(y int) entity.TimeRange {
	from := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	return entity.TimeRange{
		From: from,
		To:   endOfDay(time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}
}

// parseDate accepts a bare calendar date or a full RFC 3339 timestamp,
// the latter reduced to its UTC calendar day.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
