package form

import (
	"net/http"
	"sort"
	"strings"

	v "github.com/asaskevich/govalidator"
	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
)

// DateRangeRequest is the query of the date range reports.
type DateRangeRequest struct {
	StartDate string `valid:"required~startDate is required"`
	EndDate   string `valid:"required~endDate is required"`
}

// YearRequest is the query of the yearly reports.
type YearRequest struct {
	Year string `valid:"required~year is required,matches(^[0-9]{4}$)~year must be a 4-digit number"`
}

func DateRangeFromRequest(r *http.Request) (*DateRangeRequest, error) {
	q := r.URL.Query()
	req := &DateRangeRequest{
		StartDate: strings.TrimSpace(q.Get("startDate")),
		EndDate:   strings.TrimSpace(q.Get("endDate")),
	}
	return req, validate(req)
}

func YearFromRequest(r *http.Request) (*YearRequest, error) {
	req := &YearRequest{
		Year: strings.TrimSpace(r.URL.Query().Get("year")),
	}
	return req, validate(req)
}

// validate runs the struct validation and reports the violations as one
// validation error.
func validate(s any) error {
	if _, err := v.ValidateStruct(s); err != nil {
		msgs := v.ErrorsByField(err)
		if len(msgs) == 0 {
			return gerr.Validation("%s", err.Error())
		}
		violations := make([]string, 0, len(msgs))
		for _, m := range msgs {
			violations = append(violations, m)
		}
		sort.Strings(violations)
		return gerr.Validation("%s", strings.Join(violations, "; "))
	}
	return nil
}
