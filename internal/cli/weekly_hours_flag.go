package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/spf13/pflag"
)

// weeklyHoursValue parses --hours. Two forms are accepted: seven
// comma-separated values starting on Sunday ("0,2,2,2,2,2,4"), or
// weekday:hours pairs ("1:2,3:1.5") where unlisted days keep their
// current value.
type weeklyHoursValue struct {
	raw string
}

var _ pflag.Value = (*weeklyHoursValue)(nil)

func (v *weeklyHoursValue) String() string { return v.raw }

func (v *weeklyHoursValue) Type() string { return "weeklyHours" }

func (v *weeklyHoursValue) Set(s string) error {
	if _, err := parseWeeklyHours(s, domain.WeeklyHours{}); err != nil {
		return err
	}
	v.raw = s
	return nil
}

// IsSet reports whether the flag received a value.
func (v *weeklyHoursValue) IsSet() bool { return v.raw != "" }

// Apply returns base with the flag value applied.
func (v *weeklyHoursValue) Apply(base domain.WeeklyHours) (domain.WeeklyHours, error) {
	if !v.IsSet() {
		return base, nil
	}
	return parseWeeklyHours(v.raw, base)
}

func parseWeeklyHours(s string, base domain.WeeklyHours) (domain.WeeklyHours, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	out := base

	if !strings.Contains(s, ":") {
		if len(fields) != 7 {
			return out, fmt.Errorf("expected 7 values (Sunday first), got %d", len(fields))
		}
		for d, f := range fields {
			h, err := parseDayHours(f)
			if err != nil {
				return out, fmt.Errorf("%s: %w", formatter.WeekdayShort(weekday(d)), err)
			}
			out[d] = h
		}
		return out, nil
	}

	for _, f := range fields {
		dayStr, hoursStr, ok := strings.Cut(strings.TrimSpace(f), ":")
		if !ok {
			return out, fmt.Errorf("%q: use weekday:hours", f)
		}
		d, err := strconv.Atoi(strings.TrimSpace(dayStr))
		if err != nil || d < 0 || d > 6 {
			return out, fmt.Errorf("%q: weekday must be 0 (Sunday) to 6 (Saturday)", f)
		}
		h, err := parseDayHours(hoursStr)
		if err != nil {
			return out, fmt.Errorf("%q: %w", f, err)
		}
		out[d] = h
	}
	return out, nil
}

func parseDayHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("hours must be a number between 0 and 24")
	}
	return h, nil
}
