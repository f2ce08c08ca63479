package cli

import (
	"testing"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeeklyHours(t *testing.T) {
	base := domain.WeeklyHours{1, 1, 1, 1, 1, 1, 1}

	tests := []struct {
		name    string
		input   string
		want    domain.WeeklyHours
		wantErr string
	}{
		{"positional", "0,2,2,2,2,2,4", domain.WeeklyHours{0, 2, 2, 2, 2, 2, 4}, ""},
		{"positional with spaces", "0, 2.5, 2, 2, 2, 2, 0", domain.WeeklyHours{0, 2.5, 2, 2, 2, 2, 0}, ""},
		{"pairs keep the rest", "1:3,6:0", domain.WeeklyHours{1, 3, 1, 1, 1, 1, 0}, ""},
		{"single pair", "0:4", domain.WeeklyHours{4, 1, 1, 1, 1, 1, 1}, ""},
		{"too few values", "1,2", base, "expected 7 values"},
		{"weekday out of range", "7:2", base, "weekday must be 0"},
		{"negative hours", "1:-1", base, "between 0 and 24"},
		{"too many hours", "0,0,0,0,0,0,25", base, "Sáb"},
		{"missing colon in pair list", "1:2,3", base, "use weekday:hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeeklyHours(tt.input, base)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeeklyHoursValue(t *testing.T) {
	v := &weeklyHoursValue{}
	assert.False(t, v.IsSet())
	assert.Equal(t, "weeklyHours", v.Type())

	same, err := v.Apply(domain.WeeklyHours{2})
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyHours{2}, same)

	require.Error(t, v.Set("nope"))
	assert.False(t, v.IsSet(), "failed Set leaves the value untouched")

	require.NoError(t, v.Set("3:1"))
	assert.Equal(t, "3:1", v.String())
	got, err := v.Apply(domain.WeeklyHours{2, 2, 2, 2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyHours{2, 2, 2, 1, 2, 2, 2}, got)
}
