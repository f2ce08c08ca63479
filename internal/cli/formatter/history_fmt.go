package formatter

import (
	"strconv"

	"github.com/alexanderramin/cronograma/internal/repository"
)

// FormatHistory lists stored plan revisions, newest first.
func FormatHistory(revisions []repository.PlanRevision) string {
	if len(revisions) == 0 {
		return Dim("No plans generated yet.") + "\n"
	}
	headers := []string{"ID", "GENERATED", "SCHEDULE", "REMAINING", "ALL FIT"}
	rows := make([][]string, 0, len(revisions))
	for i, r := range revisions {
		id := TruncID(r.ID)
		if i == 0 {
			id += " " + StyleGreen.Render("current")
		}
		fit := YesNo(r.AllTopicsFit)
		if r.HitSafetyCeiling {
			fit += " " + StyleRed.Render("(day limit)")
		}
		rows = append(rows, []string{
			id,
			r.GeneratedAt.Local().Format("2006-01-02 15:04"),
			string(r.ScheduleType),
			strconv.Itoa(r.RemainingCount),
			fit,
		})
	}
	return RenderTable(headers, rows)
}

// FormatFreeDays lists free days with their weekday.
func FormatFreeDays(dates []string) string {
	if len(dates) == 0 {
		return Dim("No free days.") + "\n"
	}
	rows := make([][]string, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, []string{d, DayLabel(d)})
	}
	return RenderTable([]string{"DATE", "DAY"}, rows)
}
