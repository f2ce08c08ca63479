package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/cronograma/internal/domain"
)

const planProgressBarWidth = 20

// FormatTask renders one task line of a day: index, checkbox, duration and
// what to do.
func FormatTask(index int, task domain.Task, checked bool) string {
	what := task.Name
	if task.IsStudy() {
		parts := []string{StyleBold.Render(task.Subject)}
		if task.Front != "" {
			parts = append(parts, Dim(task.Front))
		}
		parts = append(parts, task.Name)
		what = strings.Join(parts, Dim(" · "))
	} else if badge := TaskTypeBadge(task.Type); badge != "" {
		what = badge + " " + what
	}

	return fmt.Sprintf("%s %s %6s  %s", Dim(fmt.Sprintf("%2d", index)), Checkbox(checked), FormatMinutes(task.Duration), what)
}

// FormatDay renders a day header followed by its tasks. Days without tasks
// say so instead of rendering an empty list.
func FormatDay(day domain.StudyDay, checked map[string]bool) string {
	var b strings.Builder
	header := StyleHeader.Render(DayLabel(day.Date))
	if !day.IsFree() && len(day.Tasks) > 0 {
		header += "  " + Dim(FormatMinutes(day.TotalMinutes()))
	}
	b.WriteString(header + "\n")

	if day.IsFree() {
		b.WriteString("   " + TaskTypeBadge(domain.TaskFree) + "\n")
		return b.String()
	}
	if len(day.Tasks) == 0 {
		b.WriteString("   " + Dim("nothing scheduled") + "\n")
		return b.String()
	}
	for i, task := range day.Tasks {
		b.WriteString("  " + FormatTask(i, task, checked[domain.TaskKey(day.Date, i)]) + "\n")
	}
	return b.String()
}

// FormatDays renders consecutive days separated by blank lines.
func FormatDays(days []domain.StudyDay, checked map[string]bool) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, FormatDay(d, checked))
	}
	return strings.Join(parts, "\n")
}

// PlanStats summarizes a plan for display.
type PlanStats struct {
	Days           int
	StudyTasks     int
	StudyMinutes   int
	Checked        int
	Completed      int
	Remaining      int
	FirstDate      string
	LastDate       string
	CompletionRate float64
}

func ComputePlanStats(p *domain.PlanState) PlanStats {
	s := PlanStats{
		Days:      len(p.Result.Schedule),
		Completed: len(p.CompletedTopics),
		Remaining: p.Result.RemainingTopicsCount,
	}
	for _, v := range p.Checked {
		if v {
			s.Checked++
		}
	}
	for _, day := range p.Result.Schedule {
		for _, task := range day.Tasks {
			if task.IsStudy() {
				s.StudyTasks++
				s.StudyMinutes += task.Duration
			}
		}
	}
	if s.Days > 0 {
		s.FirstDate = p.Result.Schedule[0].Date
		s.LastDate = p.Result.Schedule[s.Days-1].Date
	}
	if total := s.Completed + s.StudyTasks + s.Remaining; total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(total)
	}
	return s
}

// FormatPlanSummary renders the headline numbers of a plan in a box.
func FormatPlanSummary(p *domain.PlanState) string {
	s := ComputePlanStats(p)
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Dim("Schedule:"), Bold(string(p.Config.ScheduleType)))
	if s.Days > 0 {
		fmt.Fprintf(&b, "%s  %s → %s (%d days)\n", Dim("Period:  "), DayLabel(s.FirstDate), DayLabel(s.LastDate), s.Days)
	} else {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Period:  "), Dim("empty plan"))
	}
	fmt.Fprintf(&b, "%s  %d topics, %s\n", Dim("Study:   "), s.StudyTasks, FormatMinutes(s.StudyMinutes))
	fmt.Fprintf(&b, "%s  %s %d done\n", Dim("Progress:"), RenderProgress(s.CompletionRate, planProgressBarWidth), s.Completed)
	if s.Checked > 0 {
		fmt.Fprintf(&b, "%s  %d tasks checked, run recalculate to fold them in\n", Dim("Checked: "), s.Checked)
	}

	if p.Result.AllTopicsFit {
		b.WriteString("\n" + StyleGreen.Render("✔ All topics fit") + "\n")
	} else {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("▲ %d topics did not fit", s.Remaining)) + "\n")
		for _, line := range unscheduledLines(p.Result.Unscheduled) {
			b.WriteString("  " + Dim(line) + "\n")
		}
	}
	if p.Result.HitSafetyCeiling {
		b.WriteString(StyleRed.Render("  WARNING: generation stopped at the day limit; check weekly hours") + "\n")
	}

	return RenderBox("Cronograma", strings.TrimRight(b.String(), "\n"))
}

func unscheduledLines(list []domain.UnscheduledTopic) []string {
	counts := make(map[domain.UnscheduledReason]int)
	for _, u := range list {
		counts[u.Reason]++
	}
	reasons := make([]string, 0, len(counts))
	for r := range counts {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)

	lines := make([]string, 0, len(reasons))
	for _, r := range reasons {
		lines = append(lines, fmt.Sprintf("%d blocked by %s", counts[domain.UnscheduledReason(r)], strings.ReplaceAll(r, "_", " ")))
	}
	return lines
}

// FormatTopics lists a catalog with the user's preferences applied.
func FormatTopics(topics []domain.Topic, prefs domain.TopicPrefs, completed domain.CompletedTopics) string {
	headers := []string{"#", "SUBJECT", "FRONT", "TOPIC", "DIFF", "STATUS"}
	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		pref := prefs.For(t.OriginalIndex)
		status := StyleGreen.Render("included")
		switch {
		case completed[t.OriginalIndex]:
			status = StyleBlue.Render("✔ done")
		case !pref.Included:
			status = Dim("excluded")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(t.OriginalIndex)),
			t.Subject,
			t.Front,
			t.Name,
			strconv.Itoa(pref.Difficulty),
			status,
		})
	}
	return RenderTable(headers, rows)
}

// FormatConfig renders a stored configuration.
func FormatConfig(cfg *domain.PlanConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Dim("Schedule:"), Bold(string(cfg.ScheduleType)))
	end := Dim("none")
	if cfg.EndDate != nil {
		end = DayLabel(cfg.EndDate.Format(domain.DateLayout))
	}
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("End date:"), end)

	hours := make([]string, 7)
	for d := 0; d < 7; d++ {
		hours[d] = FormatHours(cfg.WeeklyHours[d])
	}
	b.WriteString(RenderTable(weekdayShort[:], [][]string{hours}))
	fmt.Fprintf(&b, "%s %s/week\n\n", Dim("Total:"), FormatMinutes(cfg.WeeklyHours.TotalMinutes()))

	excluded, custom := 0, 0
	for _, pref := range cfg.TopicPrefs {
		if !pref.Included {
			excluded++
		} else if pref.Difficulty != domain.DefaultDifficulty {
			custom++
		}
	}
	fmt.Fprintf(&b, "%s  %d excluded, %d with custom difficulty\n", Dim("Topics:  "), excluded, custom)

	activities := []struct {
		name    string
		enabled bool
	}{
		{"Complete mock exams", cfg.Simulations.Complete.Enabled},
		{"Fragmented mock exams", cfg.Simulations.Fragmented.Enabled},
		{"Revision", cfg.Revision.Enabled},
		{"Writing", cfg.Writing.Enabled},
		{"Correction (complete)", cfg.CorrectionComplete.Enabled},
		{"Correction (fragmented)", cfg.CorrectionFragmented.Enabled},
		{"Gaps (complete)", cfg.GapsComplete.Enabled},
		{"Gaps (fragmented)", cfg.GapsFragmented.Enabled},
	}
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{a.name, YesNo(a.enabled)})
	}
	b.WriteString("\n" + RenderTable([]string{"ACTIVITY", "ENABLED"}, rows))

	if len(cfg.FreeDays) > 0 {
		b.WriteString("\n" + Dim("Free days: ") + strings.Join(cfg.FreeDays, ", ") + "\n")
	}
	return RenderBox("Configuração", strings.TrimRight(b.String(), "\n"))
}
