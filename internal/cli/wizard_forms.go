package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// cronogramaHuhTheme returns a huh theme built on the formatter palette.
func cronogramaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(cronogramaHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateDateList accepts dates separated by commas or spaces.
func validateDateList(s string) error {
	for _, d := range splitList(s) {
		if err := validateOptionalDate(d); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateHours accepts empty (no study) or a number of hours in [0, 24].
func validateHours(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseDayHours(s)
	return err
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
}

func weekdayOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 7)
	for d := 0; d < 7; d++ {
		opts[d] = huh.NewOption(formatter.WeekdayShort(weekday(d)), d)
	}
	return opts
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}

func scheduleTypeForm(ans *wizardAnswers) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which schedule?").
				Description("Extensive covers the full catalog; intensive is the condensed one.").
				Options(
					huh.NewOption("Extensive", string(domain.ScheduleExtensive)),
					huh.NewOption("Intensive", string(domain.ScheduleIntensive)),
				).
				Value(&ans.ScheduleType),
		),
	)
}

func topicsForm(topics []domain.Topic, ans *wizardAnswers) *huh.Form {
	opts := make([]huh.Option[int], 0, len(topics))
	for _, t := range topics {
		label := t.Subject + " · " + t.Name
		if t.Front != "" {
			label = t.Subject + " · " + t.Front + " · " + t.Name
		}
		opts = append(opts, huh.NewOption(label, t.OriginalIndex))
	}

	levels := []huh.Option[string]{huh.NewOption("Keep", "")}
	for d := domain.MinDifficulty; d <= domain.MaxDifficulty; d++ {
		levels = append(levels, huh.NewOption(strconv.Itoa(d), strconv.Itoa(d)))
	}
	difficulty := make([]huh.Field, 0, len(ans.SubjectDifficulty))
	for i := range ans.SubjectDifficulty {
		sd := &ans.SubjectDifficulty[i]
		difficulty = append(difficulty, huh.NewSelect[string]().
			Title(sd.Subject).
			Options(levels...).
			Inline(true).
			Value(&sd.Level))
	}

	return themed(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Topics to study").
				Description("Space toggles, / filters.").
				Options(opts...).
				Filterable(true).
				Height(18).
				Value(&ans.Topics),
		),
		huh.NewGroup(difficulty...).
			Title("Difficulty per subject").
			Description("0 is easiest, 4 hardest. Harder topics get longer study blocks."),
	)
}

func settingsForm(ans *wizardAnswers) *huh.Form {
	hours := make([]huh.Field, 7)
	for d := 0; d < 7; d++ {
		hours[d] = huh.NewInput().
			Title(formatter.WeekdayShort(weekday(d))).
			Inline(true).
			Placeholder("0").
			Value(&ans.Hours[d]).
			Validate(validateHours)
	}

	return themed(
		huh.NewGroup(hours...).
			Title("Study hours per weekday"),
		huh.NewGroup(
			huh.NewInput().
				Title("End date (YYYY-MM-DD, blank for none)").
				Placeholder("2027-11-07").
				Value(&ans.EndDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Free days (YYYY-MM-DD, comma separated)").
				Value(&ans.FreeDays).
				Validate(validateDateList),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Complete mock exams?").Value(&ans.CompleteSim),
			huh.NewMultiSelect[int]().Title("Days").Options(weekdayOptions()...).Value(&ans.CompleteSimDays),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Fragmented mock exams?").Value(&ans.FragmentedSim),
			huh.NewMultiSelect[int]().Title("Days").Options(weekdayOptions()...).Value(&ans.FragmentedSimDays),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Revision blocks?").Value(&ans.Revision),
			huh.NewMultiSelect[int]().Title("Days").Options(weekdayOptions()...).Value(&ans.RevisionDays),
			huh.NewInput().Title("Minutes per revision").Placeholder("30").Value(&ans.RevisionMinutes).Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Essay writing?").Value(&ans.Writing),
			huh.NewMultiSelect[int]().Title("Days").Options(weekdayOptions()...).Value(&ans.WritingDays),
			huh.NewInput().Title("Minutes per essay").Placeholder("60").Value(&ans.WritingMinutes).Validate(validatePositiveInt),
		),
	)
}
