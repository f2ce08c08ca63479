package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// planViewBackend is the slice of the plan service the checklist needs.
type planViewBackend interface {
	Current(ctx context.Context, userID string) (*domain.PlanState, error)
	SetChecked(ctx context.Context, req app.CheckRequest) error
	Recalculate(ctx context.Context, req app.RecalculateRequest) (*app.RecalculateResult, error)
}

type viewKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextDay     key.Binding
	PrevDay     key.Binding
	Today       key.Binding
	Toggle      key.Binding
	Recalculate key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultViewKeyMap() viewKeyMap {
	return viewKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextDay:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next day")),
		PrevDay:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous day")),
		Today:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
		Recalculate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recalculate")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Recalculate, k.NextDay, k.Help, k.Quit}
}

func (k viewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDay, k.PrevDay, k.Today},
		{k.Toggle, k.Recalculate, k.Help, k.Quit},
	}
}

// taskRef points at one checkable task of the plan.
type taskRef struct {
	date  string
	index int
}

type planLoadedMsg struct {
	plan *domain.PlanState
	err  error
}

type checkToggledMsg struct {
	ref     taskRef
	checked bool
	err     error
}

type recalculatedMsg struct {
	res *app.RecalculateResult
	err error
}

// planViewModel is a checklist over the current plan. Checks are written
// through the service as they happen; r folds them into a new plan.
type planViewModel struct {
	backend planViewBackend
	userID  string
	today   time.Time

	plan   *domain.PlanState
	tasks  []taskRef
	cursor int

	width, height int
	loading       bool
	busy          bool
	status        string
	err           error

	keys viewKeyMap
	help help.Model
}

func newPlanViewModel(backend planViewBackend, userID string, today time.Time) *planViewModel {
	return &planViewModel{
		backend: backend,
		userID:  userID,
		today:   today,
		loading: true,
		keys:    defaultViewKeyMap(),
		help:    help.New(),
	}
}

func (m *planViewModel) Init() tea.Cmd {
	return m.load()
}

func (m *planViewModel) load() tea.Cmd {
	backend, userID := m.backend, m.userID
	return func() tea.Msg {
		p, err := backend.Current(context.Background(), userID)
		return planLoadedMsg{plan: p, err: err}
	}
}

func (m *planViewModel) toggle(ref taskRef, checked bool) tea.Cmd {
	backend, userID := m.backend, m.userID
	return func() tea.Msg {
		err := backend.SetChecked(context.Background(), app.CheckRequest{
			UserID:  userID,
			Date:    ref.date,
			Index:   ref.index,
			Checked: checked,
		})
		return checkToggledMsg{ref: ref, checked: checked, err: err}
	}
}

func (m *planViewModel) recalculate() tea.Cmd {
	backend, userID, today := m.backend, m.userID, m.today
	return func() tea.Msg {
		req := app.NewRecalculateRequest(userID)
		req.Today = &today
		res, err := backend.Recalculate(context.Background(), req)
		return recalculatedMsg{res: res, err: err}
	}
}

// setPlan replaces the plan and rebuilds the task index. The cursor lands
// on the first task dated today or later.
func (m *planViewModel) setPlan(p *domain.PlanState) {
	m.plan = p
	m.tasks = m.tasks[:0]
	for _, day := range p.Result.Schedule {
		if day.IsFree() {
			continue
		}
		for i := range day.Tasks {
			m.tasks = append(m.tasks, taskRef{date: day.Date, index: i})
		}
	}
	m.jumpToDate(m.today.Format(domain.DateLayout))
}

func (m *planViewModel) jumpToDate(date string) {
	m.cursor = 0
	for i, t := range m.tasks {
		if t.date >= date {
			m.cursor = i
			return
		}
	}
	if len(m.tasks) > 0 {
		m.cursor = len(m.tasks) - 1
	}
}

func (m *planViewModel) current() (taskRef, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return taskRef{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *planViewModel) isChecked(ref taskRef) bool {
	return m.plan != nil && m.plan.Checked[domain.TaskKey(ref.date, ref.index)]
}

func (m *planViewModel) moveDay(dir int) {
	ref, ok := m.current()
	if !ok {
		return
	}
	i := m.cursor
	if dir > 0 {
		for i < len(m.tasks) && m.tasks[i].date == ref.date {
			i++
		}
		if i < len(m.tasks) {
			m.cursor = i
		}
		return
	}
	for i > 0 && m.tasks[i].date == ref.date {
		i--
	}
	prev := m.tasks[i].date
	for i > 0 && m.tasks[i-1].date == prev {
		i--
	}
	m.cursor = i
}

func (m *planViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case planLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.setPlan(msg.plan)
		return m, nil

	case checkToggledMsg:
		m.busy = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		k := domain.TaskKey(msg.ref.date, msg.ref.index)
		if m.plan.Checked == nil {
			m.plan.Checked = make(map[string]bool)
		}
		if msg.checked {
			m.plan.Checked[k] = true
		} else {
			delete(m.plan.Checked, k)
		}
		m.status = ""
		return m, nil

	case recalculatedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.setPlan(msg.res.Plan)
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("✔ %d topics newly completed, %d in total",
			len(msg.res.NewlyCompleted), msg.res.TotalCompleted))
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.loading || m.err != nil || m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.NextDay):
			m.moveDay(1)
		case key.Matches(msg, m.keys.PrevDay):
			m.moveDay(-1)
		case key.Matches(msg, m.keys.Today):
			m.jumpToDate(m.today.Format(domain.DateLayout))
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Toggle):
			if ref, ok := m.current(); ok {
				m.busy = true
				return m, m.toggle(ref, !m.isChecked(ref))
			}
		case key.Matches(msg, m.keys.Recalculate):
			m.busy = true
			m.status = formatter.Dim("recalculating...")
			return m, m.recalculate()
		}
	}
	return m, nil
}

// planLines renders every day of the plan and reports which line holds the
// cursor.
func (m *planViewModel) planLines() ([]string, int) {
	var lines []string
	cursorLine := 0
	sel, hasSel := m.current()

	for _, day := range m.plan.Result.Schedule {
		header := formatter.StyleHeader.Render(formatter.DayLabel(day.Date))
		if day.Date == m.today.Format(domain.DateLayout) {
			header += " " + formatter.StyleAqua.Render("(hoje)")
		}
		lines = append(lines, header)
		if day.IsFree() {
			lines = append(lines, "    "+formatter.TaskTypeBadge(domain.TaskFree))
			continue
		}
		for i, task := range day.Tasks {
			ref := taskRef{date: day.Date, index: i}
			prefix := "  "
			if hasSel && ref == sel {
				prefix = formatter.StyleHeader.Render("▸ ")
				cursorLine = len(lines)
			}
			lines = append(lines, prefix+formatter.FormatTask(i, task, m.isChecked(ref)))
		}
	}
	return lines, cursorLine
}

func (m *planViewModel) View() string {
	if m.loading {
		return "Loading...\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	stats := formatter.ComputePlanStats(m.plan)
	b.WriteString(formatter.StyleBold.Render("Cronograma") + "  " +
		formatter.Dim(fmt.Sprintf("%s · %d days · %d checked · %d done", m.plan.Config.ScheduleType, stats.Days, stats.Checked, stats.Completed)) + "\n\n")

	if len(m.plan.Result.Schedule) == 0 {
		b.WriteString(formatter.Dim("The plan has no days.") + "\n")
	} else {
		lines, cursorLine := m.planLines()
		b.WriteString(strings.Join(window(lines, cursorLine, m.bodyHeight()), "\n") + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(m.width, 20)))
	b.WriteString(sep + "\n" + m.help.View(m.keys))
	return b.String()
}

func (m *planViewModel) bodyHeight() int {
	if m.height == 0 {
		return 30
	}
	return max(m.height-6, 5)
}

// window returns at most size lines around focus, keeping a few lines of
// context above it.
func window(lines []string, focus, size int) []string {
	if len(lines) <= size {
		return lines
	}
	start := max(focus-size/3, 0)
	end := start + size
	if end > len(lines) {
		end = len(lines)
		start = end - size
	}
	return lines[start:end]
}
