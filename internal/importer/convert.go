package importer

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
)

// Convert transforms a validated ConfigSchema into a domain configuration.
// Call ValidateConfigSchema first; Convert assumes the schema is valid and
// only fails on values it cannot parse at all.
func Convert(schema *ConfigSchema) (*domain.PlanConfig, error) {
	cfg := domain.NewPlanConfig()
	cfg.ScheduleType = domain.ScheduleType(schema.ScheduleType)

	var err error
	if cfg.EndDate, err = parseOptionalDate("end_date", schema.EndDate); err != nil {
		return nil, err
	}

	for key, h := range schema.WeeklyHours {
		day, ok := parseWeekday(key)
		if !ok {
			return nil, fmt.Errorf("weekly_hours: invalid weekday %q", key)
		}
		cfg.WeeklyHours[day] = h
	}

	for _, t := range schema.Topics {
		cfg.TopicPrefs[t.Index] = domain.TopicPreference{
			Included:   domain.BoolFromPtrWithDefault(true, t.Included),
			Difficulty: domain.IntFromPtrWithDefault(domain.DefaultDifficulty, t.Difficulty),
		}
	}

	if s := schema.Simulations; s != nil {
		if cfg.Simulations.Complete, err = convertSimulation("simulations.complete", s.Complete); err != nil {
			return nil, err
		}
		if cfg.Simulations.Fragmented, err = convertSimulation("simulations.fragmented", s.Fragmented); err != nil {
			return nil, err
		}
	}

	if cfg.Revision, err = convertSimple("revision", schema.Revision); err != nil {
		return nil, err
	}
	if cfg.Writing, err = convertSimple("writing", schema.Writing); err != nil {
		return nil, err
	}

	fixed := []struct {
		name string
		src  *FixedActivityImport
		dst  *domain.FixedActivityConfig
	}{
		{"correction_complete", schema.CorrectionComplete, &cfg.CorrectionComplete},
		{"correction_fragmented", schema.CorrectionFragmented, &cfg.CorrectionFragmented},
		{"gaps_complete", schema.GapsComplete, &cfg.GapsComplete},
		{"gaps_fragmented", schema.GapsFragmented, &cfg.GapsFragmented},
	}
	for _, f := range fixed {
		if *f.dst, err = convertFixed(f.name, f.src); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(schema.FreeDays))
	for _, d := range schema.FreeDays {
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return nil, fmt.Errorf("free_days: invalid date %q", d)
		}
		if !seen[d] {
			seen[d] = true
			cfg.FreeDays = append(cfg.FreeDays, d)
		}
	}
	sort.Strings(cfg.FreeDays)

	return &cfg, nil
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", field, *s)
	}
	return &t, nil
}

func convertDurations(field string, src map[string]int) (domain.DayDurations, error) {
	if len(src) == 0 {
		return nil, nil
	}
	out := make(domain.DayDurations, len(src))
	for key, minutes := range src {
		day, ok := parseWeekday(key)
		if !ok {
			return nil, fmt.Errorf("%s: invalid weekday %q", field, key)
		}
		out[day] = minutes
	}
	return out, nil
}

func convertIntensifications(field string, src []IntensificationImport) ([]domain.Intensification, error) {
	if len(src) == 0 {
		return nil, nil
	}
	out := make([]domain.Intensification, 0, len(src))
	for i, in := range src {
		prefix := fmt.Sprintf("%s.intensifications[%d]", field, i)
		start, err := parseOptionalDate(prefix+".start_date", in.StartDate)
		if err != nil {
			return nil, err
		}
		durations, err := convertDurations(prefix+".durations", in.Durations)
		if err != nil {
			return nil, err
		}
		days := make([]time.Weekday, 0, len(in.Days))
		for _, d := range in.Days {
			days = append(days, time.Weekday(d))
		}
		out = append(out, domain.Intensification{StartDate: start, Days: days, Durations: durations})
	}
	return out, nil
}

func convertSimulation(field string, src *SimulationImport) (domain.SimulationSchedule, error) {
	if src == nil {
		return domain.SimulationSchedule{}, nil
	}
	start, err := parseOptionalDate(field+".start_date", src.StartDate)
	if err != nil {
		return domain.SimulationSchedule{}, err
	}
	end, err := parseOptionalDate(field+".end_date", src.EndDate)
	if err != nil {
		return domain.SimulationSchedule{}, err
	}
	list, err := convertIntensifications(field, src.Intensifications)
	if err != nil {
		return domain.SimulationSchedule{}, err
	}
	return domain.SimulationSchedule{Enabled: src.Enabled, StartDate: start, EndDate: end, Intensifications: list}, nil
}

func convertFixed(field string, src *FixedActivityImport) (domain.FixedActivityConfig, error) {
	if src == nil {
		return domain.FixedActivityConfig{}, nil
	}
	start, err := parseOptionalDate(field+".start_date", src.StartDate)
	if err != nil {
		return domain.FixedActivityConfig{}, err
	}
	end, err := parseOptionalDate(field+".end_date", src.EndDate)
	if err != nil {
		return domain.FixedActivityConfig{}, err
	}
	list, err := convertIntensifications(field, src.Intensifications)
	if err != nil {
		return domain.FixedActivityConfig{}, err
	}
	return domain.FixedActivityConfig{Enabled: src.Enabled, StartDate: start, EndDate: end, Intensifications: list}, nil
}

func convertSimple(field string, src *SimpleActivityImport) (domain.SimpleActivityConfig, error) {
	if src == nil {
		return domain.SimpleActivityConfig{}, nil
	}
	durations, err := convertDurations(field+".durations", src.Durations)
	if err != nil {
		return domain.SimpleActivityConfig{}, err
	}
	return domain.SimpleActivityConfig{Enabled: src.Enabled, Durations: durations}, nil
}

// Export renders a domain configuration back into the file schema, so a
// stored configuration can be edited and imported again.
func Export(cfg *domain.PlanConfig) *ConfigSchema {
	schema := &ConfigSchema{
		ScheduleType: string(cfg.ScheduleType),
		EndDate:      formatOptionalDate(cfg.EndDate),
		WeeklyHours:  make(map[string]float64, 7),
	}
	for day, h := range cfg.WeeklyHours {
		schema.WeeklyHours[strconv.Itoa(day)] = h
	}

	indices := make([]int, 0, len(cfg.TopicPrefs))
	for idx := range cfg.TopicPrefs {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		pref := cfg.TopicPrefs[idx]
		if pref == domain.DefaultTopicPreference() {
			continue
		}
		included, difficulty := pref.Included, pref.Difficulty
		schema.Topics = append(schema.Topics, TopicImport{Index: idx, Included: &included, Difficulty: &difficulty})
	}

	schema.Simulations = &SimulationsImport{
		Complete:   exportSimulation(cfg.Simulations.Complete),
		Fragmented: exportSimulation(cfg.Simulations.Fragmented),
	}
	schema.Revision = exportSimple(cfg.Revision)
	schema.Writing = exportSimple(cfg.Writing)
	schema.CorrectionComplete = exportFixed(cfg.CorrectionComplete)
	schema.CorrectionFragmented = exportFixed(cfg.CorrectionFragmented)
	schema.GapsComplete = exportFixed(cfg.GapsComplete)
	schema.GapsFragmented = exportFixed(cfg.GapsFragmented)
	schema.FreeDays = append([]string(nil), cfg.FreeDays...)
	return schema
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func exportDurations(d domain.DayDurations) map[string]int {
	if len(d) == 0 {
		return nil
	}
	out := make(map[string]int, len(d))
	for day, minutes := range d {
		out[strconv.Itoa(int(day))] = minutes
	}
	return out
}

func exportIntensifications(list []domain.Intensification) []IntensificationImport {
	if len(list) == 0 {
		return nil
	}
	out := make([]IntensificationImport, 0, len(list))
	for _, in := range list {
		days := make([]int, 0, len(in.Days))
		for _, d := range in.Days {
			days = append(days, int(d))
		}
		out = append(out, IntensificationImport{
			StartDate: formatOptionalDate(in.StartDate),
			Days:      days,
			Durations: exportDurations(in.Durations),
		})
	}
	return out
}

func exportSimulation(s domain.SimulationSchedule) *SimulationImport {
	return &SimulationImport{
		Enabled:          s.Enabled,
		StartDate:        formatOptionalDate(s.StartDate),
		EndDate:          formatOptionalDate(s.EndDate),
		Intensifications: exportIntensifications(s.Intensifications),
	}
}

func exportFixed(c domain.FixedActivityConfig) *FixedActivityImport {
	return &FixedActivityImport{
		Enabled:          c.Enabled,
		StartDate:        formatOptionalDate(c.StartDate),
		EndDate:          formatOptionalDate(c.EndDate),
		Intensifications: exportIntensifications(c.Intensifications),
	}
}

func exportSimple(c domain.SimpleActivityConfig) *SimpleActivityImport {
	return &SimpleActivityImport{Enabled: c.Enabled, Durations: exportDurations(c.Durations)}
}
