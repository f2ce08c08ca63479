package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const weekdayTag = "weekday"

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Report JSON field names instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(weekdayTag, weekdayKeyValidation)
	_ = validate.RegisterTranslation(weekdayTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fmt.Sprintf("%q is not a weekday (expected 0-6, Sunday = 0)", fmt.Sprint(fe.Value()))
		})
}

func weekdayKeyValidation(fl validator.FieldLevel) bool {
	_, ok := parseWeekday(fl.Field().String())
	return ok
}

func parseWeekday(s string) (time.Weekday, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 6 {
		return 0, false
	}
	return time.Weekday(n), true
}

// ValidateConfigSchema checks the schema for errors before conversion. Field
// level rules come from the struct tags; the remaining checks need the
// catalog or the current date. All errors are returned together.
func ValidateConfigSchema(schema *ConfigSchema, today time.Time) []error {
	var errs []error

	if err := validate.Struct(schema); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []error{err}
		}
		for _, fe := range verrs {
			errs = append(errs, fmt.Errorf("%s: %s", fieldPath(fe), fe.Translate(translator)))
		}
	}

	errs = append(errs, validateTopics(schema)...)
	errs = append(errs, validateEndDate(schema.EndDate, today)...)
	errs = append(errs, validateWeeklyHours(schema.WeeklyHours)...)

	if s := schema.Simulations; s != nil {
		if s.Complete != nil {
			errs = append(errs, validateIntensifications("simulations.complete", s.Complete.Intensifications)...)
		}
		if s.Fragmented != nil {
			errs = append(errs, validateRange("simulations.fragmented", s.Fragmented.StartDate, s.Fragmented.EndDate)...)
			errs = append(errs, validateIntensifications("simulations.fragmented", s.Fragmented.Intensifications)...)
		}
	}
	fixed := []struct {
		name       string
		cfg        *FixedActivityImport
		fragmented bool
	}{
		{"correction_complete", schema.CorrectionComplete, false},
		{"correction_fragmented", schema.CorrectionFragmented, true},
		{"gaps_complete", schema.GapsComplete, false},
		{"gaps_fragmented", schema.GapsFragmented, true},
	}
	for _, f := range fixed {
		if f.cfg == nil {
			continue
		}
		if f.fragmented {
			errs = append(errs, validateRange(f.name, f.cfg.StartDate, f.cfg.EndDate)...)
		}
		errs = append(errs, validateIntensifications(f.name, f.cfg.Intensifications)...)
		errs = append(errs, validateIntensificationDurations(f.name, f.cfg)...)
	}

	return errs
}

// fieldPath turns "ConfigSchema.weekly_hours[9]" into "weekly_hours[9]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validateTopics(schema *ConfigSchema) []error {
	if !domain.ValidScheduleTypes[schema.ScheduleType] {
		return nil
	}
	size := len(catalog.Topics(domain.ScheduleType(schema.ScheduleType)))
	seen := make(map[int]bool, len(schema.Topics))

	var errs []error
	for i, t := range schema.Topics {
		prefix := fmt.Sprintf("topics[%d]", i)
		if t.Index >= size {
			errs = append(errs, fmt.Errorf("%s.index: %d is outside the %s catalog (%d topics)", prefix, t.Index, schema.ScheduleType, size))
		}
		if seen[t.Index] {
			errs = append(errs, fmt.Errorf("%s.index: duplicate topic %d", prefix, t.Index))
		}
		seen[t.Index] = true
	}
	return errs
}

func validateEndDate(end *string, today time.Time) []error {
	if end == nil {
		return nil
	}
	d, err := time.Parse(domain.DateLayout, *end)
	if err != nil {
		// Already reported by the datetime tag.
		return nil
	}
	y, m, day := today.Date()
	if d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC)) {
		return []error{fmt.Errorf("end_date %q is in the past", *end)}
	}
	return nil
}

func validateWeeklyHours(hours map[string]float64) []error {
	if len(hours) == 0 {
		return nil
	}
	for _, h := range hours {
		if h > 0 {
			return nil
		}
	}
	return []error{fmt.Errorf("weekly_hours: at least one day needs study time")}
}

func validateRange(prefix string, start, end *string) []error {
	if start == nil || end == nil {
		return nil
	}
	s, sErr := time.Parse(domain.DateLayout, *start)
	e, eErr := time.Parse(domain.DateLayout, *end)
	if sErr != nil || eErr != nil {
		return nil
	}
	if e.Before(s) {
		return []error{fmt.Errorf("%s.end_date %q must not be before start_date %q", prefix, *end, *start)}
	}
	return nil
}

// validateIntensifications requires every entry after the baseline to carry
// a start date, in non-decreasing order.
func validateIntensifications(prefix string, list []IntensificationImport) []error {
	var errs []error
	var prev *time.Time
	for i, in := range list {
		if i == 0 || in.StartDate == nil {
			if i > 0 {
				errs = append(errs, fmt.Errorf("%s.intensifications[%d].start_date is required after the first entry", prefix, i))
			}
			continue
		}
		d, err := time.Parse(domain.DateLayout, *in.StartDate)
		if err != nil {
			continue
		}
		if prev != nil && d.Before(*prev) {
			errs = append(errs, fmt.Errorf("%s.intensifications[%d].start_date %q is earlier than the previous entry", prefix, i, *in.StartDate))
		}
		prev = &d
	}
	return errs
}

// validateIntensificationDurations requires a duration for every listed day
// of an enabled fixed activity; a missing one would silently schedule nothing.
func validateIntensificationDurations(prefix string, cfg *FixedActivityImport) []error {
	if !cfg.Enabled {
		return nil
	}
	var errs []error
	for i, in := range cfg.Intensifications {
		for _, day := range in.Days {
			if _, ok := in.Durations[strconv.Itoa(day)]; !ok {
				errs = append(errs, fmt.Errorf("%s.intensifications[%d].durations: missing minutes for day %d", prefix, i, day))
			}
		}
	}
	return errs
}
