package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ConfigSchema is the top-level JSON structure of a plan configuration file.
// Weekday keys are the strings "0" (Sunday) through "6" (Saturday); dates
// use YYYY-MM-DD.
type ConfigSchema struct {
	ScheduleType         string                `json:"schedule_type" validate:"required,oneof=extensive intensive"`
	EndDate              *string               `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WeeklyHours          map[string]float64    `json:"weekly_hours" validate:"required,dive,keys,weekday,endkeys,gte=0,lte=24"`
	Topics               []TopicImport         `json:"topics,omitempty" validate:"dive"`
	Simulations          *SimulationsImport    `json:"simulations,omitempty"`
	Revision             *SimpleActivityImport `json:"revision,omitempty"`
	Writing              *SimpleActivityImport `json:"writing,omitempty"`
	CorrectionComplete   *FixedActivityImport  `json:"correction_complete,omitempty"`
	CorrectionFragmented *FixedActivityImport  `json:"correction_fragmented,omitempty"`
	GapsComplete         *FixedActivityImport  `json:"gaps_complete,omitempty"`
	GapsFragmented       *FixedActivityImport  `json:"gaps_fragmented,omitempty"`
	FreeDays             []string              `json:"free_days,omitempty" validate:"dive,datetime=2006-01-02"`
}

// TopicImport overrides the default preference of one catalog topic.
// Topics not listed stay included at the default difficulty.
type TopicImport struct {
	Index      int   `json:"index" validate:"gte=0"`
	Included   *bool `json:"included,omitempty"`
	Difficulty *int  `json:"difficulty,omitempty" validate:"omitempty,gte=0,lte=4"`
}

type IntensificationImport struct {
	StartDate *string        `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Days      []int          `json:"days" validate:"dive,gte=0,lte=6"`
	Durations map[string]int `json:"durations,omitempty" validate:"dive,keys,weekday,endkeys,gte=0"`
}

// FixedActivityImport configures a correction or gap-filling activity.
// EndDate is only honored on fragmented variants.
type FixedActivityImport struct {
	Enabled          bool                    `json:"enabled"`
	StartDate        *string                 `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string                 `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Intensifications []IntensificationImport `json:"intensifications,omitempty" validate:"dive"`
}

type SimulationImport struct {
	Enabled          bool                    `json:"enabled"`
	StartDate        *string                 `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string                 `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Intensifications []IntensificationImport `json:"intensifications,omitempty" validate:"dive"`
}

type SimulationsImport struct {
	Complete   *SimulationImport `json:"complete,omitempty"`
	Fragmented *SimulationImport `json:"fragmented,omitempty"`
}

type SimpleActivityImport struct {
	Enabled   bool           `json:"enabled"`
	Durations map[string]int `json:"durations,omitempty" validate:"dive,keys,weekday,endkeys,gte=0"`
}

// LoadConfigSchema reads and parses a plan configuration file.
func LoadConfigSchema(path string) (*ConfigSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfigSchema(bytes.NewReader(data))
}

// ParseConfigSchema decodes a configuration document. Unknown fields are
// rejected so that typos surface instead of being silently ignored.
func ParseConfigSchema(r io.Reader) (*ConfigSchema, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var schema ConfigSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &schema, nil
}
