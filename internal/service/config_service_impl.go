package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/importer"
	"github.com/alexanderramin/cronograma/internal/repository"
)

func (s *planService) SaveConfig(ctx context.Context, userID string, cfg *domain.PlanConfig) (err error) {
	defer s.observe(ctx, "save-config", map[string]any{"user": userID}, &err)()

	if !domain.ValidScheduleTypes[string(cfg.ScheduleType)] {
		return &app.PlanError{Code: app.PlanErrInvalid, Message: fmt.Sprintf("unknown schedule type %q", cfg.ScheduleType)}
	}
	if cfg.TopicPrefs == nil {
		cfg.TopicPrefs = make(domain.TopicPrefs)
	}
	return s.configs.Upsert(ctx, userID, cfg)
}

func (s *planService) LoadConfig(ctx context.Context, userID string) (*domain.PlanConfig, error) {
	cfg, err := s.configs.Get(ctx, userID)
	if err != nil {
		return nil, noConfig(err)
	}
	return cfg, nil
}

func (s *planService) ImportConfig(ctx context.Context, userID, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadConfigSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	return s.ImportConfigFromSchema(ctx, userID, schema)
}

func (s *planService) ImportConfigFromSchema(ctx context.Context, userID string, schema *importer.ConfigSchema) (res *app.ImportResult, err error) {
	fields := map[string]any{"user": userID}
	defer s.observe(ctx, "import-config", fields, &err)()

	if errs := importer.ValidateConfigSchema(schema, s.today(nil)); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	cfg, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting config: %w", err)
	}
	if err = s.configs.Upsert(ctx, userID, cfg); err != nil {
		return nil, err
	}

	fields["schedule_type"] = string(cfg.ScheduleType)
	return &app.ImportResult{
		Config:         cfg,
		TopicOverrides: len(cfg.TopicPrefs),
		FreeDays:       len(cfg.FreeDays),
	}, nil
}

func (s *planService) ExportConfig(ctx context.Context, userID string) (*importer.ConfigSchema, error) {
	cfg, err := s.LoadConfig(ctx, userID)
	if err != nil {
		return nil, err
	}
	return importer.Export(cfg), nil
}

func (s *planService) AddFreeDay(ctx context.Context, userID, date string) (err error) {
	defer s.observe(ctx, "add-free-day", map[string]any{"user": userID, "date": date}, &err)()

	if _, err = parseDate(date); err != nil {
		return err
	}
	cfg, err := s.LoadConfig(ctx, userID)
	if err != nil {
		return err
	}
	if cfg.HasFreeDay(date) {
		return nil
	}
	cfg.FreeDays = append(cfg.FreeDays, date)
	sort.Strings(cfg.FreeDays)
	return s.configs.Upsert(ctx, userID, cfg)
}

func (s *planService) RemoveFreeDay(ctx context.Context, userID, date string) (err error) {
	defer s.observe(ctx, "remove-free-day", map[string]any{"user": userID, "date": date}, &err)()

	if _, err = parseDate(date); err != nil {
		return err
	}
	cfg, err := s.LoadConfig(ctx, userID)
	if err != nil {
		return err
	}
	kept := cfg.FreeDays[:0]
	for _, d := range cfg.FreeDays {
		if d != date {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(cfg.FreeDays) {
		return &app.PlanError{Code: app.PlanErrInvalidDate, Message: fmt.Sprintf("%s is not a free day", date)}
	}
	cfg.FreeDays = kept
	return s.configs.Upsert(ctx, userID, cfg)
}

func (s *planService) ListFreeDays(ctx context.Context, userID string) ([]string, error) {
	cfg, err := s.configs.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg.FreeDays, nil
}
