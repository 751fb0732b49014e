package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

// Surveys returns every record, newest first.
func (s *Service) Surveys(ctx context.Context) ([]entity.Survey, error) {
	surveys, err := s.surveys.Surveys(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "list surveys failed", "error", err)

		return nil, fmt.Errorf("list surveys: %w", err)
	}

	return surveys, nil
}

// SurveysByFilter applies the caller's predicates and ordering as-is.
// Invalid combinations are rejected by the store and propagated.
func (s *Service) SurveysByFilter(ctx context.Context, filter entity.SurveyFilter) ([]entity.Survey, error) {
	surveys, err := s.surveys.SurveysByFilter(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "list surveys by filter failed", "error", err)

		return nil, fmt.Errorf("list surveys by filter: %w", err)
	}

	return surveys, nil
}

func (s *Service) SurveyByID(ctx context.Context, id uuid.UUID) (entity.Survey, error) {
	survey, err := s.surveys.SurveyByID(ctx, id)
	if err != nil {
		return entity.Survey{}, fmt.Errorf("get survey %s: %w", id, err)
	}

	return survey, nil
}

// CreateSurvey stamps the creation time and returns the generated id.
func (s *Service) CreateSurvey(ctx context.Context, survey entity.Survey) (uuid.UUID, error) {
	if _, err := entity.ParseSurveyType(string(survey.SurveyType)); err != nil {
		return uuid.Nil, err
	}

	survey.ID = uuid.Must(uuid.NewV4())
	survey.CreatedAt = time.Now().UTC()
	survey.UpdatedAt = nil

	if survey.Status == "" {
		survey.Status = entity.SurveyStatusPending
	}

	err := s.surveys.CreateSurvey(ctx, survey)
	if err != nil {
		slog.ErrorContext(ctx, "create survey failed", "error", err)

		return uuid.Nil, fmt.Errorf("create survey: %w", err)
	}

	s.producer.SurveyCreated(ctx, survey.ID, string(survey.SurveyType))

	slog.InfoContext(ctx, "survey created", "survey_id", survey.ID, "survey_type", survey.SurveyType)

	return survey.ID, nil
}

// UpdateSurvey merges the patch and stamps the modification time.
// No read-before-write: concurrent updates are last-write-wins.
func (s *Service) UpdateSurvey(ctx context.Context, id uuid.UUID, patch entity.SurveyPatch) error {
	err := s.surveys.UpdateSurvey(ctx, id, patch, time.Now().UTC())
	if err != nil {
		slog.ErrorContext(ctx, "update survey failed", "survey_id", id, "error", err)

		return fmt.Errorf("update survey %s: %w", id, err)
	}

	s.producer.SurveyUpdated(ctx, id)

	return nil
}

// SetSurveyStatus is the admin validation action: status change plus the
// validator's identity stamped on the record.
func (s *Service) SetSurveyStatus(ctx context.Context, id uuid.UUID, status entity.SurveyStatus) error {
	if _, err := entity.ParseSurveyStatus(string(status)); err != nil {
		return err
	}

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return err
	}

	validatedBy := user.Username

	patch := entity.SurveyPatch{
		Status:      &status,
		ValidatedBy: &validatedBy,
	}

	err = s.surveys.UpdateSurvey(ctx, id, patch, time.Now().UTC())
	if err != nil {
		slog.ErrorContext(ctx, "set survey status failed", "survey_id", id, "error", err)

		return fmt.Errorf("set survey %s status: %w", id, err)
	}

	s.producer.SurveyValidated(ctx, id, string(status), validatedBy)

	slog.InfoContext(ctx, "survey validated", "survey_id", id, "status", status, "validated_by", validatedBy)

	return nil
}

// DeleteSurvey is a hard delete, no tombstone.
func (s *Service) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	err := s.surveys.DeleteSurvey(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "delete survey failed", "survey_id", id, "error", err)

		return fmt.Errorf("delete survey %s: %w", id, err)
	}

	s.producer.SurveyDeleted(ctx, id)

	return nil
}
