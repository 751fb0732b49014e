package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type AdminRepository interface {
	AdminByEmail(ctx context.Context, email string) (entity.Admin, error)
	AdminByUsername(ctx context.Context, username string) (entity.Admin, error)
	AdminByID(ctx context.Context, id uuid.UUID) (entity.Admin, error)
	CreateAdmin(ctx context.Context, admin entity.Admin) error
	CreateSuperAdmin(ctx context.Context, admin entity.Admin) (bool, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, session entity.Session) error
	SessionByID(ctx context.Context, id uuid.UUID) (entity.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

type SurveyRepository interface {
	Surveys(ctx context.Context) ([]entity.Survey, error)
	SurveysByFilter(ctx context.Context, filter entity.SurveyFilter) ([]entity.Survey, error)
	SurveyByID(ctx context.Context, id uuid.UUID) (entity.Survey, error)
	CreateSurvey(ctx context.Context, survey entity.Survey) error
	UpdateSurvey(ctx context.Context, id uuid.UUID, patch entity.SurveyPatch, updatedAt time.Time) error
	DeleteSurvey(ctx context.Context, id uuid.UUID) error
}

type Publisher interface {
	SurveyCreated(ctx context.Context, surveyID uuid.UUID, surveyType string)
	SurveyUpdated(ctx context.Context, surveyID uuid.UUID)
	SurveyValidated(ctx context.Context, surveyID uuid.UUID, status, validatedBy string)
	SurveyDeleted(ctx context.Context, surveyID uuid.UUID)
}

type Service struct {
	cfg      config.Config
	admins   AdminRepository
	sessions SessionRepository
	surveys  SurveyRepository
	producer Publisher
}

func New(
	cfg config.Config,
	admins AdminRepository,
	sessions SessionRepository,
	surveys SurveyRepository,
	producer Publisher,
) *Service {
	return &Service{
		cfg:      cfg,
		admins:   admins,
		sessions: sessions,
		surveys:  surveys,
		producer: producer,
	}
}
