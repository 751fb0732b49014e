package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

type SurveyRepository struct {
	db *pgxpool.Pool
}

func NewSurveyRepository(pool *pgxpool.Pool) *SurveyRepository {
	return &SurveyRepository{
		db: pool,
	}
}

var surveyColumns = []string{
	"id",
	"survey_type",
	"title",
	"survey_date",
	"survey_time",
	"location",
	"road_name",
	"zone",
	"category",
	"officer_name",
	"power_kwh",
	"meter_number",
	"voltage",
	"pole_height_m",
	"pole_type",
	"lamp_type",
	"lamp_power_w",
	"latitude",
	"longitude",
	"accuracy_m",
	"status",
	"validated_by",
	"extra",
	"created_at",
	"updated_at",
}

var knownSurveyColumn = func() map[string]struct{} {
	m := make(map[string]struct{}, len(surveyColumns))
	for _, c := range surveyColumns {
		m[c] = struct{}{}
	}

	return m
}()

func (r *SurveyRepository) Surveys(ctx context.Context) ([]entity.Survey, error) {
	stmt := sq.Select(surveyColumns...).
		From("surveys").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	return r.querySurveys(ctx, sqlQuery, args...)
}

// SurveysByFilter applies the filter's predicates and order clauses in the
// order given. Unknown field names are rejected the same way the store
// rejects an invalid query, before anything is executed.
func (r *SurveyRepository) SurveysByFilter(ctx context.Context, filter entity.SurveyFilter) ([]entity.Survey, error) {
	stmt := sq.Select(surveyColumns...).
		From("surveys").
		PlaceholderFormat(sq.Dollar)

	for _, cond := range filter.Conditions {
		if _, ok := knownSurveyColumn[cond.Field]; !ok {
			return nil, fmt.Errorf("%w: %q", entity.ErrBadFilterField, cond.Field)
		}

		stmt = stmt.Where(sq.Eq{cond.Field: cond.Value})
	}

	for _, order := range filter.Orders {
		if _, ok := knownSurveyColumn[order.Field]; !ok {
			return nil, fmt.Errorf("%w: %q", entity.ErrBadFilterField, order.Field)
		}

		direction := order.Direction
		if direction != entity.ASC && direction != entity.DESC {
			direction = entity.ASC
		}

		stmt = stmt.OrderBy(fmt.Sprintf("%s %s", order.Field, direction))
	}

	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	return r.querySurveys(ctx, sqlQuery, args...)
}

func (r *SurveyRepository) SurveyByID(ctx context.Context, id uuid.UUID) (entity.Survey, error) {
	stmt := sq.Select(surveyColumns...).
		From("surveys").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return entity.Survey{}, err
	}

	survey, err := scanSurvey(r.db.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Survey{}, entity.ErrNotFound
		}

		return entity.Survey{}, err
	}

	return survey, nil
}

func (r *SurveyRepository) CreateSurvey(ctx context.Context, survey entity.Survey) error {
	sqlQuery := `
		INSERT INTO surveys
			(id, survey_type, title, survey_date, survey_time, location, road_name, zone, category,
			officer_name, power_kwh, meter_number, voltage, pole_height_m, pole_type, lamp_type,
			lamp_power_w, latitude, longitude, accuracy_m, status, validated_by, extra, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25)`

	extra, err := marshalExtra(survey.Extra)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlQuery,
		survey.ID,
		survey.SurveyType,
		survey.Title,
		survey.SurveyDate,
		survey.SurveyTime,
		survey.Location,
		survey.RoadName,
		survey.Zone,
		survey.Category,
		survey.OfficerName,
		survey.PowerKWH,
		survey.MeterNumber,
		survey.Voltage,
		survey.PoleHeightM,
		survey.PoleType,
		survey.LampType,
		survey.LampPowerW,
		survey.Latitude,
		survey.Longitude,
		survey.AccuracyM,
		survey.Status,
		survey.ValidatedBy,
		extra,
		survey.CreatedAt,
		survey.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return nil
}

// UpdateSurvey merges only the provided fields. No read-before-write:
// concurrent updates are last-write-wins.
func (r *SurveyRepository) UpdateSurvey(ctx context.Context, id uuid.UUID, patch entity.SurveyPatch, updatedAt time.Time) error {
	set := patchSetMap(patch)
	set["updated_at"] = updatedAt

	stmt := sq.Update("surveys").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *SurveyRepository) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	sqlQuery := `DELETE FROM surveys WHERE id = $1`

	tag, err := r.db.Exec(ctx, sqlQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

//nolint:cyclop // one branch per optional field
func patchSetMap(patch entity.SurveyPatch) map[string]any {
	set := map[string]any{}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}

	if patch.SurveyDate != nil {
		set["survey_date"] = *patch.SurveyDate
	}

	if patch.SurveyTime != nil {
		set["survey_time"] = *patch.SurveyTime
	}

	if patch.Location != nil {
		set["location"] = *patch.Location
	}

	if patch.RoadName != nil {
		set["road_name"] = *patch.RoadName
	}

	if patch.Zone != nil {
		set["zone"] = *patch.Zone
	}

	if patch.Category != nil {
		set["category"] = *patch.Category
	}

	if patch.OfficerName != nil {
		set["officer_name"] = *patch.OfficerName
	}

	if patch.PowerKWH != nil {
		set["power_kwh"] = *patch.PowerKWH
	}

	if patch.MeterNumber != nil {
		set["meter_number"] = *patch.MeterNumber
	}

	if patch.Voltage != nil {
		set["voltage"] = *patch.Voltage
	}

	if patch.PoleHeightM != nil {
		set["pole_height_m"] = *patch.PoleHeightM
	}

	if patch.PoleType != nil {
		set["pole_type"] = *patch.PoleType
	}

	if patch.LampType != nil {
		set["lamp_type"] = *patch.LampType
	}

	if patch.LampPowerW != nil {
		set["lamp_power_w"] = *patch.LampPowerW
	}

	if patch.Latitude != nil {
		set["latitude"] = *patch.Latitude
	}

	if patch.Longitude != nil {
		set["longitude"] = *patch.Longitude
	}

	if patch.AccuracyM != nil {
		set["accuracy_m"] = *patch.AccuracyM
	}

	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	if patch.ValidatedBy != nil {
		set["validated_by"] = *patch.ValidatedBy
	}

	if patch.Extra != nil {
		b, err := json.Marshal(patch.Extra)
		if err == nil {
			set["extra"] = b
		}
	}

	return set
}

func (r *SurveyRepository) querySurveys(ctx context.Context, sqlQuery string, args ...any) ([]entity.Survey, error) {
	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	surveys := make([]entity.Survey, 0)

	for rows.Next() {
		survey, err := scanSurvey(rows)
		if err != nil {
			return nil, err
		}

		surveys = append(surveys, survey)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return surveys, nil
}

func scanSurvey(row pgx.Row) (entity.Survey, error) {
	var (
		survey entity.Survey
		extra  []byte
	)

	err := row.Scan(
		&survey.ID,
		&survey.SurveyType,
		&survey.Title,
		&survey.SurveyDate,
		&survey.SurveyTime,
		&survey.Location,
		&survey.RoadName,
		&survey.Zone,
		&survey.Category,
		&survey.OfficerName,
		&survey.PowerKWH,
		&survey.MeterNumber,
		&survey.Voltage,
		&survey.PoleHeightM,
		&survey.PoleType,
		&survey.LampType,
		&survey.LampPowerW,
		&survey.Latitude,
		&survey.Longitude,
		&survey.AccuracyM,
		&survey.Status,
		&survey.ValidatedBy,
		&extra,
		&survey.CreatedAt,
		&survey.UpdatedAt,
	)
	if err != nil {
		return entity.Survey{}, err
	}

	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &survey.Extra); err != nil {
			return entity.Survey{}, err
		}
	}

	return survey, nil
}

func marshalExtra(extra map[string]any) ([]byte, error) {
	if extra == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(extra)
}
