package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	SignIn(ctx context.Context, identifier, password string) (entity.UserTokens, error)
	SignOut(ctx context.Context, accessToken string) error
	ValidateToken(ctx context.Context, accessToken string) (entity.Admin, error)
	CreateInitialSuperAdmin(ctx context.Context) (service.BootstrapResult, error)

	Surveys(ctx context.Context) ([]entity.Survey, error)
	SurveysByFilter(ctx context.Context, filter entity.SurveyFilter) ([]entity.Survey, error)
	SurveyByID(ctx context.Context, id uuid.UUID) (entity.Survey, error)
	CreateSurvey(ctx context.Context, survey entity.Survey) (uuid.UUID, error)
	UpdateSurvey(ctx context.Context, id uuid.UUID, patch entity.SurveyPatch) error
	SetSurveyStatus(ctx context.Context, id uuid.UUID, status entity.SurveyStatus) error
	DeleteSurvey(ctx context.Context, id uuid.UUID) error

	SurveyTypeOptions(task entity.TaskType) []entity.SurveyTypeDescriptor
	SurveyMarker(ctx context.Context, id uuid.UUID) (service.MarkerSpec, error)
	SurveyMarkers(ctx context.Context, filter entity.SurveyFilter) ([]service.MarkerSpec, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type Handler struct {
	s       Service
	fetcher Fetcher
}

func NewHandler(s Service, fetcher Fetcher) *Handler {
	return &Handler{
		s:       s,
		fetcher: fetcher,
	}
}

// @Summary Health check
// @Tags ops
// @Success 200 {string} string "ok"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok\n"))
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// @Summary Sign in with email or username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} entity.UserTokens
// @Failure 400 {object} ResponseError "Empty credentials"
// @Failure 401 {object} ResponseError "Wrong password"
// @Failure 404 {object} ResponseError "Account not found"
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Permintaan tidak valid")
		return
	}

	tokens, err := h.s.SignIn(ctx, req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrEmptyCredentials):
			SendErr(ctx, w, http.StatusBadRequest, err, "Email/username dan password wajib diisi")
		case errors.Is(err, entity.ErrNotFound):
			SendErr(ctx, w, http.StatusNotFound, err, "Akun tidak ditemukan")
		case errors.Is(err, entity.ErrWrongPassword):
			SendErr(ctx, w, http.StatusUnauthorized, err, "Password salah")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, tokens)
}

// @Summary Sign out and destroy the session
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /api/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, err := request.BearerExtractor{}.ExtractToken(r)
	if err != nil {
		// nothing to destroy
		w.WriteHeader(http.StatusNoContent)
		return
	}

	err = h.s.SignOut(ctx, accessToken)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Current account behind the session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.Admin
// @Router /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Sesi tidak valid")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// @Summary One-time super admin provisioning
// @Description Creates the super admin unless one exists already. Generated credentials are returned exactly once.
// @Tags setup
// @Produce json
// @Success 200 {object} service.BootstrapResult "Already exists"
// @Success 201 {object} service.BootstrapResult "Created"
// @Router /api/setup [post]
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.s.CreateInitialSuperAdmin(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}

	SendJSON(ctx, w, code, result)
}

// @Summary Survey type entry points allowed for the active task
// @Tags surveys
// @Produce json
// @Param task query string false "Active task type" Enums(propose-existing, propose, existing)
// @Success 200 {array} entity.SurveyTypeDescriptor
// @Router /api/survey-types [get]
func (h *Handler) SurveyTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task := entity.TaskType(r.URL.Query().Get("task"))

	SendJSON(ctx, w, http.StatusOK, h.s.SurveyTypeOptions(task))
}

// @Summary List surveys
// @Description Without query parameters, all surveys ordered by creation time descending. Equality filters and ordering are applied exactly as given.
// @Tags surveys
// @Security BearerAuth
// @Produce json
// @Param survey_type query string false "Filter by survey type"
// @Param status query string false "Filter by status"
// @Param zone query string false "Filter by zone"
// @Param category query string false "Filter by category"
// @Param officer_name query string false "Filter by officer"
// @Param sort_by query string false "Order column"
// @Param order_by query string false "ASC or DESC"
// @Param limit query int false "Max rows"
// @Success 200 {array} entity.Survey
// @Failure 400 {object} ResponseError "Unknown filter field"
// @Router /api/surveys [get]
func (h *Handler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, filtered := surveyFilterFromQuery(r)

	var (
		surveys []entity.Survey
		err     error
	)

	if filtered {
		surveys, err = h.s.SurveysByFilter(ctx, filter)
	} else {
		surveys, err = h.s.Surveys(ctx)
	}

	if err != nil {
		if errors.Is(err, entity.ErrBadFilterField) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Filter tidak valid")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, surveys)
}

// @Summary Survey details
// @Tags surveys
// @Security BearerAuth
// @Produce json
// @Param id path string true "Survey id"
// @Success 200 {object} entity.Survey
// @Failure 404 {object} ResponseError
// @Router /api/surveys/{id} [get]
func (h *Handler) SurveyByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := surveyIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	survey, err := h.s.SurveyByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Data survei tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, survey)
}

type CreateSurveyResponse struct {
	ID uuid.UUID `json:"id"`
}

// @Summary Submit a survey record
// @Tags surveys
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body entity.Survey true "Survey record"
// @Success 201 {object} CreateSurveyResponse
// @Failure 400 {object} ResponseError
// @Router /api/surveys [post]
func (h *Handler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var survey entity.Survey

	err := json.NewDecoder(r.Body).Decode(&survey)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Permintaan tidak valid")
		return
	}

	id, err := h.s.CreateSurvey(ctx, survey)
	if err != nil {
		if errors.Is(err, entity.ErrBadSurveyType) {
			SendErr(ctx, w, http.StatusUnprocessableEntity, err, "Jenis survei tidak dikenal")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, CreateSurveyResponse{ID: id})
}

// @Summary Update survey fields
// @Description Partial merge, last write wins. The modification timestamp is stamped server-side.
// @Tags surveys
// @Security BearerAuth
// @Accept json
// @Param id path string true "Survey id"
// @Param request body entity.SurveyPatch true "Fields to merge"
// @Success 204
// @Failure 404 {object} ResponseError
// @Router /api/surveys/{id} [patch]
func (h *Handler) UpdateSurvey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := surveyIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	var patch entity.SurveyPatch

	err := json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Permintaan tidak valid")
		return
	}

	err = h.s.UpdateSurvey(ctx, id, patch)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Data survei tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SetStatusRequest struct {
	Status entity.SurveyStatus `json:"status"`
}

// @Summary Validate a survey (approve or reject)
// @Tags surveys
// @Security BearerAuth
// @Accept json
// @Param id path string true "Survey id"
// @Param request body SetStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} ResponseError
// @Failure 422 {object} ResponseError "Unknown status"
// @Router /api/surveys/{id}/status [put]
func (h *Handler) SetSurveyStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := surveyIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	var req SetStatusRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Permintaan tidak valid")
		return
	}

	err = h.s.SetSurveyStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrBadStatus):
			SendErr(ctx, w, http.StatusUnprocessableEntity, err, "Status tidak dikenal")
		case errors.Is(err, entity.ErrNotFound):
			SendErr(ctx, w, http.StatusNotFound, err, "Data survei tidak ditemukan")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a survey record
// @Tags surveys
// @Security BearerAuth
// @Param id path string true "Survey id"
// @Success 204
// @Failure 404 {object} ResponseError
// @Router /api/surveys/{id} [delete]
func (h *Handler) DeleteSurvey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := surveyIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	err := h.s.DeleteSurvey(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Data survei tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Map marker for one survey, accuracy ring included
// @Tags map
// @Security BearerAuth
// @Produce json
// @Param id path string true "Survey id"
// @Success 200 {object} service.MarkerSpec
// @Failure 404 {object} ResponseError
// @Router /api/surveys/{id}/marker [get]
func (h *Handler) SurveyMarker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := surveyIDFromURL(ctx, w, r)
	if !ok {
		return
	}

	marker, err := h.s.SurveyMarker(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Data survei tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, marker)
}

// @Summary Map markers for matching surveys
// @Tags map
// @Security BearerAuth
// @Produce json
// @Param survey_type query string false "Filter by survey type"
// @Param status query string false "Filter by status"
// @Success 200 {array} service.MarkerSpec
// @Router /api/surveys/markers [get]
func (h *Handler) SurveyMarkers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, _ := surveyFilterFromQuery(r)

	markers, err := h.s.SurveyMarkers(ctx, filter)
	if err != nil {
		if errors.Is(err, entity.ErrBadFilterField) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Filter tidak valid")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, markers)
}

func surveyIDFromURL(ctx context.Context, w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "ID tidak valid")
		return uuid.Nil, false
	}

	return id, true
}

// query parameters that become equality predicates, in a fixed order
var filterParams = []struct {
	param  string
	column string
}{
	{"survey_type", "survey_type"},
	{"status", "status"},
	{"zone", "zone"},
	{"category", "category"},
	{"officer_name", "officer_name"},
}

func surveyFilterFromQuery(r *http.Request) (entity.SurveyFilter, bool) {
	var filter entity.SurveyFilter

	q := r.URL.Query()

	for _, p := range filterParams {
		if v := q.Get(p.param); v != "" {
			filter.Conditions = append(filter.Conditions, entity.SurveyCondition{Field: p.column, Value: v})
		}
	}

	if sortBy := q.Get("sort_by"); sortBy != "" {
		direction := entity.ASC
		if q.Get("order_by") == string(entity.DESC) {
			direction = entity.DESC
		}

		filter.Orders = append(filter.Orders, entity.SurveyOrder{Field: sortBy, Direction: direction})
	}

	if limit := q.Get("limit"); limit != "" {
		if n, err := strconv.ParseUint(limit, 10, 32); err == nil {
			filter.Limit = n
		}
	}

	filtered := len(filter.Conditions) > 0 || len(filter.Orders) > 0 || filter.Limit > 0
	if len(filter.Orders) == 0 {
		filter.Orders = append(filter.Orders, entity.SurveyOrder{Field: "created_at", Direction: entity.DESC})
	}

	return filter, filtered
}
