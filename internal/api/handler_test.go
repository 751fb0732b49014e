package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/api"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/mocks"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
)

type TestServer struct {
	s       *mocks.MockService
	fetcher *mocks.MockFetcher
	srv     *httptest.Server
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	ctrl := gomock.NewController(t)

	s := mocks.NewMockService(ctrl)
	fetcher := mocks.NewMockFetcher(ctrl)

	h := api.NewHandler(s, fetcher)
	mw := api.NewMiddleware(s)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return &TestServer{s: s, fetcher: fetcher, srv: srv}
}

func (ts *TestServer) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	tokens := entity.UserTokens{
		AccessToken: "token-123",
		User:        entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "budi", Role: entity.RoleAdmin},
	}

	ts.s.EXPECT().SignIn(gomock.Any(), "budi@example.com", "rahasia123").Return(tokens, nil)

	resp := ts.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{
		Identifier: "budi@example.com",
		Password:   "rahasia123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got entity.UserTokens
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, tokens.AccessToken, got.AccessToken)
	require.Equal(t, tokens.User.Username, got.User.Username)
}

func TestHandler_LoginErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "empty credentials", err: entity.ErrEmptyCredentials, wantCode: http.StatusBadRequest},
		{name: "unknown account", err: entity.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "wrong password", err: entity.ErrWrongPassword, wantCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ts := NewTestServer(t)
			ts.s.EXPECT().SignIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(entity.UserTokens{}, tc.err)

			resp := ts.do(t, http.MethodPost, "/api/auth/login", "", api.LoginRequest{Identifier: "x", Password: "y"})
			require.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	ts.s.EXPECT().SignOut(gomock.Any(), "token-123").Return(nil)

	resp := ts.do(t, http.MethodPost, "/api/auth/logout", "token-123", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// without a token there is nothing to destroy
	resp = ts.do(t, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_Setup(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	created := service.BootstrapResult{
		Created: true,
		Credentials: &entity.SuperAdminCredentials{
			Email:    "superadmin@gesa.local",
			Username: "superadmin",
			Password: "one-time",
		},
	}

	ts.s.EXPECT().CreateInitialSuperAdmin(gomock.Any()).Return(created, nil)

	resp := ts.do(t, http.MethodPost, "/api/setup", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got service.BootstrapResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.True(t, got.Created)
	require.NotNil(t, got.Credentials)
	require.Equal(t, "one-time", got.Credentials.Password)

	// second call: nothing created, no credentials leak
	ts.s.EXPECT().CreateInitialSuperAdmin(gomock.Any()).Return(service.BootstrapResult{Created: false}, nil)

	resp = ts.do(t, http.MethodPost, "/api/setup", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.False(t, got.Created)
	require.Nil(t, got.Credentials)
}

func TestHandler_AuthGuard(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	// no token at all
	resp := ts.do(t, http.MethodGet, "/api/surveys", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// dead session
	ts.s.EXPECT().ValidateToken(gomock.Any(), "stale").Return(entity.Admin{}, entity.ErrSessionRevoked)

	resp = ts.do(t, http.MethodGet, "/api/surveys", "stale", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "siti", Role: entity.RoleSuperAdmin}

	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil)

	resp := ts.do(t, http.MethodGet, "/api/auth/me", "token-123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got entity.Admin
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, admin.ID, got.ID)
	require.Equal(t, admin.Username, got.Username)
}

func TestHandler_ListSurveys(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "siti", Role: entity.RoleAdmin}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil).AnyTimes()

	// no query parameters: the unfiltered listing
	ts.s.EXPECT().Surveys(gomock.Any()).Return([]entity.Survey{}, nil)

	resp := ts.do(t, http.MethodGet, "/api/surveys", "token-123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// filter parameters become predicates in the documented order
	want := entity.SurveyFilter{
		Conditions: []entity.SurveyCondition{
			{Field: "survey_type", Value: "existing"},
			{Field: "zone", Value: "utara"},
		},
		Orders: []entity.SurveyOrder{{Field: "created_at", Direction: entity.DESC}},
	}

	ts.s.EXPECT().SurveysByFilter(gomock.Any(), want).Return([]entity.Survey{}, nil)

	resp = ts.do(t, http.MethodGet, "/api/surveys?survey_type=existing&zone=utara", "token-123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// an unknown filter field is the caller's mistake
	ts.s.EXPECT().SurveysByFilter(gomock.Any(), gomock.Any()).Return(nil, entity.ErrBadFilterField)

	resp = ts.do(t, http.MethodGet, "/api/surveys?sort_by=nonsense", "token-123", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CreateSurvey(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "budi", Role: entity.RoleSurveyor}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil).AnyTimes()

	id := uuid.Must(uuid.NewV4())
	ts.s.EXPECT().CreateSurvey(gomock.Any(), gomock.Any()).Return(id, nil)

	resp := ts.do(t, http.MethodPost, "/api/surveys", "token-123", entity.Survey{
		SurveyType: entity.SurveyTypeExisting,
		Title:      "Tiang PJU Jl. Sudirman",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got api.CreateSurveyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, id, got.ID)

	ts.s.EXPECT().CreateSurvey(gomock.Any(), gomock.Any()).Return(uuid.Nil, entity.ErrBadSurveyType)

	resp = ts.do(t, http.MethodPost, "/api/surveys", "token-123", entity.Survey{SurveyType: "drainase"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_SetSurveyStatus(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "siti", Role: entity.RoleAdmin}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil).AnyTimes()

	id := uuid.Must(uuid.NewV4())

	ts.s.EXPECT().SetSurveyStatus(gomock.Any(), id, entity.SurveyStatusApproved).Return(nil)

	resp := ts.do(t, http.MethodPut, "/api/surveys/"+id.String()+"/status", "token-123",
		api.SetStatusRequest{Status: entity.SurveyStatusApproved})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	ts.s.EXPECT().SetSurveyStatus(gomock.Any(), id, entity.SurveyStatus("maybe")).Return(entity.ErrBadStatus)

	resp = ts.do(t, http.MethodPut, "/api/surveys/"+id.String()+"/status", "token-123",
		api.SetStatusRequest{Status: "maybe"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_SurveyByID(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "siti", Role: entity.RoleAdmin}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil).AnyTimes()

	id := uuid.Must(uuid.NewV4())

	ts.s.EXPECT().SurveyByID(gomock.Any(), id).Return(entity.Survey{}, entity.ErrNotFound)

	resp := ts.do(t, http.MethodGet, "/api/surveys/"+id.String(), "token-123", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// a malformed id never reaches the service
	resp = ts.do(t, http.MethodGet, "/api/surveys/not-a-uuid", "token-123", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_DeleteSurvey(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "siti", Role: entity.RoleSuperAdmin}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil).AnyTimes()

	id := uuid.Must(uuid.NewV4())

	ts.s.EXPECT().DeleteSurvey(gomock.Any(), id).Return(nil)

	resp := ts.do(t, http.MethodDelete, "/api/surveys/"+id.String(), "token-123", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	ts.s.EXPECT().DeleteSurvey(gomock.Any(), id).Return(errors.New("boom"))

	resp = ts.do(t, http.MethodDelete, "/api/surveys/"+id.String(), "token-123", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandler_SurveyTypes(t *testing.T) {
	t.Parallel()

	ts := NewTestServer(t)

	admin := entity.Admin{ID: uuid.Must(uuid.NewV4()), Username: "budi", Role: entity.RoleFieldOfficer}
	ts.s.EXPECT().ValidateToken(gomock.Any(), "token-123").Return(admin, nil)

	ts.s.EXPECT().SurveyTypeOptions(entity.TaskPropose).Return([]entity.SurveyTypeDescriptor{
		{ID: entity.SurveyTypePropose, Title: "Usulan APJ", Route: "/survey/apj-propose"},
	})

	resp := ts.do(t, http.MethodGet, "/api/survey-types?task=propose", "token-123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []entity.SurveyTypeDescriptor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	require.Equal(t, entity.SurveyTypePropose, got[0].ID)
}
