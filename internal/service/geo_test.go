package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/service"
)

func TestAccuracyAppearance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		accuracyM float64
		wantColor service.RingColor
		wantRing  bool
	}{
		{name: "zero accuracy means no ring, default blue", accuracyM: 0, wantColor: service.RingBlue, wantRing: false},
		{name: "negative accuracy means no ring", accuracyM: -1, wantColor: service.RingBlue, wantRing: false},
		{name: "5m is green", accuracyM: 5, wantColor: service.RingGreen, wantRing: true},
		{name: "15m is blue", accuracyM: 15, wantColor: service.RingBlue, wantRing: true},
		{name: "35m is amber", accuracyM: 35, wantColor: service.RingAmber, wantRing: true},
		{name: "100m is red", accuracyM: 100, wantColor: service.RingRed, wantRing: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			color, ring := service.AccuracyAppearance(tc.accuracyM)
			require.Equal(t, tc.wantColor, color)
			require.Equal(t, tc.wantRing, ring)
		})
	}
}

func TestMarkerColor(t *testing.T) {
	t.Parallel()

	require.NotEqual(t,
		service.MarkerColor(entity.SurveyTypeExisting),
		service.MarkerColor(entity.SurveyTypePropose),
	)
}

func TestSurveyMarker(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ts := NewTestService(t)

	id := uuid.Must(uuid.NewV4())
	survey := entity.Survey{
		ID:         id,
		SurveyType: entity.SurveyTypeExisting,
		Title:      "Tiang PJU Jl. Sudirman",
		Latitude:   -8.65,
		Longitude:  115.21,
		AccuracyM:  7.5,
		Status:     entity.SurveyStatusPending,
	}

	ts.surveys.EXPECT().SurveyByID(gomock.Any(), id).Return(survey, nil)

	marker, err := ts.s.SurveyMarker(ctx, id)
	require.NoError(t, err)
	require.Equal(t, service.MarkerColor(entity.SurveyTypeExisting), marker.Color)
	require.NotNil(t, marker.Ring)
	require.Equal(t, service.RingGreen, marker.Ring.Color)
	require.Equal(t, 7.5, marker.Ring.RadiusM)
	require.Equal(t, service.TimestampFallback, marker.CreatedAtText)

	// no accuracy, no ring
	survey.AccuracyM = 0
	ts.surveys.EXPECT().SurveyByID(gomock.Any(), id).Return(survey, nil)

	marker, err = ts.s.SurveyMarker(ctx, id)
	require.NoError(t, err)
	require.Nil(t, marker.Ring)
	require.Equal(t, service.RingBlue, marker.AccuracyColor)
}
