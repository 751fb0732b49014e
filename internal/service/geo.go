package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/kajapeguyangan12-ux/gesa-sub002/internal/entity"
)

type RingColor string

const (
	RingGreen RingColor = "green"
	RingBlue  RingColor = "blue"
	RingAmber RingColor = "amber"
	RingRed   RingColor = "red"
)

// Accuracy thresholds in meters.
const (
	accuracyGood = 10
	accuracyFair = 20
	accuracyPoor = 50
)

// Leaflet-style marker pin colors, one per survey category.
const (
	markerColorExisting = "#2a81cb"
	markerColorPropose  = "#cb2b3e"
)

type RingSpec struct {
	RadiusM float64   `json:"radiusM"`
	Color   RingColor `json:"color"`
}

// MarkerSpec is everything a map client needs to draw one survey point:
// position, pin color, optional accuracy ring and the popup fields.
type MarkerSpec struct {
	ID            uuid.UUID           `json:"id"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	Color         string              `json:"color"`
	AccuracyColor RingColor           `json:"accuracyColor"`
	Ring          *RingSpec           `json:"ring,omitempty"`
	Title         string              `json:"title"`
	SurveyType    entity.SurveyType   `json:"surveyType"`
	Status        entity.SurveyStatus `json:"status"`
	OfficerName   string              `json:"officerName"`
	Location      string              `json:"location"`
	CreatedAtText string              `json:"createdAtText"`
	UpdatedAtText string              `json:"updatedAtText"`
}

// AccuracyAppearance bands a GPS accuracy radius into a display color and
// decides whether an accuracy ring is drawn at all. Zero or unknown
// accuracy means no ring and the default blue.
func AccuracyAppearance(accuracyM float64) (RingColor, bool) {
	if accuracyM <= 0 {
		return RingBlue, false
	}

	switch {
	case accuracyM < accuracyGood:
		return RingGreen, true
	case accuracyM < accuracyFair:
		return RingBlue, true
	case accuracyM < accuracyPoor:
		return RingAmber, true
	default:
		return RingRed, true
	}
}

func MarkerColor(t entity.SurveyType) string {
	if t == entity.SurveyTypeExisting {
		return markerColorExisting
	}

	return markerColorPropose
}

// SurveyMarker renders the single-point detail marker, accuracy ring included.
func (s *Service) SurveyMarker(ctx context.Context, id uuid.UUID) (MarkerSpec, error) {
	survey, err := s.surveys.SurveyByID(ctx, id)
	if err != nil {
		return MarkerSpec{}, fmt.Errorf("get survey %s: %w", id, err)
	}

	return buildMarker(survey), nil
}

// SurveyMarkers renders markers for every survey matching the filter.
func (s *Service) SurveyMarkers(ctx context.Context, filter entity.SurveyFilter) ([]MarkerSpec, error) {
	surveys, err := s.surveys.SurveysByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list surveys for markers: %w", err)
	}

	markers := make([]MarkerSpec, 0, len(surveys))
	for _, survey := range surveys {
		markers = append(markers, buildMarker(survey))
	}

	return markers, nil
}

func buildMarker(survey entity.Survey) MarkerSpec {
	accuracyColor, hasRing := AccuracyAppearance(survey.AccuracyM)

	marker := MarkerSpec{
		ID:            survey.ID,
		Latitude:      survey.Latitude,
		Longitude:     survey.Longitude,
		Color:         MarkerColor(survey.SurveyType),
		AccuracyColor: accuracyColor,
		Title:         survey.Title,
		SurveyType:    survey.SurveyType,
		Status:        survey.Status,
		OfficerName:   survey.OfficerName,
		Location:      survey.Location,
		CreatedAtText: FormatTimestamp(survey.CreatedAt),
		UpdatedAtText: FormatTimestamp(survey.UpdatedAt),
	}

	if hasRing {
		marker.Ring = &RingSpec{
			RadiusM: survey.AccuracyM,
			Color:   accuracyColor,
		}
	}

	return marker
}
