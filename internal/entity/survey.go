package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type SurveyType string

const (
	SurveyTypeExisting SurveyType = "existing"
	SurveyTypePropose  SurveyType = "apj-propose"
)

func ParseSurveyType(s string) (SurveyType, error) {
	switch SurveyType(s) {
	case SurveyTypeExisting, SurveyTypePropose:
		return SurveyType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadSurveyType, s)
	}
}

type SurveyStatus string

const (
	SurveyStatusPending  SurveyStatus = "pending"
	SurveyStatusApproved SurveyStatus = "approved"
	SurveyStatusRejected SurveyStatus = "rejected"
)

func ParseSurveyStatus(s string) (SurveyStatus, error) {
	switch SurveyStatus(s) {
	case SurveyStatusPending, SurveyStatusApproved, SurveyStatusRejected:
		return SurveyStatus(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadStatus, s)
	}
}

// Survey is one street-lighting observation submitted from the field.
// Extra holds the long tail of form fields that have no dedicated column.
type Survey struct {
	ID          uuid.UUID      `json:"id"`
	SurveyType  SurveyType     `json:"surveyType"`
	Title       string         `json:"title"`
	SurveyDate  string         `json:"surveyDate"`
	SurveyTime  string         `json:"surveyTime"`
	Location    string         `json:"location"`
	RoadName    string         `json:"roadName"`
	Zone        string         `json:"zone"`
	Category    string         `json:"category"`
	OfficerName string         `json:"officerName"`
	PowerKWH    float64        `json:"powerKwh"`
	MeterNumber string         `json:"meterNumber"`
	Voltage     float64        `json:"voltage"`
	PoleHeightM float64        `json:"poleHeightM"`
	PoleType    string         `json:"poleType"`
	LampType    string         `json:"lampType"`
	LampPowerW  float64        `json:"lampPowerW"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	AccuracyM   float64        `json:"accuracyM"`
	Status      SurveyStatus   `json:"status"`
	ValidatedBy *string        `json:"validatedBy,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
}

// SurveyPatch carries a partial update; nil fields are left untouched.
// There is no read-before-write, concurrent updates are last-write-wins.
type SurveyPatch struct {
	Title       *string        `json:"title,omitempty"`
	SurveyDate  *string        `json:"surveyDate,omitempty"`
	SurveyTime  *string        `json:"surveyTime,omitempty"`
	Location    *string        `json:"location,omitempty"`
	RoadName    *string        `json:"roadName,omitempty"`
	Zone        *string        `json:"zone,omitempty"`
	Category    *string        `json:"category,omitempty"`
	OfficerName *string        `json:"officerName,omitempty"`
	PowerKWH    *float64       `json:"powerKwh,omitempty"`
	MeterNumber *string        `json:"meterNumber,omitempty"`
	Voltage     *float64       `json:"voltage,omitempty"`
	PoleHeightM *float64       `json:"poleHeightM,omitempty"`
	PoleType    *string        `json:"poleType,omitempty"`
	LampType    *string        `json:"lampType,omitempty"`
	LampPowerW  *float64       `json:"lampPowerW,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	AccuracyM   *float64       `json:"accuracyM,omitempty"`
	Status      *SurveyStatus  `json:"status,omitempty"`
	ValidatedBy *string        `json:"validatedBy,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

type SortDirection string

const (
	ASC  SortDirection = "ASC"
	DESC SortDirection = "DESC"
)

type SurveyCondition struct {
	Field string
	Value any
}

type SurveyOrder struct {
	Field     string
	Direction SortDirection
}

// SurveyFilter is an ordered list of equality predicates and order clauses,
// applied to the query exactly in the order given.
type SurveyFilter struct {
	Conditions []SurveyCondition
	Orders     []SurveyOrder
	Limit      uint64
}

// TaskType restricts which survey types a field user may currently submit.
// It mirrors the active-task descriptor kept on the client.
type TaskType string

const (
	TaskProposeExisting TaskType = "propose-existing"
	TaskPropose         TaskType = "propose"
	TaskExisting        TaskType = "existing"
)

// SurveyTypeDescriptor is one entry point on the survey selection screen.
type SurveyTypeDescriptor struct {
	ID          SurveyType `json:"id"`
	Title       string     `json:"title"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Route       string     `json:"route"`
}
