package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrWrongPassword    = errors.New("wrong password")
	ErrEmptyCredentials = errors.New("identifier and password must not be empty")
	ErrUnknownRole      = errors.New("unknown role")
	ErrInvalidToken     = errors.New("invalid token")
	ErrSessionRevoked   = errors.New("session revoked")
)

var (
	ErrBadFilterField = errors.New("unknown filter field")
	ErrBadSurveyType  = errors.New("unknown survey type")
	ErrBadStatus      = errors.New("unknown survey status")
)
