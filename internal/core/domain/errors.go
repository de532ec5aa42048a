package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("access forbidden")

	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrTutorialNotFound     = errors.New("tutorial not found")
	ErrSchemeNotFound       = errors.New("scheme not found")
	ErrWorkshopNotFound     = errors.New("workshop not found")
	ErrRegistrationNotFound = errors.New("registration not found")

	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrAlreadyRegistered = errors.New("already registered for workshop")
	ErrWorkshopFull      = errors.New("workshop is full")
	ErrInvalidCategory   = errors.New("invalid scheme category")
)
