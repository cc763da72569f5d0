package core

import "errors"

// Validation errors keep the user-facing Spanish messages the clients
// already display.
var (
	ErrMissingRequiredFields = errors.New("faltan campos obligatorios: nombre, categoría y modalidad son requeridos")
	ErrTooManyImages         = errors.New("solo se permiten hasta 10 imágenes por servicio")
	ErrInvalidRating         = errors.New("la calificación debe estar entre 1 y 5")
)

var (
	ErrProfileNotFound    = errors.New("business profile not found")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrPostNotFound       = errors.New("portfolio post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileExists      = errors.New("business profile already exists for this user")
	ErrStorageUnavailable = errors.New("object storage is not configured")
)
