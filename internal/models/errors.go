package models

import "errors"

// Domain error values shared by repositories, services and handlers.
// Services wrap them with context via fmt.Errorf("%w: ..."), handlers map
// them to HTTP statuses with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPermissionDenied  = errors.New("permission denied")
)
