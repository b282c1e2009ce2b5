package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeIDExists  = errors.New("employee ID already exists")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidEmployeeID = errors.New("invalid employee ID format")
)
