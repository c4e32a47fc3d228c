package transport

import "errors"

var (
	ErrRouteFull        = errors.New("route is at capacity")
	ErrUnknownStop      = errors.New("stop is not on the route")
	ErrAlreadyAssigned  = errors.New("student already has an active assignment")
	ErrAssignmentClosed = errors.New("assignment is already ended")
)
