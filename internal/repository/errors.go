package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUserExists        = errors.New("user with this email already exists")
	ErrMembershipExists  = errors.New("team membership already exists")
	ErrIntegrationExists = errors.New("integration for this provider already exists")

	ErrSelfManagement    = errors.New("user cannot manage themselves")
	ErrCircularReporting = errors.New("membership would create a circular reporting relationship")
	ErrInsufficientRole  = errors.New("insufficient role")
	ErrNoPermission      = errors.New("no permission for this goal")
	ErrGoalNotPending    = errors.New("goal not pending approval")
	ErrInvalidRole       = errors.New("unknown role")
	ErrInvalidTransition = errors.New("invalid status transition")
)
