package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr   = "INTERNAL_ERROR"
	ErrValidationErr = "VALIDATION_ERROR"
	ErrBadRequest    = "BAD_REQUEST"

	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUserExists        = "USER_EXISTS"
	ErrCodeMembershipExists  = "MEMBERSHIP_EXISTS"
	ErrCodeIntegrationExists = "INTEGRATION_EXISTS"
	ErrCodeSelfManagement    = "SELF_MANAGEMENT"
	ErrCodeCircular          = "CIRCULAR_RELATIONSHIP"
	ErrCodeInsufficientRole  = "INSUFFICIENT_ROLE"
	ErrCodeNoPermission      = "NO_PERMISSION"
	ErrCodeInvalidState      = "INVALID_STATE"
)

type UserResponse struct {
	User UserSchema `json:"user"`
}

type UsersResponse struct {
	Users []UserSchema `json:"users"`
}

type GoalResponse struct {
	Goal GoalSchema `json:"goal"`
}

type GoalsResponse struct {
	Goals []GoalSchema `json:"goals"`
}

type MembershipResponse struct {
	Membership MembershipSchema `json:"membership"`
}

type MembershipsResponse struct {
	Memberships []MembershipSchema `json:"memberships"`
}

type AchievementResponse struct {
	Achievement AchievementSchema `json:"achievement"`
}

type AchievementsResponse struct {
	Achievements []AchievementSchema `json:"achievements"`
}

type ChatSessionResponse struct {
	Session ChatSessionSchema `json:"session"`
}

type ChatMessageResponse struct {
	Message ChatMessageSchema `json:"message"`
}

type ChatMessagesResponse struct {
	SessionID string              `json:"session_id"`
	Messages  []ChatMessageSchema `json:"messages"`
}

type IntegrationResponse struct {
	Integration IntegrationSchema `json:"integration"`
}

type IntegrationsResponse struct {
	Integrations []IntegrationSchema `json:"integrations"`
}

type AnalyticsResponse struct {
	GoalsByStatus     map[string]int `json:"goals_by_status"`
	UsersByRole       map[string]int `json:"users_by_role"`
	TotalAchievements int            `json:"total_achievements"`
	TotalMemberships  int            `json:"total_memberships"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param()),
			)
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
