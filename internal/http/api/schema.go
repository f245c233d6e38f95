package api

import "time"

type UserSchema struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Department   *string `json:"department,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type GoalSchema struct {
	GoalID        string     `json:"goal_id"`
	EmployeeID    string     `json:"employee_id"`
	ManagerID     *string    `json:"manager_id,omitempty"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Status        string     `json:"status"`
	ApprovalDate  *time.Time `json:"approval_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}

type MembershipSchema struct {
	MembershipID string `json:"membership_id"`
	ManagerID    string `json:"manager_id"`
	EmployeeID   string `json:"employee_id"`
}

type AchievementSchema struct {
	AchievementID string     `json:"achievement_id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Badge         *string    `json:"badge,omitempty"`
	AwardedAt     *time.Time `json:"awarded_at,omitempty"`
}

type ChatSessionSchema struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Topic     string `json:"topic"`
}

type ChatMessageSchema struct {
	MessageID string     `json:"message_id"`
	SessionID string     `json:"session_id"`
	Sender    string     `json:"sender"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type IntegrationSchema struct {
	IntegrationID string  `json:"integration_id"`
	UserID        string  `json:"user_id"`
	Provider      string  `json:"provider"`
	ExternalID    *string `json:"external_id,omitempty"`
	Status        string  `json:"status"`
}
