package models

import "time"

type GoalStatus string

const (
	GoalStatusDraft           GoalStatus = "Draft"
	GoalStatusPendingApproval GoalStatus = "Pending_Approval"
	GoalStatusApproved        GoalStatus = "Approved"
	GoalStatusInProgress      GoalStatus = "In_Progress"
	GoalStatusCompleted       GoalStatus = "Completed"
	GoalStatusCancelled       GoalStatus = "Cancelled"
)

func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusDraft, GoalStatusPendingApproval, GoalStatusApproved,
		GoalStatusInProgress, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}

type Goal struct {
	ID            string     `db:"id"`
	EmployeeID    string     `db:"employee_id"`
	ManagerID     *string    `db:"manager_id"`
	Title         string     `db:"title"`
	Description   *string    `db:"description"`
	Status        GoalStatus `db:"status"`
	ApprovalDate  *time.Time `db:"approval_date"`
	CompletedDate *time.Time `db:"completed_date"`
	CreatedAt     *time.Time `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}
