package models

import "time"

// TeamMembership is a secondary ("dotted-line") reporting edge between a
// manager and an employee. It is independent of User.ManagerID, which holds
// the primary direct-report edge.
type TeamMembership struct {
	ID         string     `db:"id"`
	ManagerID  string     `db:"manager_id"`
	EmployeeID string     `db:"employee_id"`
	CreatedAt  *time.Time `db:"created_at"`
}
