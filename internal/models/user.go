package models

import (
	"time"
)

type Role string

const (
	RoleEmployee    Role = "Employee"
	RoleManager     Role = "Manager"
	RoleHRAdmin     Role = "HR_Admin"
	RoleSystemAdmin Role = "System_Admin"
)

// managerRoles is the capability set allowed to own team memberships
// and approve goals.
var managerRoles = map[Role]struct{}{
	RoleManager:     {},
	RoleHRAdmin:     {},
	RoleSystemAdmin: {},
}

var adminRoles = map[Role]struct{}{
	RoleHRAdmin:     {},
	RoleSystemAdmin: {},
}

func (r Role) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleHRAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

func (r Role) CanManage() bool {
	_, ok := managerRoles[r]
	return ok
}

func (r Role) IsAdmin() bool {
	_, ok := adminRoles[r]
	return ok
}

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         Role       `db:"role"`
	ManagerID    *string    `db:"manager_id"`
	Department   *string    `db:"department"`
	ProfileImage *string    `db:"profile_image"`
	CreatedAt    *time.Time `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}
