package models

type GoalStatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type RoleCount struct {
	Role  string `db:"role"`
	Count int    `db:"count"`
}

type Totals struct {
	Achievements int `db:"achievement_count"`
	Memberships  int `db:"membership_count"`
}
