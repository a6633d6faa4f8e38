package schemas

import "time"

type SalesStaffCreate struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

type SalesStaffUpdate struct {
	Name  Field[string] `json:"name"`
	Email Field[string] `json:"email"`
	Phone Field[string] `json:"phone"`
}

type SalesStaff struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
