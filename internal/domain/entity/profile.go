package entity

import "github.com/google/uuid"

// Profile is the caller's user-profile row from the hosted auth store.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	GymID    uuid.UUID `json:"gym_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}

const RoleAdmin = "admin"

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
