package entity

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User carries only what the catalog needs from the auth collaborator: the
// effective role, plus enough identity to count accounts for the dashboard.
type User struct {
	ID    string `json:"id" firestore:"id"`
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name" firestore:"name"`
	Role  string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}
