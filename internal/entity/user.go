package entity

import "time"

// User is the persisted record behind the /users endpoints. ID and
// CreatedAt are server-assigned; CreatedAt never changes after creation.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}
