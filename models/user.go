package models

type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	IsVerified bool   `json:"is_verified"`
}
