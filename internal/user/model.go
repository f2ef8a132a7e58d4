package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the public view served by GET /api/users/:userId.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// SignupRequest payload of account creation.
// swagger:model SignupRequest
type SignupRequest struct {
	Username string `json:"username" example:"asha"`
	Email    string `json:"email"    example:"asha@example.com"`
	Password string `json:"password" example:"s3cret!"`
	Role     string `json:"role"     example:"user"`
}

// LoginRequest payload of login. Role is optional; when present the account
// must have it.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"asha@example.com"`
	Password string `json:"password" example:"s3cret!"`
	Role     string `json:"role,omitempty" example:"admin"`
}

// AuthResponse is returned by signup and login.
// swagger:model AuthResponse
type AuthResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
