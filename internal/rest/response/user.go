package response

import "github.com/kstagehub/kstage-backend/domain"

const DateTimeFormat = "2006-01-02 15:04:05"
const DateFormat = "2006-01-02"

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Role      string `json:"role,omitempty"`
}

// NewUserFromDomain: Domain -> Response. The password hash never leaves
// the domain layer; this shape has no field for it.
func NewUserFromDomain(u *domain.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      u.Role,
	}
}

type Auth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
