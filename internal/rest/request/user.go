package request

import "github.com/kstagehub/kstage-backend/domain"

type Register struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Avatar    string `json:"avatar"`
}

// ToDomain: Request -> Domain
func (r *Register) ToDomain() domain.User {
	return domain.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Avatar:    r.Avatar,
	}
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfile struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Avatar    string `json:"avatar"`
}

type Favorite struct {
	Kind string `json:"kind" binding:"required,oneof=group soloist"`
	ID   int64  `json:"id" binding:"required"`
}

func (r *Favorite) ToRef() domain.ArtistRef {
	return domain.ArtistRef{
		Kind: domain.ArtistKind(r.Kind),
		ID:   r.ID,
	}
}
