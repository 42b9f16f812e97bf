package response

import "github.com/kstagehub/kstage-backend/domain"

type Soloist struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	StageName   string  `json:"stage_name,omitempty"`
	Photo       string  `json:"photo,omitempty"`
	Type        string  `json:"type"`
	Birthday    string  `json:"birthday,omitempty"`
	ZodiacSign  string  `json:"zodiac_sign,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Weight      float64 `json:"weight,omitempty"`
	MBTIType    string  `json:"mbti_type,omitempty"`
	Nationality string  `json:"nationality,omitempty"`
	Bio         string  `json:"bio,omitempty"`
	Company     string  `json:"company,omitempty"`
	DebutDate   string  `json:"debut_date,omitempty"`
	Social      Social  `json:"social"`
	Views       int64   `json:"views"`
	Favorites   int64   `json:"favorites"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NewSoloistFromDomain: Domain -> Response
func NewSoloistFromDomain(s *domain.Soloist) Soloist {
	return Soloist{
		ID:          s.ID,
		Name:        s.Name,
		StageName:   s.StageName,
		Photo:       s.Photo,
		Type:        s.Type,
		Birthday:    formatDate(s.Birthday),
		ZodiacSign:  s.ZodiacSign,
		Height:      s.Height,
		Weight:      s.Weight,
		MBTIType:    s.MBTIType,
		Nationality: s.Nationality,
		Bio:         s.Bio,
		Company:     s.Company,
		DebutDate:   formatDate(s.DebutDate),
		Social:      newSocialFromDomain(s.Social),
		Views:       s.Views,
		Favorites:   s.Favorites,
		CreatedAt:   s.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   s.UpdatedAt.Format(DateTimeFormat),
	}
}
