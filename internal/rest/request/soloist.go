package request

import (
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

type Soloist struct {
	Name        string  `json:"name" binding:"required"`
	StageName   string  `json:"stage_name"`
	Photo       string  `json:"photo"`
	Type        string  `json:"type" binding:"required,oneof=male-solo female-solo"`
	Birthday    string  `json:"birthday"`
	ZodiacSign  string  `json:"zodiac_sign"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	MBTIType    string  `json:"mbti_type" binding:"mbti"`
	Nationality string  `json:"nationality"`
	Bio         string  `json:"bio"`
	Company     string  `json:"company"`
	DebutDate   string  `json:"debut_date"`
	Social      Social  `json:"social"`
}

// ToDomain: Request -> Domain
func (r *Soloist) ToDomain() (domain.Soloist, error) {
	s := domain.Soloist{
		Name:        r.Name,
		StageName:   r.StageName,
		Photo:       r.Photo,
		Type:        r.Type,
		ZodiacSign:  r.ZodiacSign,
		Height:      r.Height,
		Weight:      r.Weight,
		MBTIType:    r.MBTIType,
		Nationality: r.Nationality,
		Bio:         r.Bio,
		Company:     r.Company,
		Social:      r.Social.ToDomain(),
	}

	if r.Birthday != "" {
		t, err := time.Parse(dateFormat, r.Birthday)
		if err != nil {
			return domain.Soloist{}, domain.ErrBadParamInput
		}
		s.Birthday = &t
	}
	if r.DebutDate != "" {
		t, err := time.Parse(dateFormat, r.DebutDate)
		if err != nil {
			return domain.Soloist{}, domain.ErrBadParamInput
		}
		s.DebutDate = &t
	}
	return s, nil
}
