package request

import (
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

const dateFormat = "2006-01-02"

type Social struct {
	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

func (s Social) ToDomain() domain.SocialLinks {
	return domain.SocialLinks{
		YouTube:   s.YouTube,
		Twitter:   s.Twitter,
		Instagram: s.Instagram,
		Facebook:  s.Facebook,
	}
}

type Group struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	Type        string   `json:"type" binding:"required,oneof=male-group female-group"`
	DebutDate   string   `json:"debut_date"`
	Company     string   `json:"company"`
	FanclubName string   `json:"fanclub_name"`
	Social      Social   `json:"social"`
	Members     []Member `json:"members"`
}

// ToDomain: Request -> Domain
func (r *Group) ToDomain() (domain.Group, error) {
	g := domain.Group{
		Name:        r.Name,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		Type:        r.Type,
		Company:     r.Company,
		FanclubName: r.FanclubName,
		Social:      r.Social.ToDomain(),
	}

	if r.DebutDate != "" {
		t, err := time.Parse(dateFormat, r.DebutDate)
		if err != nil {
			return domain.Group{}, domain.ErrBadParamInput
		}
		g.DebutDate = &t
	}

	for i := range r.Members {
		m, err := r.Members[i].ToDomain()
		if err != nil {
			return domain.Group{}, err
		}
		g.Members = append(g.Members, m)
	}
	return g, nil
}

type Member struct {
	Name        string   `json:"name" binding:"required"`
	StageName   string   `json:"stage_name"`
	Photo       string   `json:"photo"`
	Birthday    string   `json:"birthday"`
	ZodiacSign  string   `json:"zodiac_sign"`
	Height      float64  `json:"height"`
	Weight      float64  `json:"weight"`
	MBTIType    string   `json:"mbti_type" binding:"mbti"`
	Nationality string   `json:"nationality"`
	Instagram   string   `json:"instagram"`
	Bio         string   `json:"bio"`
	Positions   []string `json:"positions"`
}

func (r *Member) ToDomain() (domain.Member, error) {
	m := domain.Member{
		Name:        r.Name,
		StageName:   r.StageName,
		Photo:       r.Photo,
		ZodiacSign:  r.ZodiacSign,
		Height:      r.Height,
		Weight:      r.Weight,
		MBTIType:    r.MBTIType,
		Nationality: r.Nationality,
		Instagram:   r.Instagram,
		Bio:         r.Bio,
		Positions:   r.Positions,
	}

	if r.Birthday != "" {
		t, err := time.Parse(dateFormat, r.Birthday)
		if err != nil {
			return domain.Member{}, domain.ErrBadParamInput
		}
		m.Birthday = &t
	}
	return m, nil
}
