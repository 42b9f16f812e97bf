package response

import (
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

func newSocialFromDomain(s domain.SocialLinks) Social {
	return Social{
		YouTube:   s.YouTube,
		Twitter:   s.Twitter,
		Instagram: s.Instagram,
		Facebook:  s.Facebook,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateFormat)
}

type Group struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Type        string   `json:"type"`
	DebutDate   string   `json:"debut_date,omitempty"`
	Company     string   `json:"company,omitempty"`
	FanclubName string   `json:"fanclub_name,omitempty"`
	Social      Social   `json:"social"`
	Members     []Member `json:"members"`
	Views       int64    `json:"views"`
	Favorites   int64    `json:"favorites"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// NewGroupFromDomain: Domain -> Response
func NewGroupFromDomain(g *domain.Group) Group {
	members := make([]Member, len(g.Members))
	for i := range g.Members {
		members[i] = NewMemberFromDomain(&g.Members[i])
	}
	return Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CoverImage:  g.CoverImage,
		Type:        g.Type,
		DebutDate:   formatDate(g.DebutDate),
		Company:     g.Company,
		FanclubName: g.FanclubName,
		Social:      newSocialFromDomain(g.Social),
		Members:     members,
		Views:       g.Views,
		Favorites:   g.Favorites,
		CreatedAt:   g.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   g.UpdatedAt.Format(DateTimeFormat),
	}
}

type Member struct {
	ID          int64    `json:"id"`
	GroupID     int64    `json:"group_id"`
	Name        string   `json:"name"`
	StageName   string   `json:"stage_name,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	Birthday    string   `json:"birthday,omitempty"`
	ZodiacSign  string   `json:"zodiac_sign,omitempty"`
	Height      float64  `json:"height,omitempty"`
	Weight      float64  `json:"weight,omitempty"`
	MBTIType    string   `json:"mbti_type,omitempty"`
	Nationality string   `json:"nationality,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Positions   []string `json:"positions"`
}

func NewMemberFromDomain(m *domain.Member) Member {
	positions := m.Positions
	if positions == nil {
		positions = []string{}
	}
	return Member{
		ID:          m.ID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		StageName:   m.StageName,
		Photo:       m.Photo,
		Birthday:    formatDate(m.Birthday),
		ZodiacSign:  m.ZodiacSign,
		Height:      m.Height,
		Weight:      m.Weight,
		MBTIType:    m.MBTIType,
		Nationality: m.Nationality,
		Instagram:   m.Instagram,
		Bio:         m.Bio,
		Positions:   positions,
	}
}
