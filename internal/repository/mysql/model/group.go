package model

import (
	"strings"
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

type Group struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(100);not null;index:idx_group_name_type"`
	Description string     `gorm:"type:text;not null"`
	CoverImage  string     `gorm:"column:cover_image;type:varchar(512)"`
	Type        string     `gorm:"type:varchar(16);not null;index:idx_group_name_type"`
	DebutDate   *time.Time `gorm:"column:debut_date;type:datetime"`
	Company     string     `gorm:"type:varchar(100)"`
	FanclubName string     `gorm:"column:fanclub_name;type:varchar(100)"`
	YouTube     string     `gorm:"column:youtube;type:varchar(255)"`
	Twitter     string     `gorm:"type:varchar(255)"`
	Instagram   string     `gorm:"type:varchar(255)"`
	Facebook    string     `gorm:"type:varchar(255)"`
	Views       int64      `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"type:datetime"`
	UpdatedAt   time.Time  `gorm:"type:datetime"`

	Members []GroupMember `gorm:"foreignKey:GroupID"`
}

func (Group) TableName() string {
	return "groups"
}

type GroupMember struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	GroupID     int64      `gorm:"column:group_id;not null;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	StageName   string     `gorm:"column:stage_name;type:varchar(100)"`
	Photo       string     `gorm:"type:varchar(512)"`
	Birthday    *time.Time `gorm:"type:datetime"`
	ZodiacSign  string     `gorm:"column:zodiac_sign;type:varchar(32)"`
	Height      float64    `gorm:"default:0"`
	Weight      float64    `gorm:"default:0"`
	MBTIType    string     `gorm:"column:mbti_type;type:varchar(8)"`
	Nationality string     `gorm:"type:varchar(64)"`
	Instagram   string     `gorm:"type:varchar(255)"`
	Bio         string     `gorm:"type:text"`
	Positions   string     `gorm:"type:varchar(255)"` // comma-joined list
}

func (GroupMember) TableName() string {
	return "group_members"
}

func NewGroupFromDomain(g *domain.Group) *Group {
	members := make([]GroupMember, 0, len(g.Members))
	for i := range g.Members {
		members = append(members, *NewMemberFromDomain(&g.Members[i]))
	}
	return &Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CoverImage:  g.CoverImage,
		Type:        g.Type,
		DebutDate:   g.DebutDate,
		Company:     g.Company,
		FanclubName: g.FanclubName,
		YouTube:     g.Social.YouTube,
		Twitter:     g.Social.Twitter,
		Instagram:   g.Social.Instagram,
		Facebook:    g.Social.Facebook,
		Views:       g.Views,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		Members:     members,
	}
}

func (m *Group) ToDomain() domain.Group {
	members := make([]domain.Member, 0, len(m.Members))
	for i := range m.Members {
		members = append(members, m.Members[i].ToDomain())
	}
	return domain.Group{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CoverImage:  m.CoverImage,
		Type:        m.Type,
		DebutDate:   m.DebutDate,
		Company:     m.Company,
		FanclubName: m.FanclubName,
		Social: domain.SocialLinks{
			YouTube:   m.YouTube,
			Twitter:   m.Twitter,
			Instagram: m.Instagram,
			Facebook:  m.Facebook,
		},
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Members:   members,
	}
}

func NewMemberFromDomain(m *domain.Member) *GroupMember {
	return &GroupMember{
		ID:          m.ID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		StageName:   m.StageName,
		Photo:       m.Photo,
		Birthday:    m.Birthday,
		ZodiacSign:  m.ZodiacSign,
		Height:      m.Height,
		Weight:      m.Weight,
		MBTIType:    m.MBTIType,
		Nationality: m.Nationality,
		Instagram:   m.Instagram,
		Bio:         m.Bio,
		Positions:   strings.Join(m.Positions, ","),
	}
}

func (m *GroupMember) ToDomain() domain.Member {
	var positions []string
	if m.Positions != "" {
		positions = strings.Split(m.Positions, ",")
	}
	return domain.Member{
		ID:          m.ID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		StageName:   m.StageName,
		Photo:       m.Photo,
		Birthday:    m.Birthday,
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
