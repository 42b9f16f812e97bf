package model

import (
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

type Soloist struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(100);not null;index"`
	StageName   string     `gorm:"column:stage_name;type:varchar(100)"`
	Photo       string     `gorm:"type:varchar(512)"`
	Type        string     `gorm:"type:varchar(16);not null"`
	Birthday    *time.Time `gorm:"type:datetime"`
	ZodiacSign  string     `gorm:"column:zodiac_sign;type:varchar(32)"`
	Height      float64    `gorm:"default:0"`
	Weight      float64    `gorm:"default:0"`
	MBTIType    string     `gorm:"column:mbti_type;type:varchar(8)"`
	Nationality string     `gorm:"type:varchar(64)"`
	Bio         string     `gorm:"type:text"`
	Company     string     `gorm:"type:varchar(100)"`
	DebutDate   *time.Time `gorm:"column:debut_date;type:datetime"`
	YouTube     string     `gorm:"column:youtube;type:varchar(255)"`
	Twitter     string     `gorm:"type:varchar(255)"`
	Instagram   string     `gorm:"type:varchar(255)"`
	Views       int64      `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"type:datetime"`
	UpdatedAt   time.Time  `gorm:"type:datetime"`
}

func (Soloist) TableName() string {
	return "soloists"
}

func NewSoloistFromDomain(s *domain.Soloist) *Soloist {
	return &Soloist{
		ID:          s.ID,
		Name:        s.Name,
		StageName:   s.StageName,
		Photo:       s.Photo,
		Type:        s.Type,
		Birthday:    s.Birthday,
		ZodiacSign:  s.ZodiacSign,
		Height:      s.Height,
		Weight:      s.Weight,
		MBTIType:    s.MBTIType,
		Nationality: s.Nationality,
		Bio:         s.Bio,
		Company:     s.Company,
		DebutDate:   s.DebutDate,
		YouTube:     s.Social.YouTube,
		Twitter:     s.Social.Twitter,
		Instagram:   s.Social.Instagram,
		Views:       s.Views,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *Soloist) ToDomain() domain.Soloist {
	return domain.Soloist{
		ID:          m.ID,
		Name:        m.Name,
		StageName:   m.StageName,
		Photo:       m.Photo,
		Type:        m.Type,
		Birthday:    m.Birthday,
		ZodiacSign:  m.ZodiacSign,
		Height:      m.Height,
		Weight:      m.Weight,
		MBTIType:    m.MBTIType,
		Nationality: m.Nationality,
		Bio:         m.Bio,
		Company:     m.Company,
		DebutDate:   m.DebutDate,
		Social: domain.SocialLinks{
			YouTube:   m.YouTube,
			Twitter:   m.Twitter,
			Instagram: m.Instagram,
		},
		Views:     m.Views,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
