package response

import "github.com/kstagehub/kstage-backend/domain"

// ArtistSummary is the flat shape shared by search results and the
// favorites list.
type ArtistSummary struct {
	Kind       string `json:"kind"`
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	StageName  string `json:"stage_name,omitempty"`
	Type       string `json:"type"`
	CoverImage string `json:"cover_image,omitempty"`
}

func NewArtistSummaryFromDomain(s *domain.ArtistSummary) ArtistSummary {
	return ArtistSummary{
		Kind:       string(s.Ref.Kind),
		ID:         s.Ref.ID,
		Name:       s.Name,
		StageName:  s.StageName,
		Type:       s.Type,
		CoverImage: s.CoverImage,
	}
}
