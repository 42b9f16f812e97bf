package domain

import (
	"context"
	"time"
)

// ArtistKind discriminates the two artist aggregates.
type ArtistKind string

const (
	KindGroup   ArtistKind = "group"
	KindSoloist ArtistKind = "soloist"
)

// ArtistRef identifies one artist of either kind. Comment and favorite
// operations are parameterized by it so the same code serves both
// aggregates.
type ArtistRef struct {
	Kind ArtistKind
	ID   int64
}

// SocialLinks holds the promotional links of an artist.
type SocialLinks struct {
	YouTube   string
	Twitter   string
	Instagram string
	Facebook  string
}

// Group is a music group together with its embedded member roster.
type Group struct {
	ID          int64
	Name        string
	Description string
	CoverImage  string
	Type        string // male-group or female-group
	DebutDate   *time.Time
	Company     string
	FanclubName string
	Social      SocialLinks
	Members     []Member
	Views       int64
	Favorites   int64 // favorite count
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g Group) Ref() ArtistRef {
	return ArtistRef{Kind: KindGroup, ID: g.ID}
}

// Member is one member of a group, addressable on its own for the
// member sub-resource endpoints.
type Member struct {
	ID          int64
	GroupID     int64
	Name        string
	StageName   string
	Photo       string
	Birthday    *time.Time
	ZodiacSign  string
	Height      float64
	Weight      float64
	MBTIType    string
	Nationality string
	Instagram   string
	Bio         string
	Positions   []string
}

// Soloist is a solo artist.
type Soloist struct {
	ID          int64
	Name        string
	StageName   string
	Photo       string
	Type        string // male-solo or female-solo
	Birthday    *time.Time
	ZodiacSign  string
	Height      float64
	Weight      float64
	MBTIType    string
	Nationality string
	Bio         string
	Company     string
	DebutDate   *time.Time
	Social      SocialLinks
	Views       int64
	Favorites   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Soloist) Ref() ArtistRef {
	return ArtistRef{Kind: KindSoloist, ID: s.ID}
}

// ArtistSummary is the flattened display shape used by search results
// and the favorites list.
type ArtistSummary struct {
	Ref        ArtistRef
	Name       string
	StageName  string
	Type       string
	CoverImage string
}

// GroupRepository defines the contract for group persistence.
type GroupRepository interface {
	// Fetch retrieves a paginated list of groups, newest first.
	// typeFilter narrows by group type when non-empty.
	Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]Group, error)

	// GetByID retrieves a group with its members.
	// Returns ErrNotFound if the group doesn't exist.
	GetByID(ctx context.Context, id int64) (Group, error)

	Store(ctx context.Context, g *Group) error
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id int64) error

	// Search matches the group name case-insensitively.
	Search(ctx context.Context, query string) ([]Group, error)

	AddViews(ctx context.Context, id int64, delta int64) error
	FetchIDs(ctx context.Context) ([]int64, error)

	AddMember(ctx context.Context, groupID int64, m *Member) error
	GetMember(ctx context.Context, groupID, memberID int64) (Member, error)
	UpdateMember(ctx context.Context, m *Member) error
	RemoveMember(ctx context.Context, groupID, memberID int64) error
}

// SoloistRepository defines the contract for soloist persistence.
type SoloistRepository interface {
	Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]Soloist, error)
	GetByID(ctx context.Context, id int64) (Soloist, error)
	Store(ctx context.Context, s *Soloist) error
	Update(ctx context.Context, s *Soloist) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]Soloist, error)
	AddViews(ctx context.Context, id int64, delta int64) error
	FetchIDs(ctx context.Context) ([]int64, error)
}

// ArtistRepository is the kind-agnostic capability the comment and
// favorites services depend on, so they never care which aggregate
// owns the data.
type ArtistRepository interface {
	// Exists reports whether the referenced artist is persisted.
	Exists(ctx context.Context, ref ArtistRef) (bool, error)

	// GetSummary resolves display data for the referenced artist.
	// Returns ErrNotFound if it doesn't exist.
	GetSummary(ctx context.Context, ref ArtistRef) (ArtistSummary, error)

	// AddViews increments the stored profile view counter.
	AddViews(ctx context.Context, ref ArtistRef, delta int64) error
}

// ArtistCache caches artist details and buffers profile view counters
// until the sync worker flushes them.
type ArtistCache interface {
	GetGroup(ctx context.Context, id int64) (Group, error)
	SetGroup(ctx context.Context, g *Group) error
	GetSoloist(ctx context.Context, id int64) (Soloist, error)
	SetSoloist(ctx context.Context, s *Soloist) error

	// DeleteArtist drops the cached detail and pending views of an artist.
	DeleteArtist(ctx context.Context, ref ArtistRef) error

	// IncrViews bumps the pending view counter and returns its value.
	IncrViews(ctx context.Context, ref ArtistRef) (int64, error)

	// FetchAndResetViews atomically drains all pending view counters.
	FetchAndResetViews(ctx context.Context) (map[ArtistRef]int64, error)
}

// ArtistUsecase defines the business logic contract for both artist kinds.
type ArtistUsecase interface {
	FetchGroups(ctx context.Context, cursor string, num int64, typeFilter string) ([]Group, string, error)
	GetGroupByID(ctx context.Context, id int64) (Group, error)
	StoreGroup(ctx context.Context, g *Group) error
	UpdateGroup(ctx context.Context, g *Group) error
	DeleteGroup(ctx context.Context, id int64) error

	AddMember(ctx context.Context, groupID int64, m *Member) error
	FetchMembers(ctx context.Context, groupID int64) ([]Member, error)
	GetMember(ctx context.Context, groupID, memberID int64) (Member, error)
	UpdateMember(ctx context.Context, groupID int64, m *Member) error
	RemoveMember(ctx context.Context, groupID, memberID int64) error

	FetchSoloists(ctx context.Context, cursor string, num int64, typeFilter string) ([]Soloist, string, error)
	GetSoloistByID(ctx context.Context, id int64) (Soloist, error)
	StoreSoloist(ctx context.Context, s *Soloist) error
	UpdateSoloist(ctx context.Context, s *Soloist) error
	DeleteSoloist(ctx context.Context, id int64) error

	// Search merges group and soloist matches for the given query.
	Search(ctx context.Context, query string) ([]ArtistSummary, error)

	// InitBloomFilter seeds the existence filter with all artist IDs.
	InitBloomFilter(ctx context.Context) error
}
