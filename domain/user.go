package domain

import (
	"context"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
// A user can browse artists, keep favorites and write comments; admins
// additionally curate the catalogue.
type User struct {
	ID        int64     // Unique identifier
	FirstName string    // Given name
	LastName  string    // Family name
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	Avatar    string    // Avatar image URL
	Role      string    // RoleUser or RoleAdmin
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Favorite is one entry of a user's favorites list, pointing at either
// a group or a soloist.
type Favorite struct {
	UserID    int64
	Artist    ArtistRef
	CreatedAt time.Time
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByEmail retrieves a user by their email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// DeleteCascade removes the account together with everything that
	// references it: authored comments (and their ownership and like rows),
	// like marks left on other comments, and favorites entries. All steps
	// run in one transaction; any failure rolls back the whole sequence.
	DeleteCascade(ctx context.Context, id int64) error
}

// FavoriteRepository maintains the per-user favorites set,
// unique by (artist kind, artist id).
type FavoriteRepository interface {
	// Add stores a favorite. Reports false if the pair was already present.
	Add(ctx context.Context, userID int64, ref ArtistRef) (bool, error)

	// Remove deletes a favorite. Reports false if the pair was not present.
	Remove(ctx context.Context, userID int64, ref ArtistRef) (bool, error)

	FetchByUser(ctx context.Context, userID int64) ([]Favorite, error)

	// CountByArtist reports how many users favorited the artist.
	CountByArtist(ctx context.Context, ref ArtistRef) (int64, error)
}

// UserUsecase defines the business logic contract for accounts and favorites.
type UserUsecase interface {
	// Register creates a new account and logs it in.
	// Returns ErrConflict if the email is already registered.
	Register(ctx context.Context, u *User, password string) (string, error)

	// Login verifies credentials and returns a signed JWT.
	// Returns ErrUnauthorized if the email or password is wrong.
	Login(ctx context.Context, email, password string) (string, error)

	GetProfile(ctx context.Context, id int64) (User, error)

	UpdateProfile(ctx context.Context, u *User) error

	// DeleteAccount removes the account and cascades into comments,
	// like marks and favorites, all-or-nothing.
	DeleteAccount(ctx context.Context, id int64) error

	// AddFavorite marks an artist as favorite. The artist must exist.
	// Adding twice is a no-op; the updated list is returned either way.
	AddFavorite(ctx context.Context, userID int64, ref ArtistRef) ([]Favorite, error)

	RemoveFavorite(ctx context.Context, userID int64, ref ArtistRef) ([]Favorite, error)

	// ListFavorites resolves the favorites list to artist display data.
	ListFavorites(ctx context.Context, userID int64) ([]ArtistSummary, error)
}
