package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/kstagehub/kstage-backend/domain"
)

type service struct {
	userRepo     domain.UserRepository
	favoriteRepo domain.FavoriteRepository
	artistRepo   domain.ArtistRepository
	jwtSecret    []byte
	jwtTTL       time.Duration
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, favoriteRepo domain.FavoriteRepository, artistRepo domain.ArtistRepository, jwtSecret []byte, jwtTTL time.Duration) *service {
	return &service{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		artistRepo:   artistRepo,
		jwtSecret:    jwtSecret,
		jwtTTL:       jwtTTL,
	}
}

// signToken issues the session JWT carrying the user id and role.
func (s *service) signToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(s.jwtTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// Register creates the account and logs it straight in. Self-registration
// always gets the user role; admins are promoted out of band.
func (s *service) Register(ctx context.Context, u *domain.User, password string) (string, error) {
	_, err := s.userRepo.GetByEmail(ctx, u.Email)
	if err == nil {
		return "", domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	u.Password = string(hashed)
	u.Role = domain.RoleUser

	if err := s.userRepo.Insert(ctx, u); err != nil {
		return "", err
	}

	u.Password = ""
	return s.signToken(u)
}

// Login checks credentials. Wrong email and wrong password collapse into
// the same ErrUnauthorized so the response never reveals which one failed.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.signToken(&u)
}

func (s *service) GetProfile(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, u *domain.User) error {
	current, err := s.userRepo.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}

	// Role and credentials never change through this path.
	u.Role = current.Role
	u.Email = current.Email
	u.Password = current.Password

	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}
	u.Password = ""
	return nil
}

func (s *service) DeleteAccount(ctx context.Context, id int64) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.DeleteCascade(ctx, id)
}

// AddFavorite marks an artist. Re-adding an existing favorite is a no-op,
// the caller gets the current list either way.
func (s *service) AddFavorite(ctx context.Context, userID int64, ref domain.ArtistRef) ([]domain.Favorite, error) {
	ok, err := s.artistRepo.Exists(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	if _, err := s.favoriteRepo.Add(ctx, userID, ref); err != nil {
		return nil, err
	}
	return s.favoriteRepo.FetchByUser(ctx, userID)
}

func (s *service) RemoveFavorite(ctx context.Context, userID int64, ref domain.ArtistRef) ([]domain.Favorite, error) {
	if _, err := s.favoriteRepo.Remove(ctx, userID, ref); err != nil {
		return nil, err
	}
	return s.favoriteRepo.FetchByUser(ctx, userID)
}

// ListFavorites resolves the stored refs into display summaries. An entry
// whose artist disappeared since being favorited is skipped, not an error.
func (s *service) ListFavorites(ctx context.Context, userID int64) ([]domain.ArtistSummary, error) {
	favorites, err := s.favoriteRepo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ArtistSummary, 0, len(favorites))
	for _, f := range favorites {
		summary, err := s.artistRepo.GetSummary(ctx, f.Artist)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				logrus.Warnf("favorite points at missing %s %d", f.Artist.Kind, f.Artist.ID)
				continue
			}
			return nil, err
		}
		res = append(res, summary)
	}
	return res, nil
}
