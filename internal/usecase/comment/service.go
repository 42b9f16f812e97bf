package comment

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	artistRepo  domain.ArtistRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, artistRepo domain.ArtistRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		artistRepo:  artistRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

// mustExist verifies the owning artist. The bloom filter answers the
// definite-miss case without touching the database; a positive answer
// still gets confirmed against the store.
func (s *service) mustExist(ctx context.Context, artist domain.ArtistRef) error {
	exists, err := s.bloomRepo.Exists(ctx, artist)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says %s %d does not exist", artist.Kind, artist.ID)
		return domain.ErrNotFound
	}

	ok, err := s.artistRepo.Exists(ctx, artist)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Add creates a comment scoped to one artist. A non-zero parentID makes it
// a reply: the parent must exist and be owned by the same artist, always an
// explicit ErrNotFound when it isn't.
func (s *service) Add(ctx context.Context, artist domain.ArtistRef, authorID int64, text string, parentID int64) (*domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrBadParamInput
	}
	if err := s.mustExist(ctx, artist); err != nil {
		return nil, err
	}

	if parentID != 0 {
		if _, err := s.commentRepo.GetByID(ctx, parentID); err != nil {
			return nil, err
		}
		owner, err := s.commentRepo.Owner(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if owner != artist {
			return nil, domain.ErrNotFound
		}
	}

	// resolve the author first so a lookup failure never follows a persisted write
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	author.Password = ""

	c := &domain.Comment{
		Text:      text,
		AuthorID:  authorID,
		ParentID:  parentID,
		CreatedAt: time.Now(),
		Likes:     []int64{},
	}
	if err := s.commentRepo.Store(ctx, artist, c); err != nil {
		return nil, err
	}
	c.Author = &author

	return c, nil
}

func (s *service) Reply(ctx context.Context, artist domain.ArtistRef, parentID, authorID int64, text string) (*domain.Comment, error) {
	if parentID == 0 {
		return nil, domain.ErrBadParamInput
	}
	return s.Add(ctx, artist, authorID, text, parentID)
}

// Delete removes the comment and its whole reply subtree. Only the author
// or an admin may delete; nothing is mutated on a failed authorization.
func (s *service) Delete(ctx context.Context, artist domain.ArtistRef, commentID int64, req domain.Requester) error {
	if err := s.mustExist(ctx, artist); err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	owner, err := s.commentRepo.Owner(ctx, commentID)
	if err != nil {
		return err
	}
	if owner != artist {
		return domain.ErrNotFound
	}

	if comment.AuthorID != req.UserID && !req.IsAdmin {
		return domain.ErrForbidden
	}

	return s.commentRepo.DeleteTree(ctx, artist, commentID)
}

// ToggleLike flips the caller's membership in the like set and returns the
// updated comment. Two calls in a row restore the original membership.
func (s *service) ToggleLike(ctx context.Context, artist domain.ArtistRef, commentID, userID int64) (*domain.Comment, error) {
	if err := s.mustExist(ctx, artist); err != nil {
		return nil, err
	}

	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	owner, err := s.commentRepo.Owner(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if owner != artist {
		return nil, domain.ErrNotFound
	}

	if _, err := s.commentRepo.ToggleLike(ctx, commentID, userID); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.fillAuthors(ctx, []*domain.Comment{updated}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) FetchByArtist(ctx context.Context, artist domain.ArtistRef, cursor string, limit int64) ([]*domain.Comment, string, error) {
	if err := s.mustExist(ctx, artist); err != nil {
		return nil, "", err
	}

	res, err := s.commentRepo.FetchRoots(ctx, artist, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	// walk the thread level by level so replies to replies surface too
	frontier := make([]int64, len(res))
	for i, comment := range res {
		frontier[i] = comment.ID
	}

	all := make([]*domain.Comment, 0, len(res))
	all = append(all, res...)
	byParent := make(map[int64][]*domain.Comment)
	for len(frontier) > 0 {
		replies, err := s.commentRepo.FetchReplies(ctx, frontier)
		if err != nil {
			return nil, "", err
		}
		frontier = frontier[:0]
		for _, r := range replies {
			byParent[r.ParentID] = append(byParent[r.ParentID], r)
			frontier = append(frontier, r.ID)
		}
		all = append(all, replies...)
	}

	if err := s.fillAuthors(ctx, all); err != nil {
		return nil, "", err
	}

	for _, c := range all {
		if list, ok := byParent[c.ID]; ok {
			c.Replies = list
		} else {
			c.Replies = []*domain.Comment{}
		}
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

/*
* fillAuthors uses errgroup with the pipeline pattern to expand the author
* of every comment in one pass.
* in godoc: https://godoc.org/golang.org/x/sync/errgroup#ex-Group--Pipeline
 */
func (s *service) fillAuthors(ctx context.Context, comments []*domain.Comment) error {
	g, gctx := errgroup.WithContext(ctx)

	mapUsers := map[int64]domain.User{}
	for _, c := range comments { //nolint
		mapUsers[c.AuthorID] = domain.User{}
	}

	// Using goroutine to fetch the author's detail
	chanUser := make(chan domain.User)
	for authorID := range mapUsers {
		g.Go(func() error {
			res, err := s.userRepo.GetByID(gctx, authorID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		err := g.Wait()
		if err != nil {
			logrus.Error(err)
			return
		}
	}()

	for user := range chanUser {
		if user != (domain.User{}) {
			mapUsers[user.ID] = user
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range comments { //nolint
		if u, ok := mapUsers[c.AuthorID]; ok {
			u.Password = ""
			author := u
			c.Author = &author
		}
	}
	return nil
}
