package service

import (
	"context"

	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// userService is the concrete implementation of UserService
type userService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newUserService creates a new user service
func newUserService(repos *repository.Repositories, log zerolog.Logger) UserService {
	return &userService{
		repos: repos,
		log:   log.With().Str("service", "user").Logger(),
	}
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repos.User.List(ctx)
}

// Get returns a single user by username, not found when absent
func (s *userService) Get(ctx context.Context, username string) (*models.User, error) {
	var user *models.User

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.repos.User.GetByUsername(gctx, username)
		return err
	})
	g.Go(func() error {
		return checkExists(gctx, s.repos.Lookup, "users", "username", username)
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err)
	}
	if user == nil {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}
