package service

import (
	"context"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService is the concrete implementation of TopicService
type topicService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newTopicService creates a new topic service
func newTopicService(repos *repository.Repositories, log zerolog.Logger) TopicService {
	return &topicService{
		repos: repos,
		log:   log.With().Str("service", "topic").Logger(),
	}
}

// List returns all topics
func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.repos.Topic.List(ctx)
}
