// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ericfisherdev/portfolio/internal/domain/model"
	"github.com/ericfisherdev/portfolio/internal/domain/port/driven"
)

// ProjectService turns an account's repositories into display cards.
type ProjectService struct {
	lister driven.RepositoryLister
	rules  model.CardRules
	logger *slog.Logger
}

// NewProjectService creates a ProjectService with all required dependencies.
func NewProjectService(lister driven.RepositoryLister, rules model.CardRules, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		lister: lister,
		rules:  rules,
		logger: logger,
	}
}

// Load fetches the account's repositories once and returns their cards,
// most recently updated first. Errors wrap one of the driven sentinels.
func (s *ProjectService) Load(ctx context.Context, account string) ([]model.DisplayCard, error) {
	repos, err := s.lister.ListRepositories(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("loading projects for %s: %w", account, err)
	}

	cards := s.BuildCards(repos)
	s.logger.Debug("projects loaded",
		"account", account,
		"fetched", len(repos),
		"shown", len(cards),
	)
	return cards, nil
}

// BuildCards drops forks, orders the rest by UpdatedAt descending (equal
// timestamps keep input order) and derives one card per repository.
func (s *ProjectService) BuildCards(repos []model.Repository) []model.DisplayCard {
	selected := SelectRepositories(repos)

	cards := make([]model.DisplayCard, 0, len(selected))
	for _, repo := range selected {
		cards = append(cards, model.NewDisplayCard(repo, s.rules))
	}
	return cards
}

// SelectRepositories returns the non-fork repositories sorted by UpdatedAt
// descending with a stable sort. The input slice is not modified.
func SelectRepositories(repos []model.Repository) []model.Repository {
	selected := make([]model.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.IsFork {
			continue
		}
		selected = append(selected, repo)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].UpdatedAt.After(selected[j].UpdatedAt)
	})
	return selected
}
