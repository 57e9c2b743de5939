package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/moimlab/survey-api/internal/domain"
	"github.com/moimlab/survey-api/internal/repository"
)

var (
	ErrNicknameTaken    = repository.ErrNicknameTaken
	ErrResponseNotFound = repository.ErrResponseNotFound
)

// NicknameConflictError rejects a submission whose avatar is already claimed.
// It carries the earlier response so the client can show who owns the pick.
type NicknameConflictError struct {
	Existing domain.SurveyResponse
}

func (e *NicknameConflictError) Error() string {
	return fmt.Sprintf("nickname %q already taken by response %d", e.Existing.Nickname, e.Existing.ID)
}

type SurveyResponseRepository interface {
	Create(ctx context.Context, response domain.SurveyResponse) (domain.SurveyResponse, error)
	FindByNickname(ctx context.Context, nickname string) (domain.SurveyResponse, error)
	FindAll(ctx context.Context) ([]domain.SurveyResponse, error)
	ListNicknames(ctx context.Context) ([]string, error)
}

type SurveyService struct {
	repo SurveyResponseRepository
}

func NewSurveyService(repo SurveyResponseRepository) *SurveyService {
	return &SurveyService{
		repo: repo,
	}
}

// Submit stores one survey response. The duplicate pre-check keeps the common
// case cheap, but two clients can still race past it; the unique constraint
// on nickname decides the winner, and the loser gets the same conflict error
// with the stored record attached.
func (s *SurveyService) Submit(ctx context.Context, response domain.SurveyResponse) (domain.SurveyResponse, error) {
	existing, err := s.repo.FindByNickname(ctx, response.Nickname)
	if err == nil {
		return domain.SurveyResponse{}, &NicknameConflictError{Existing: existing}
	}
	if !errors.Is(err, ErrResponseNotFound) {
		return domain.SurveyResponse{}, fmt.Errorf("s.repo.FindByNickname -> %w", err)
	}

	created, err := s.repo.Create(ctx, response)
	if err != nil {
		if errors.Is(err, ErrNicknameTaken) {
			winner, findErr := s.repo.FindByNickname(ctx, response.Nickname)
			if findErr != nil {
				return domain.SurveyResponse{}, fmt.Errorf("s.repo.FindByNickname -> %w", findErr)
			}

			return domain.SurveyResponse{}, &NicknameConflictError{Existing: winner}
		}

		return domain.SurveyResponse{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetUsedNicknames feeds the avatar picker so taken identities can be greyed
// out up front. Advisory only - submission still re-checks.
func (s *SurveyService) GetUsedNicknames(ctx context.Context) ([]string, error) {
	nicknames, err := s.repo.ListNicknames(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListNicknames -> %w", err)
	}

	return nicknames, nil
}

func (s *SurveyService) GetResponses(ctx context.Context) ([]domain.SurveyResponse, error) {
	responses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return responses, nil
}

// GetStats recomputes the anonymous tallies over all stored responses.
func (s *SurveyService) GetStats(ctx context.Context) (domain.SurveyStats, error) {
	responses, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.SurveyStats{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.Aggregate(responses), nil
}

// GetStatsWithUsers is GetStats with per-bucket contributor identities.
func (s *SurveyService) GetStatsWithUsers(ctx context.Context) (domain.SurveyStatsWithUsers, error) {
	responses, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.SurveyStatsWithUsers{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.AggregateWithUsers(responses), nil
}

// Summary condenses the stats into the winning pick per category, the shape
// the results dashboard leads with.
type Summary struct {
	TotalResponses int           `json:"totalResponses"`
	TopLocation    *SummaryEntry `json:"topLocation"`
	TopFood        *SummaryEntry `json:"topFood"`
	TopDrink       *SummaryEntry `json:"topDrink"`
	TopTime        *SummaryEntry `json:"topTime"`
}

type SummaryEntry struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

func (s *SurveyService) GetSummary(ctx context.Context) (Summary, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("s.GetStats -> %w", err)
	}

	summary := Summary{TotalResponses: stats.TotalResponses}
	if top, ok := stats.TopLocation(); ok {
		summary.TopLocation = &SummaryEntry{ID: top.ID, Score: top.Score}
	}
	if top, ok := stats.TopFood(); ok {
		summary.TopFood = &SummaryEntry{ID: top.ID, Score: top.Score}
	}
	if top, ok := stats.TopDrink(); ok {
		summary.TopDrink = &SummaryEntry{ID: top.ID, Score: top.Score}
	}
	if top, ok := stats.TopTime(); ok {
		summary.TopTime = &SummaryEntry{ID: top.ID, Score: top.Score}
	}

	return summary, nil
}
