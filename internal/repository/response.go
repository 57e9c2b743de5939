package repository

import (
	"context"
	"fmt"

	"github.com/moimlab/survey-api/internal/domain"
	"github.com/moimlab/survey-api/internal/repository/dao"
)

var (
	ErrNicknameTaken    = dao.ErrNicknameTaken
	ErrResponseNotFound = dao.ErrResponseNotFound
)

type SurveyResponseDAO interface {
	Insert(ctx context.Context, response dao.SurveyResponse) (dao.SurveyResponse, error)
	FindByNickname(ctx context.Context, nickname string) (dao.SurveyResponse, error)
	FindAll(ctx context.Context) ([]dao.SurveyResponse, error)
	ListNicknames(ctx context.Context) ([]string, error)
}

type SurveyResponseRepository struct {
	dao SurveyResponseDAO
}

func NewSurveyResponseRepository(dao SurveyResponseDAO) *SurveyResponseRepository {
	return &SurveyResponseRepository{
		dao: dao,
	}
}

func (r *SurveyResponseRepository) Create(ctx context.Context, response domain.SurveyResponse) (domain.SurveyResponse, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(response))
	if err != nil {
		return domain.SurveyResponse{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SurveyResponseRepository) FindByNickname(ctx context.Context, nickname string) (domain.SurveyResponse, error) {
	found, err := r.dao.FindByNickname(ctx, nickname)
	if err != nil {
		return domain.SurveyResponse{}, fmt.Errorf("r.dao.FindByNickname -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SurveyResponseRepository) FindAll(ctx context.Context) ([]domain.SurveyResponse, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	responses := make([]domain.SurveyResponse, 0, len(found))
	for _, row := range found {
		responses = append(responses, r.daoToDomain(row))
	}

	return responses, nil
}

func (r *SurveyResponseRepository) ListNicknames(ctx context.Context) ([]string, error) {
	nicknames, err := r.dao.ListNicknames(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListNicknames -> %w", err)
	}

	return nicknames, nil
}

func (r *SurveyResponseRepository) domainToDAO(response domain.SurveyResponse) dao.SurveyResponse {
	preferences := make(dao.TimePreferenceList, 0, len(response.TimePreferences))
	for _, tp := range response.TimePreferences {
		preferences = append(preferences, dao.TimePreference{Time: tp.Time, Priority: tp.Priority})
	}

	return dao.SurveyResponse{
		Nickname:        response.Nickname,
		Avatar:          response.Avatar,
		SessionID:       response.SessionID,
		Location:        response.Location,
		FoodTypes:       dao.StringList(response.FoodTypes),
		DrinkTypes:      dao.StringList(response.DrinkTypes),
		TimePreferences: preferences,
	}
}

func (r *SurveyResponseRepository) daoToDomain(row dao.SurveyResponse) domain.SurveyResponse {
	preferences := make([]domain.TimePreference, 0, len(row.TimePreferences))
	for _, tp := range row.TimePreferences {
		preferences = append(preferences, domain.TimePreference{Time: tp.Time, Priority: tp.Priority})
	}

	return domain.SurveyResponse{
		ID:              row.ID,
		Nickname:        row.Nickname,
		Avatar:          row.Avatar,
		SessionID:       row.SessionID,
		Location:        row.Location,
		FoodTypes:       []string(row.FoodTypes),
		DrinkTypes:      []string(row.DrinkTypes),
		TimePreferences: preferences,
		SubmittedAt:     row.SubmittedAt,
	}
}
