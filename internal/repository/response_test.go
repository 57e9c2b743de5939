package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moimlab/survey-api/internal/domain"
	"github.com/moimlab/survey-api/internal/repository/dao"
)

type fakeResponseDAO struct {
	rows   []dao.SurveyResponse
	nextID uint
}

func (f *fakeResponseDAO) Insert(_ context.Context, row dao.SurveyResponse) (dao.SurveyResponse, error) {
	for _, stored := range f.rows {
		if stored.Nickname == row.Nickname {
			return dao.SurveyResponse{}, dao.ErrNicknameTaken
		}
	}

	f.nextID++
	row.ID = f.nextID
	row.SubmittedAt = time.Now()
	f.rows = append(f.rows, row)

	return row, nil
}

func (f *fakeResponseDAO) FindByNickname(_ context.Context, nickname string) (dao.SurveyResponse, error) {
	for _, stored := range f.rows {
		if stored.Nickname == nickname {
			return stored, nil
		}
	}

	return dao.SurveyResponse{}, dao.ErrResponseNotFound
}

func (f *fakeResponseDAO) FindAll(_ context.Context) ([]dao.SurveyResponse, error) {
	return f.rows, nil
}

func (f *fakeResponseDAO) ListNicknames(_ context.Context) ([]string, error) {
	nicknames := make([]string, 0, len(f.rows))
	for _, stored := range f.rows {
		nicknames = append(nicknames, stored.Nickname)
	}

	return nicknames, nil
}

func TestCreate_RoundTripsDomainFields(t *testing.T) {
	repo := NewSurveyResponseRepository(&fakeResponseDAO{})

	created, err := repo.Create(context.Background(), domain.SurveyResponse{
		Nickname:   "폭스러너",
		Avatar:     "🦊",
		SessionID:  "session_abc",
		Location:   "gangnam",
		FoodTypes:  []string{"korean", "bbq"},
		DrinkTypes: []string{"beer"},
		TimePreferences: []domain.TimePreference{
			{Time: "18:00", Priority: 1},
			{Time: "17:00", Priority: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), created.ID)
	assert.False(t, created.SubmittedAt.IsZero())
	assert.Equal(t, []string{"korean", "bbq"}, created.FoodTypes)
	assert.Equal(t, []domain.TimePreference{
		{Time: "18:00", Priority: 1},
		{Time: "17:00", Priority: 2},
	}, created.TimePreferences)

	found, err := repo.FindByNickname(context.Background(), "폭스러너")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreate_NicknameTakenSurfacesSentinel(t *testing.T) {
	repo := NewSurveyResponseRepository(&fakeResponseDAO{})

	_, err := repo.Create(context.Background(), domain.SurveyResponse{Nickname: "멍멍이"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), domain.SurveyResponse{Nickname: "멍멍이"})
	assert.ErrorIs(t, err, ErrNicknameTaken)
}

func TestFindByNickname_NotFound(t *testing.T) {
	repo := NewSurveyResponseRepository(&fakeResponseDAO{})

	_, err := repo.FindByNickname(context.Background(), "유니콘드림")
	assert.ErrorIs(t, err, ErrResponseNotFound)
}

func TestFindAll_PreservesOrder(t *testing.T) {
	repo := NewSurveyResponseRepository(&fakeResponseDAO{})

	for _, nickname := range []string{"늑대센스", "판다러블", "개구리맨"} {
		_, err := repo.Create(context.Background(), domain.SurveyResponse{Nickname: nickname})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "늑대센스", all[0].Nickname)
	assert.Equal(t, "개구리맨", all[2].Nickname)

	nicknames, err := repo.ListNicknames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"늑대센스", "판다러블", "개구리맨"}, nicknames)
}
