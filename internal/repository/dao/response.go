package dao

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNicknameTaken    = errors.New("nickname already taken")
	ErrResponseNotFound = errors.New("survey response not found")
)

// StringList is a JSONB-backed string slice column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return scanJSONB(src, l)
}

type TimePreference struct {
	Time     string `json:"time"`
	Priority int    `json:"priority"`
}

// TimePreferenceList is a JSONB-backed list of ranked time picks.
type TimePreferenceList []TimePreference

func (l TimePreferenceList) Value() (driver.Value, error) {
	if l == nil {
		l = TimePreferenceList{}
	}

	return json.Marshal(l)
}

func (l *TimePreferenceList) Scan(src any) error {
	return scanJSONB(src, l)
}

func scanJSONB(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

type SurveyResponse struct {
	ID uint `gorm:"primaryKey"`

	// The unique index is the authority on nickname collisions; the
	// service-level pre-check is only a UX shortcut.
	Nickname  string `gorm:"uniqueIndex;not null"`
	Avatar    string `gorm:"not null"`
	SessionID string `gorm:"not null"`

	Location        string             `gorm:"not null"`
	FoodTypes       StringList         `gorm:"type:jsonb;not null"`
	DrinkTypes      StringList         `gorm:"type:jsonb;not null"`
	TimePreferences TimePreferenceList `gorm:"type:jsonb;not null"`

	SubmittedAt time.Time `gorm:"not null"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

type SurveyResponseDAO struct {
	db *gorm.DB
}

func NewSurveyResponseDAO(db *gorm.DB) *SurveyResponseDAO {
	return &SurveyResponseDAO{
		db: db,
	}
}

func (d *SurveyResponseDAO) Insert(ctx context.Context, response SurveyResponse) (SurveyResponse, error) {
	response.SubmittedAt = time.Now()

	result := d.db.WithContext(ctx).Create(&response)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "nickname") {
			return SurveyResponse{}, ErrNicknameTaken
		}

		return SurveyResponse{}, result.Error
	}

	return response, nil
}

func (d *SurveyResponseDAO) FindByNickname(ctx context.Context, nickname string) (SurveyResponse, error) {
	var response SurveyResponse

	result := d.db.WithContext(ctx).First(&response, "nickname = ?", nickname)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SurveyResponse{}, ErrResponseNotFound
		}

		return SurveyResponse{}, result.Error
	}

	return response, nil
}

// FindAll returns every stored response in insertion order.
func (d *SurveyResponseDAO) FindAll(ctx context.Context) ([]SurveyResponse, error) {
	var responses []SurveyResponse

	result := d.db.WithContext(ctx).Order("id").Find(&responses)
	if result.Error != nil {
		return nil, result.Error
	}

	return responses, nil
}

func (d *SurveyResponseDAO) ListNicknames(ctx context.Context) ([]string, error) {
	var nicknames []string

	result := d.db.WithContext(ctx).
		Model(&SurveyResponse{}).
		Order("id").
		Pluck("nickname", &nicknames)
	if result.Error != nil {
		return nil, result.Error
	}

	return nicknames, nil
}
