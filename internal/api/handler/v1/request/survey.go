package request

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/moimlab/survey-api/internal/domain"
)

type TimePreference struct {
	Time     string `json:"time"`
	Priority int    `json:"priority"`
}

// SubmitSurveyRequest is the wizard's single atomic submission. Every answer
// must come from the closed catalogs; validation reports all violations at
// once.
type SubmitSurveyRequest struct {
	Nickname        string           `json:"nickname"`
	Avatar          string           `json:"avatar"`
	SessionID       string           `json:"sessionId"`
	Location        string           `json:"location"`
	FoodTypes       []string         `json:"foodTypes"`
	DrinkTypes      []string         `json:"drinkTypes"`
	TimePreferences []TimePreference `json:"timePreferences"`
}

func (req *SubmitSurveyRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nickname, validation.Required, validation.By(validAvatarPair(req))),
		validation.Field(&req.Avatar, validation.Required),
		validation.Field(&req.SessionID, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.By(knownID("location", domain.IsKnownLocation))),
		validation.Field(&req.FoodTypes, validation.By(knownIDs("food type", domain.IsKnownFoodType))),
		validation.Field(&req.DrinkTypes, validation.By(knownIDs("drink type", domain.IsKnownDrinkType))),
		validation.Field(&req.TimePreferences, validation.By(validTimePreferences)),
	)
}

func (req *SubmitSurveyRequest) ToDomain() domain.SurveyResponse {
	preferences := make([]domain.TimePreference, 0, len(req.TimePreferences))
	for _, tp := range req.TimePreferences {
		preferences = append(preferences, domain.TimePreference{Time: tp.Time, Priority: tp.Priority})
	}

	return domain.SurveyResponse{
		Nickname:        req.Nickname,
		Avatar:          req.Avatar,
		SessionID:       req.SessionID,
		Location:        req.Location,
		FoodTypes:       req.FoodTypes,
		DrinkTypes:      req.DrinkTypes,
		TimePreferences: preferences,
	}
}

// validAvatarPair checks the nickname against the avatar catalog and that
// the emoji matches its 1:1 pairing.
func validAvatarPair(req *SubmitSurveyRequest) validation.RuleFunc {
	return func(value interface{}) error {
		nickname, _ := value.(string)
		if nickname == "" {
			return nil // Required already covers this.
		}

		avatar, ok := domain.FindAvatarByNickname(nickname)
		if !ok {
			return errors.New("must be a nickname from the avatar catalog")
		}
		if req.Avatar != "" && req.Avatar != avatar.Emoji {
			return fmt.Errorf("avatar %q does not match nickname %q", req.Avatar, nickname)
		}

		return nil
	}
}

func knownID(kind string, known func(string) bool) validation.RuleFunc {
	return func(value interface{}) error {
		id, _ := value.(string)
		if id == "" {
			return nil
		}
		if !known(id) {
			return fmt.Errorf("%q is not a recognized %s", id, kind)
		}

		return nil
	}
}

func knownIDs(kind string, known func(string) bool) validation.RuleFunc {
	return func(value interface{}) error {
		ids, _ := value.([]string)
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			if !known(id) {
				return fmt.Errorf("%q is not a recognized %s", id, kind)
			}
			if seen[id] {
				return fmt.Errorf("%q is selected more than once", id)
			}
			seen[id] = true
		}

		return nil
	}
}

func validTimePreferences(value interface{}) error {
	preferences, _ := value.([]TimePreference)
	if len(preferences) > domain.MaxTimePreferences {
		return fmt.Errorf("at most %d time slots may be ranked", domain.MaxTimePreferences)
	}

	seen := make(map[string]bool, len(preferences))
	for _, tp := range preferences {
		if !domain.IsKnownTimeSlot(tp.Time) {
			return fmt.Errorf("%q is not a recognized time slot", tp.Time)
		}
		if seen[tp.Time] {
			return fmt.Errorf("time slot %q is ranked more than once", tp.Time)
		}
		seen[tp.Time] = true

		if tp.Priority < 1 || tp.Priority > domain.MaxTimePreferences {
			return fmt.Errorf("priority %d for %q is out of range 1..%d", tp.Priority, tp.Time, domain.MaxTimePreferences)
		}
	}

	return nil
}
