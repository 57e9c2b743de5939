// Package wizard models the four-step survey form as an explicit state
// machine. The web client walks a draft through Identity → Location →
// FoodDrink → Time and submits once, atomically, from the final step.
package wizard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/moimlab/survey-api/internal/domain"
)

type Step int

const (
	StepIdentity Step = iota
	StepLocation
	StepFoodDrink
	StepTime
)

func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepLocation:
		return "location"
	case StepFoodDrink:
		return "food-drink"
	case StepTime:
		return "time"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrNoAvatarChosen   = errors.New("an avatar must be chosen before moving on")
	ErrNotAtFinalStep   = errors.New("submission is only possible from the time step")
	ErrUnknownAvatar    = errors.New("avatar is not in the catalog")
	ErrUnknownLocation  = errors.New("location is not in the catalog")
	ErrUnknownFoodType  = errors.New("food type is not in the catalog")
	ErrUnknownDrinkType = errors.New("drink type is not in the catalog")
	ErrUnknownTimeSlot  = errors.New("time slot is not in the catalog")
)

// Draft is the wizard's accumulating state. Zero answers are legal everywhere
// except the avatar, which gates the first forward transition.
type Draft struct {
	step Step

	sessionID string
	avatar    *domain.AnimalAvatar

	location        string
	foodTypes       []string
	drinkTypes      []string
	timePreferences []domain.TimePreference
}

func NewDraft() *Draft {
	return &Draft{
		sessionID: "session_" + uuid.NewString(),
	}
}

func (d *Draft) Step() Step        { return d.step }
func (d *Draft) SessionID() string { return d.sessionID }

// ChooseAvatar picks the participant's identity. Only valid catalog avatars
// are accepted; choosing again replaces the earlier pick.
func (d *Draft) ChooseAvatar(nickname string) error {
	avatar, ok := domain.FindAvatarByNickname(nickname)
	if !ok {
		return ErrUnknownAvatar
	}

	d.avatar = &avatar

	return nil
}

func (d *Draft) ChooseLocation(id string) error {
	if !domain.IsKnownLocation(id) {
		return ErrUnknownLocation
	}

	d.location = id

	return nil
}

// ToggleFood adds the food type to the multi-select, or removes it when
// already selected.
func (d *Draft) ToggleFood(id string) error {
	if !domain.IsKnownFoodType(id) {
		return ErrUnknownFoodType
	}

	d.foodTypes = toggle(d.foodTypes, id)

	return nil
}

func (d *Draft) ToggleDrink(id string) error {
	if !domain.IsKnownDrinkType(id) {
		return ErrUnknownDrinkType
	}

	d.drinkTypes = toggle(d.drinkTypes, id)

	return nil
}

// ToggleTime selects or deselects a ranked time slot. A new selection gets
// the next priority; deselecting re-numbers the remaining slots to a dense
// 1..k sequence, preserving their relative order. Selecting a fifth slot is
// silently ignored - the cap is intentional and surfaces no error.
func (d *Draft) ToggleTime(id string) error {
	if !domain.IsKnownTimeSlot(id) {
		return ErrUnknownTimeSlot
	}

	for i, tp := range d.timePreferences {
		if tp.Time == id {
			d.timePreferences = append(d.timePreferences[:i], d.timePreferences[i+1:]...)
			for j := range d.timePreferences {
				d.timePreferences[j].Priority = j + 1
			}

			return nil
		}
	}

	if len(d.timePreferences) >= domain.MaxTimePreferences {
		return nil
	}

	d.timePreferences = append(d.timePreferences, domain.TimePreference{
		Time:     id,
		Priority: len(d.timePreferences) + 1,
	})

	return nil
}

// Next advances to the following step. Leaving the identity step requires a
// chosen avatar; at the final step Next is a no-op.
func (d *Draft) Next() error {
	if d.step == StepIdentity && d.avatar == nil {
		return ErrNoAvatarChosen
	}

	if d.step < StepTime {
		d.step++
	}

	return nil
}

// Back returns to the previous step, keeping all answers.
func (d *Draft) Back() {
	if d.step > StepIdentity {
		d.step--
	}
}

// Submission produces the payload for the single atomic submit call. It is
// only reachable from the terminal step with an avatar chosen.
func (d *Draft) Submission() (domain.SurveyResponse, error) {
	if d.step != StepTime {
		return domain.SurveyResponse{}, ErrNotAtFinalStep
	}
	if d.avatar == nil {
		return domain.SurveyResponse{}, ErrNoAvatarChosen
	}

	return domain.SurveyResponse{
		Nickname:        d.avatar.Nickname,
		Avatar:          d.avatar.Emoji,
		SessionID:       d.sessionID,
		Location:        d.location,
		FoodTypes:       append([]string{}, d.foodTypes...),
		DrinkTypes:      append([]string{}, d.drinkTypes...),
		TimePreferences: append([]domain.TimePreference{}, d.timePreferences...),
	}, nil
}

func toggle(selected []string, id string) []string {
	for i, s := range selected {
		if s == id {
			return append(selected[:i], selected[i+1:]...)
		}
	}

	return append(selected, id)
}
