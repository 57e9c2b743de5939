package domain

import "time"

// MaxTimePreferences caps how many time slots one response may rank.
const MaxTimePreferences = 4

// TimePreference is one ranked time-slot pick. Priority is the 1-based rank
// assigned by selection order; 1 is the most preferred slot.
type TimePreference struct {
	Time     string `json:"time"`
	Priority int    `json:"priority"`
}

// SurveyResponse is one participant's submission. Responses are immutable
// once stored; Nickname is unique across all of them.
type SurveyResponse struct {
	ID              uint             `json:"id"`
	Nickname        string           `json:"nickname"`
	Avatar          string           `json:"avatar"`
	SessionID       string           `json:"sessionId"`
	Location        string           `json:"location"`
	FoodTypes       []string         `json:"foodTypes"`
	DrinkTypes      []string         `json:"drinkTypes"`
	TimePreferences []TimePreference `json:"timePreferences"`
	SubmittedAt     time.Time        `json:"submittedAt"`
}

// Participant identifies who contributed to a stat bucket.
type Participant struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

func (r SurveyResponse) Participant() Participant {
	return Participant{Nickname: r.Nickname, Avatar: r.Avatar}
}
