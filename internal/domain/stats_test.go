package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	responses := []SurveyResponse{
		{
			Nickname: "폭스러너", Avatar: "🦊",
			Location:   "gangnam",
			FoodTypes:  []string{"korean", "bbq"},
			DrinkTypes: []string{"beer"},
			TimePreferences: []TimePreference{
				{Time: "17:00", Priority: 1},
			},
		},
		{
			Nickname: "코알라킹", Avatar: "🐨",
			Location:   "gangnam",
			FoodTypes:  []string{"korean"},
			DrinkTypes: []string{"soju", "beer"},
			TimePreferences: []TimePreference{
				{Time: "17:00", Priority: 1},
				{Time: "18:00", Priority: 2},
			},
		},
		{
			Nickname: "호랑이력", Avatar: "🐯",
			Location:   "hongdae",
			FoodTypes:  []string{"japanese"},
			DrinkTypes: []string{},
			TimePreferences: []TimePreference{
				{Time: "18:00", Priority: 1},
			},
		},
	}

	stats := Aggregate(responses)

	assert.Equal(t, 3, stats.TotalResponses)

	// Single-select location counts sum exactly to the total.
	assert.Equal(t, map[string]int{"gangnam": 2, "hongdae": 1}, stats.LocationStats)

	// Multi-select counts may sum past the total.
	assert.Equal(t, map[string]int{"korean": 2, "bbq": 1, "japanese": 1}, stats.FoodStats)
	assert.Equal(t, map[string]int{"beer": 2, "soju": 1}, stats.DrinkStats)

	// Priority weight is 5 minus the assigned rank, summed per slot.
	assert.Equal(t, TimeSlotStats{Count: 2, Priority: 8}, stats.TimeStats["17:00"])
	assert.Equal(t, TimeSlotStats{Count: 2, Priority: 7}, stats.TimeStats["18:00"])
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalResponses)
	assert.Empty(t, stats.LocationStats)
	assert.Empty(t, stats.TimeStats)

	_, ok := stats.TopLocation()
	assert.False(t, ok)
	_, ok = stats.TopTime()
	assert.False(t, ok)
}

func TestTopTime_RanksByPriorityWeightNotCount(t *testing.T) {
	stats := Aggregate([]SurveyResponse{
		{Location: "gangnam", TimePreferences: []TimePreference{{Time: "17:00", Priority: 1}}},
		{Location: "gangnam", TimePreferences: []TimePreference{{Time: "17:00", Priority: 1}, {Time: "18:00", Priority: 2}}},
		{Location: "gangnam", TimePreferences: []TimePreference{{Time: "18:00", Priority: 1}}},
	})

	// Both slots were picked twice, but 17:00 collected more first-choice
	// weight (8 vs 7) and must win.
	top, ok := stats.TopTime()
	require.True(t, ok)
	assert.Equal(t, "17:00", top.ID)
	assert.Equal(t, 8, top.Score)
}

func TestTopByCount_TieBreaksByCatalogOrder(t *testing.T) {
	stats := Aggregate([]SurveyResponse{
		{Location: "hongdae", FoodTypes: []string{"western"}},
		{Location: "gangnam", FoodTypes: []string{"korean"}},
	})

	// gangnam and hongdae tie at one vote each; gangnam is declared first.
	top, ok := stats.TopLocation()
	require.True(t, ok)
	assert.Equal(t, "gangnam", top.ID)
	assert.Equal(t, 1, top.Score)

	// Same for korean vs western.
	topFood, ok := stats.TopFood()
	require.True(t, ok)
	assert.Equal(t, "korean", topFood.ID)
}

func TestAggregateWithUsers(t *testing.T) {
	responses := []SurveyResponse{
		{
			Nickname: "폭스러너", Avatar: "🦊",
			Location:        "gangnam",
			FoodTypes:       []string{"korean"},
			DrinkTypes:      []string{"beer"},
			TimePreferences: []TimePreference{{Time: "19:00", Priority: 1}},
		},
		{
			Nickname: "멍멍이", Avatar: "🐶",
			Location:        "gangnam",
			FoodTypes:       []string{"korean"},
			DrinkTypes:      []string{"wine"},
			TimePreferences: []TimePreference{{Time: "19:00", Priority: 1}},
		},
	}

	stats := AggregateWithUsers(responses)

	require.Equal(t, 2, stats.TotalResponses)

	gangnam := stats.LocationStats["gangnam"]
	require.NotNil(t, gangnam)
	assert.Equal(t, 2, gangnam.Count)
	// Contributors appear in storage order.
	assert.Equal(t, []Participant{
		{Nickname: "폭스러너", Avatar: "🦊"},
		{Nickname: "멍멍이", Avatar: "🐶"},
	}, gangnam.Users)

	korean := stats.FoodStats["korean"]
	require.NotNil(t, korean)
	assert.Equal(t, 2, korean.Count)
	assert.Len(t, korean.Users, 2)

	slot := stats.TimeStats["19:00"]
	require.NotNil(t, slot)
	assert.Equal(t, 2, slot.Count)
	assert.Equal(t, 8, slot.Priority)
	assert.Len(t, slot.Users, 2)
}

func TestAggregate_LocationSumsMatchTotal(t *testing.T) {
	responses := []SurveyResponse{
		{Location: "gangnam", FoodTypes: []string{"korean", "bbq", "western"}},
		{Location: "sinchon", FoodTypes: []string{"korean", "japanese"}},
		{Location: "hangang"},
	}

	stats := Aggregate(responses)

	locationSum := 0
	for _, n := range stats.LocationStats {
		locationSum += n
	}
	assert.Equal(t, stats.TotalResponses, locationSum)

	foodSum := 0
	for _, n := range stats.FoodStats {
		foodSum += n
	}
	assert.Greater(t, foodSum, stats.TotalResponses)
}
