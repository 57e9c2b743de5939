package domain

// Tallies over the full response collection. Everything here is recomputed
// from scratch on each call; no counters are maintained incrementally. Cost
// is linear in the number of responses, which stays in the low hundreds for
// this survey.

// TimeSlotStats tallies one time slot. Count is how many responses picked the
// slot at all; Priority is the ranking weight: each response that picked the
// slot contributes 5 minus the priority it assigned, so a priority-1 pick is
// worth 4 and a priority-4 pick is worth 1.
type TimeSlotStats struct {
	Count    int `json:"count"`
	Priority int `json:"priority"`
}

type SurveyStats struct {
	TotalResponses int                      `json:"totalResponses"`
	LocationStats  map[string]int           `json:"locationStats"`
	FoodStats      map[string]int           `json:"foodStats"`
	DrinkStats     map[string]int           `json:"drinkStats"`
	TimeStats      map[string]TimeSlotStats `json:"timeStats"`
}

// CountWithUsers is a count bucket annotated with who contributed to it, in
// the order responses were stored.
type CountWithUsers struct {
	Count int           `json:"count"`
	Users []Participant `json:"users"`
}

type TimeSlotStatsWithUsers struct {
	Count    int           `json:"count"`
	Priority int           `json:"priority"`
	Users    []Participant `json:"users"`
}

type SurveyStatsWithUsers struct {
	TotalResponses int                                `json:"totalResponses"`
	LocationStats  map[string]*CountWithUsers         `json:"locationStats"`
	FoodStats      map[string]*CountWithUsers         `json:"foodStats"`
	DrinkStats     map[string]*CountWithUsers         `json:"drinkStats"`
	TimeStats      map[string]*TimeSlotStatsWithUsers `json:"timeStats"`
}

// Aggregate tallies all responses. Location is single-select, so its counts
// sum to TotalResponses; food and drink are multi-select and may sum higher.
func Aggregate(responses []SurveyResponse) SurveyStats {
	stats := SurveyStats{
		TotalResponses: len(responses),
		LocationStats:  map[string]int{},
		FoodStats:      map[string]int{},
		DrinkStats:     map[string]int{},
		TimeStats:      map[string]TimeSlotStats{},
	}

	for _, r := range responses {
		stats.LocationStats[r.Location]++

		for _, food := range r.FoodTypes {
			stats.FoodStats[food]++
		}

		for _, drink := range r.DrinkTypes {
			stats.DrinkStats[drink]++
		}

		for _, tp := range r.TimePreferences {
			slot := stats.TimeStats[tp.Time]
			slot.Count++
			slot.Priority += MaxTimePreferences + 1 - tp.Priority
			stats.TimeStats[tp.Time] = slot
		}
	}

	return stats
}

// AggregateWithUsers is Aggregate plus, per bucket, the ordered list of
// participants that contributed to it. Used by the transparency view, not the
// default dashboard.
func AggregateWithUsers(responses []SurveyResponse) SurveyStatsWithUsers {
	stats := SurveyStatsWithUsers{
		TotalResponses: len(responses),
		LocationStats:  map[string]*CountWithUsers{},
		FoodStats:      map[string]*CountWithUsers{},
		DrinkStats:     map[string]*CountWithUsers{},
		TimeStats:      map[string]*TimeSlotStatsWithUsers{},
	}

	counted := func(buckets map[string]*CountWithUsers, id string) *CountWithUsers {
		if buckets[id] == nil {
			buckets[id] = &CountWithUsers{}
		}

		return buckets[id]
	}

	for _, r := range responses {
		user := r.Participant()

		bucket := counted(stats.LocationStats, r.Location)
		bucket.Count++
		bucket.Users = append(bucket.Users, user)

		for _, food := range r.FoodTypes {
			bucket = counted(stats.FoodStats, food)
			bucket.Count++
			bucket.Users = append(bucket.Users, user)
		}

		for _, drink := range r.DrinkTypes {
			bucket = counted(stats.DrinkStats, drink)
			bucket.Count++
			bucket.Users = append(bucket.Users, user)
		}

		for _, tp := range r.TimePreferences {
			slot := stats.TimeStats[tp.Time]
			if slot == nil {
				slot = &TimeSlotStatsWithUsers{}
				stats.TimeStats[tp.Time] = slot
			}
			slot.Count++
			slot.Priority += MaxTimePreferences + 1 - tp.Priority
			slot.Users = append(slot.Users, user)
		}
	}

	return stats
}

// RankedEntry is one catalog id with its ranking score.
type RankedEntry struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

// TopLocation returns the most voted location. Ties break by catalog
// declaration order.
func (s SurveyStats) TopLocation() (RankedEntry, bool) {
	return topByCount(s.LocationStats, Locations)
}

func (s SurveyStats) TopFood() (RankedEntry, bool) {
	return topByCount(s.FoodStats, FoodTypes)
}

func (s SurveyStats) TopDrink() (RankedEntry, bool) {
	return topByCount(s.DrinkStats, DrinkTypes)
}

// TopTime ranks time slots by their priority weight, not by raw count.
func (s SurveyStats) TopTime() (RankedEntry, bool) {
	best := RankedEntry{}
	found := false
	for _, option := range TimeOptions {
		slot, ok := s.TimeStats[option.ID]
		if !ok {
			continue
		}
		if !found || slot.Priority > best.Score {
			best = RankedEntry{ID: option.ID, Score: slot.Priority}
			found = true
		}
	}

	return best, found
}

func topByCount(counts map[string]int, catalog []CatalogOption) (RankedEntry, bool) {
	best := RankedEntry{}
	found := false
	// Walking the catalog instead of the map keeps ties deterministic:
	// the earlier declared option wins.
	for _, option := range catalog {
		count, ok := counts[option.ID]
		if !ok {
			continue
		}
		if !found || count > best.Score {
			best = RankedEntry{ID: option.ID, Score: count}
			found = true
		}
	}

	return best, found
}
