package response

import "github.com/moimlab/survey-api/internal/domain"

type UsedNicknamesResponse struct {
	UsedNicknames []string `json:"usedNicknames"`
}

// MetadataResponse publishes the closed catalogs the wizard renders its
// options from.
type MetadataResponse struct {
	Locations     []domain.CatalogOption `json:"locations"`
	FoodTypes     []domain.CatalogOption `json:"foodTypes"`
	DrinkTypes    []domain.CatalogOption `json:"drinkTypes"`
	TimeOptions   []domain.CatalogOption `json:"timeOptions"`
	AnimalAvatars []domain.AnimalAvatar  `json:"animalAvatars"`
}
