package domain

// Restaurant is a seeded venue recommendation, tagged with a location and a
// food type from the catalogs. Rating and ReviewCount are display strings,
// not ranking inputs.
type Restaurant struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	FoodType    string `json:"foodType"`
	Rating      string `json:"rating"`
	ReviewCount string `json:"reviewCount"`
	Description string `json:"description"`
	Distance    string `json:"distance"`
	PlaceID     string `json:"placeId,omitempty"`
}
