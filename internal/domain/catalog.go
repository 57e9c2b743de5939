package domain

// The survey only ever accepts answers drawn from these closed catalogs.
// They are fixed at compile time; submissions referencing any other id are
// rejected during request validation.

type AnimalAvatar struct {
	Emoji       string `json:"emoji"`
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
}

type CatalogOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// AnimalAvatars pairs each nickname 1:1 with its emoji. The nickname is the
// de-duplication key for survey participation.
var AnimalAvatars = []AnimalAvatar{
	{Emoji: "🦊", Nickname: "폭스러너", Description: "영리하고 빠른"},
	{Emoji: "🐨", Nickname: "코알라킹", Description: "여유롭고 쿨한"},
	{Emoji: "🐯", Nickname: "호랑이력", Description: "열정적이고 강한"},
	{Emoji: "🐰", Nickname: "토끼점프", Description: "귀엽고 활발한"},
	{Emoji: "🐺", Nickname: "늑대센스", Description: "카리스마 있는"},
	{Emoji: "🦁", Nickname: "라이언킹", Description: "리더십 있는"},
	{Emoji: "🐼", Nickname: "판다러블", Description: "사랑스럽고 편안한"},
	{Emoji: "🐸", Nickname: "개구리맨", Description: "유쾌하고 재미있는"},
	{Emoji: "🐱", Nickname: "냥이파워", Description: "자유롭고 독립적인"},
	{Emoji: "🐶", Nickname: "멍멍이", Description: "충성스럽고 친근한"},
	{Emoji: "🦄", Nickname: "유니콘드림", Description: "특별하고 환상적인"},
}

var Locations = []CatalogOption{
	{ID: "gangnam", Name: "강남", Description: "역삼/서초 일대", Icon: "fas fa-building"},
	{ID: "hongdae", Name: "홍대", Description: "홍익대 주변", Icon: "fas fa-music"},
	{ID: "jongno", Name: "종로", Description: "종로3가 일대", Icon: "fas fa-landmark"},
	{ID: "myeongdong", Name: "명동", Description: "중구 명동", Icon: "fas fa-shopping-bag"},
	{ID: "hangang", Name: "한강", Description: "여의도/반포 한강공원", Icon: "fas fa-river"},
	{ID: "sinchon", Name: "신촌", Description: "연세대 주변", Icon: "fas fa-graduation-cap"},
}

var FoodTypes = []CatalogOption{
	{ID: "korean", Name: "한식", Description: "삼겹살, 갈비, 김치찌개 등"},
	{ID: "chinese", Name: "중식", Description: "짜장면, 탕수육, 마라탕 등"},
	{ID: "japanese", Name: "일식", Description: "초밥, 라멘, 이자카야 등"},
	{ID: "western", Name: "양식", Description: "파스타, 스테이크, 피자 등"},
	{ID: "bbq", Name: "고기구이", Description: "삼겹살, 갈비, 곱창 등"},
	{ID: "other", Name: "기타", Description: "멕시칸, 인도, 태국 등"},
}

var DrinkTypes = []CatalogOption{
	{ID: "beer", Name: "맥주", Description: "생맥주, 병맥주", Icon: "fas fa-beer"},
	{ID: "soju", Name: "소주", Description: "참이슬, 처음처럼 등", Icon: "fas fa-glass-whiskey"},
	{ID: "somaek", Name: "소맥", Description: "소주 + 맥주", Icon: "fas fa-glass-martini"},
	{ID: "highball", Name: "하이볼", Description: "위스키 + 소다", Icon: "fas fa-cocktail"},
	{ID: "wine", Name: "와인", Description: "레드, 화이트, 스파클링", Icon: "fas fa-wine-glass"},
	{ID: "nonalcoholic", Name: "무알코올", Description: "음료수, 차, 커피", Icon: "fas fa-coffee"},
}

var TimeOptions = []CatalogOption{
	{ID: "17:00", Name: "17:00", Description: "오후 5시", Icon: "fas fa-sun"},
	{ID: "18:00", Name: "18:00", Description: "오후 6시", Icon: "fas fa-sun"},
	{ID: "19:00", Name: "19:00", Description: "오후 7시", Icon: "fas fa-moon"},
	{ID: "20:00", Name: "20:00", Description: "오후 8시", Icon: "fas fa-moon"},
}

func optionIDs(options []CatalogOption) []string {
	ids := make([]string, 0, len(options))
	for _, o := range options {
		ids = append(ids, o.ID)
	}

	return ids
}

func LocationIDs() []string  { return optionIDs(Locations) }
func FoodTypeIDs() []string  { return optionIDs(FoodTypes) }
func DrinkTypeIDs() []string { return optionIDs(DrinkTypes) }
func TimeSlotIDs() []string  { return optionIDs(TimeOptions) }

func IsKnownLocation(id string) bool  { return catalogRank(Locations, id) >= 0 }
func IsKnownFoodType(id string) bool  { return catalogRank(FoodTypes, id) >= 0 }
func IsKnownDrinkType(id string) bool { return catalogRank(DrinkTypes, id) >= 0 }
func IsKnownTimeSlot(id string) bool  { return catalogRank(TimeOptions, id) >= 0 }

// FindAvatarByNickname returns the catalog avatar owning the nickname.
func FindAvatarByNickname(nickname string) (AnimalAvatar, bool) {
	for _, a := range AnimalAvatars {
		if a.Nickname == nickname {
			return a, true
		}
	}

	return AnimalAvatar{}, false
}

// catalogRank is the declaration-order position of an id, -1 when unknown.
// Declaration order doubles as the ranking tie-break (see stats.go).
func catalogRank(options []CatalogOption, id string) int {
	for i, o := range options {
		if o.ID == id {
			return i
		}
	}

	return -1
}
