package dao

// SampleRestaurants is the venue catalog loaded on first boot.
var SampleRestaurants = []Restaurant{
	{
		Name:        "마녀김밥 강남점",
		Location:    "gangnam",
		FoodType:    "korean",
		Rating:      "4.5",
		ReviewCount: "127",
		Description: "신선한 재료와 정성스러운 조리로 만든 김밥이 일품입니다. 단체석도 준비되어 있어요.",
		Distance:    "도보 5분",
		PlaceID:     "gangnam_restaurant_1",
	},
	{
		Name:        "삼겹살 맛집",
		Location:    "gangnam",
		FoodType:    "bbq",
		Rating:      "4.3",
		ReviewCount: "89",
		Description: "두꺼운 삼겹살과 신선한 야채가 어우러진 맛이 환상적입니다. 넓은 룸도 있어요.",
		Distance:    "도보 8분",
		PlaceID:     "gangnam_restaurant_2",
	},
	{
		Name:        "홍대 족발보쌈",
		Location:    "hongdae",
		FoodType:    "korean",
		Rating:      "4.4",
		ReviewCount: "156",
		Description: "부드러운 족발과 신선한 보쌈이 일품입니다. 젊은 분위기에 단체 모임에 좋아요.",
		Distance:    "도보 3분",
		PlaceID:     "hongdae_restaurant_1",
	},
	{
		Name:        "한강 치킨 맛집",
		Location:    "hangang",
		FoodType:    "korean",
		Rating:      "4.1",
		ReviewCount: "78",
		Description: "한강을 보며 먹는 치킨이 일품입니다. 야외 테라스에서 시원한 바람을 맞으며 즐기세요.",
		Distance:    "도보 10분",
		PlaceID:     "hangang_restaurant_1",
	},
	{
		Name:        "신촌 파스타 하우스",
		Location:    "sinchon",
		FoodType:    "western",
		Rating:      "4.3",
		ReviewCount: "112",
		Description: "수제 파스타와 리조또가 맛있습니다. 대학가 분위기에 가격도 합리적이에요.",
		Distance:    "도보 4분",
		PlaceID:     "sinchon_restaurant_1",
	},
}
