package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moimlab/survey-api/internal/domain"
)

type fakeRestaurantService struct {
	restaurants []domain.Restaurant
	failWith    error
}

func (f *fakeRestaurantService) GetByLocation(_ context.Context, location string) ([]domain.Restaurant, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	var matched []domain.Restaurant
	for _, r := range f.restaurants {
		if r.Location == location {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

func (f *fakeRestaurantService) GetByLocationAndFoodType(_ context.Context, location, foodType string) ([]domain.Restaurant, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	var matched []domain.Restaurant
	for _, r := range f.restaurants {
		if r.Location == location && r.FoodType == foodType {
			matched = append(matched, r)
		}
	}

	return matched, nil
}

func newRestaurantRouter(svc RestaurantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewRestaurantHandler(svc)
	router.GET("/api/v1/restaurants/:location", handler.HandleGetByLocation)
	router.GET("/api/v1/restaurants/:location/:foodType", handler.HandleGetByLocationAndFoodType)

	return router
}

func TestHandleGetByLocation(t *testing.T) {
	svc := &fakeRestaurantService{restaurants: []domain.Restaurant{
		{ID: 1, Name: "마녀김밥 강남점", Location: "gangnam", FoodType: "korean"},
		{ID: 2, Name: "삼겹살 맛집", Location: "gangnam", FoodType: "bbq"},
		{ID: 3, Name: "홍대 족발보쌈", Location: "hongdae", FoodType: "korean"},
	}}
	router := newRestaurantRouter(svc)

	recorder := getJSON(t, router, "/api/v1/restaurants/gangnam")

	require.Equal(t, http.StatusOK, recorder.Code)

	var restaurants []domain.Restaurant
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &restaurants))
	assert.Len(t, restaurants, 2)
}

func TestHandleGetByLocationAndFoodType(t *testing.T) {
	svc := &fakeRestaurantService{restaurants: []domain.Restaurant{
		{ID: 1, Name: "마녀김밥 강남점", Location: "gangnam", FoodType: "korean"},
		{ID: 2, Name: "삼겹살 맛집", Location: "gangnam", FoodType: "bbq"},
	}}
	router := newRestaurantRouter(svc)

	recorder := getJSON(t, router, "/api/v1/restaurants/gangnam/bbq")

	require.Equal(t, http.StatusOK, recorder.Code)

	var restaurants []domain.Restaurant
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &restaurants))
	require.Len(t, restaurants, 1)
	assert.Equal(t, "삼겹살 맛집", restaurants[0].Name)
}

func TestHandleGetByLocation_EmptyIsListNotNull(t *testing.T) {
	router := newRestaurantRouter(&fakeRestaurantService{})

	recorder := getJSON(t, router, "/api/v1/restaurants/jongno")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHandleGetByLocation_StoreFailure(t *testing.T) {
	router := newRestaurantRouter(&fakeRestaurantService{failWith: errors.New("connection reset")})

	assert.Equal(t, http.StatusInternalServerError, getJSON(t, router, "/api/v1/restaurants/gangnam").Code)
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, router, "/api/v1/restaurants/gangnam/bbq").Code)
}
