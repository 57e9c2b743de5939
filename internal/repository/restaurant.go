package repository

import (
	"context"
	"fmt"

	"github.com/moimlab/survey-api/internal/domain"
	"github.com/moimlab/survey-api/internal/repository/dao"
)

type RestaurantDAO interface {
	FindByLocation(ctx context.Context, location string) ([]dao.Restaurant, error)
	FindByFoodType(ctx context.Context, foodType string) ([]dao.Restaurant, error)
	FindByLocationAndFoodType(ctx context.Context, location, foodType string) ([]dao.Restaurant, error)
}

type RestaurantRepository struct {
	dao RestaurantDAO
}

func NewRestaurantRepository(dao RestaurantDAO) *RestaurantRepository {
	return &RestaurantRepository{
		dao: dao,
	}
}

func (r *RestaurantRepository) FindByLocation(ctx context.Context, location string) ([]domain.Restaurant, error) {
	found, err := r.dao.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocation -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RestaurantRepository) FindByFoodType(ctx context.Context, foodType string) ([]domain.Restaurant, error) {
	found, err := r.dao.FindByFoodType(ctx, foodType)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFoodType -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RestaurantRepository) FindByLocationAndFoodType(ctx context.Context, location, foodType string) ([]domain.Restaurant, error) {
	found, err := r.dao.FindByLocationAndFoodType(ctx, location, foodType)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByLocationAndFoodType -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RestaurantRepository) daoToDomain(rows []dao.Restaurant) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, domain.Restaurant{
			ID:          row.ID,
			Name:        row.Name,
			Location:    row.Location,
			FoodType:    row.FoodType,
			Rating:      row.Rating,
			ReviewCount: row.ReviewCount,
			Description: row.Description,
			Distance:    row.Distance,
			PlaceID:     row.PlaceID,
		})
	}

	return restaurants
}
