package service

import (
	"context"
	"fmt"

	"github.com/moimlab/survey-api/internal/domain"
)

type RestaurantRepository interface {
	FindByLocation(ctx context.Context, location string) ([]domain.Restaurant, error)
	FindByFoodType(ctx context.Context, foodType string) ([]domain.Restaurant, error)
	FindByLocationAndFoodType(ctx context.Context, location, foodType string) ([]domain.Restaurant, error)
}

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{
		repo: repo,
	}
}

func (s *RestaurantService) GetByLocation(ctx context.Context, location string) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.FindByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocation -> %w", err)
	}

	return restaurants, nil
}

func (s *RestaurantService) GetByFoodType(ctx context.Context, foodType string) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.FindByFoodType(ctx, foodType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFoodType -> %w", err)
	}

	return restaurants, nil
}

func (s *RestaurantService) GetByLocationAndFoodType(ctx context.Context, location, foodType string) ([]domain.Restaurant, error) {
	restaurants, err := s.repo.FindByLocationAndFoodType(ctx, location, foodType)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByLocationAndFoodType -> %w", err)
	}

	return restaurants, nil
}
