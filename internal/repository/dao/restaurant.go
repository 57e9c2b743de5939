package dao

import (
	"context"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"not null"`
	Location string `gorm:"not null"`
	FoodType string `gorm:"not null"`

	Rating      string `gorm:"not null"`
	ReviewCount string `gorm:"not null"`
	Description string `gorm:"not null"`
	Distance    string `gorm:"not null"`
	PlaceID     string
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type RestaurantDAO struct {
	db *gorm.DB
}

func NewRestaurantDAO(db *gorm.DB) *RestaurantDAO {
	return &RestaurantDAO{
		db: db,
	}
}

// EnsureSeeded inserts rows only when the table is empty, so running it on
// every boot is safe. Reports whether it actually seeded.
func (d *RestaurantDAO) EnsureSeeded(rows []Restaurant) (bool, error) {
	var count int64
	if err := d.db.Model(&Restaurant{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	if err := d.db.Create(&rows).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (d *RestaurantDAO) FindByLocation(ctx context.Context, location string) ([]Restaurant, error) {
	var restaurants []Restaurant

	result := d.db.WithContext(ctx).Where("location = ?", location).Order("id").Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (d *RestaurantDAO) FindByFoodType(ctx context.Context, foodType string) ([]Restaurant, error) {
	var restaurants []Restaurant

	result := d.db.WithContext(ctx).Where("food_type = ?", foodType).Order("id").Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (d *RestaurantDAO) FindByLocationAndFoodType(ctx context.Context, location, foodType string) ([]Restaurant, error) {
	var restaurants []Restaurant

	result := d.db.WithContext(ctx).
		Where("location = ? AND food_type = ?", location, foodType).
		Order("id").
		Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}
