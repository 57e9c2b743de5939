package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moimlab/survey-api/internal/api/handler/v1/response"
	"github.com/moimlab/survey-api/internal/domain"
)

type RestaurantService interface {
	GetByLocation(ctx context.Context, location string) ([]domain.Restaurant, error)
	GetByLocationAndFoodType(ctx context.Context, location, foodType string) ([]domain.Restaurant, error)
}

type RestaurantHandler struct {
	svc RestaurantService
}

func NewRestaurantHandler(svc RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		svc: svc,
	}
}

// HandleGetByLocation lists seeded venue recommendations for an area.
// Unknown areas simply return an empty list.
func (h *RestaurantHandler) HandleGetByLocation(ctx *gin.Context) {
	location := ctx.Param("location")

	restaurants, err := h.svc.GetByLocation(ctx.Request.Context(), location)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetByLocation -> h.svc.GetByLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}

	ctx.JSON(http.StatusOK, restaurants)
}

func (h *RestaurantHandler) HandleGetByLocationAndFoodType(ctx *gin.Context) {
	location := ctx.Param("location")
	foodType := ctx.Param("foodType")

	restaurants, err := h.svc.GetByLocationAndFoodType(ctx.Request.Context(), location, foodType)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetByLocationAndFoodType -> h.svc.GetByLocationAndFoodType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}

	ctx.JSON(http.StatusOK, restaurants)
}
