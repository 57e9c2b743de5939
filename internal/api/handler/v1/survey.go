package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moimlab/survey-api/internal/api/handler/v1/request"
	"github.com/moimlab/survey-api/internal/api/handler/v1/response"
	"github.com/moimlab/survey-api/internal/domain"
	"github.com/moimlab/survey-api/internal/service"
)

type SurveyService interface {
	Submit(ctx context.Context, response domain.SurveyResponse) (domain.SurveyResponse, error)
	GetUsedNicknames(ctx context.Context) ([]string, error)
	GetResponses(ctx context.Context) ([]domain.SurveyResponse, error)
	GetStats(ctx context.Context) (domain.SurveyStats, error)
	GetStatsWithUsers(ctx context.Context) (domain.SurveyStatsWithUsers, error)
	GetSummary(ctx context.Context) (service.Summary, error)
}

type SurveyHandler struct {
	svc SurveyService
}

func NewSurveyHandler(svc SurveyService) *SurveyHandler {
	return &SurveyHandler{
		svc: svc,
	}
}

// HandleSubmitSurvey accepts one complete wizard submission. A malformed
// body or out-of-catalog answer is a 400 listing every violated field; a
// taken nickname is a 409 carrying the existing response.
func (h *SurveyHandler) HandleSubmitSurvey(ctx *gin.Context) {
	var req request.SubmitSurveyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err))
		return
	}

	created, err := h.svc.Submit(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		var conflict *service.NicknameConflictError
		if errors.As(err, &conflict) {
			response.RenderErr(ctx, response.ErrNicknameConflict(conflict.Existing))
			return
		}

		err = fmt.Errorf("v1.HandleSubmitSurvey -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, created)
}

// HandleGetUsedNicknames lists already-claimed nicknames so the avatar
// picker can grey them out.
func (h *SurveyHandler) HandleGetUsedNicknames(ctx *gin.Context) {
	nicknames, err := h.svc.GetUsedNicknames(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetUsedNicknames -> h.svc.GetUsedNicknames -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if nicknames == nil {
		nicknames = []string{}
	}

	ctx.JSON(http.StatusOK, response.UsedNicknamesResponse{UsedNicknames: nicknames})
}

// HandleGetStats returns the anonymous tallies for the dashboard.
func (h *SurveyHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.GetStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStats -> h.svc.GetStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleGetStatsWithUsers returns the tallies with per-bucket contributor
// identities, for the transparency view.
func (h *SurveyHandler) HandleGetStatsWithUsers(ctx *gin.Context) {
	stats, err := h.svc.GetStatsWithUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetStatsWithUsers -> h.svc.GetStatsWithUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

func (h *SurveyHandler) HandleGetResponses(ctx *gin.Context) {
	responses, err := h.svc.GetResponses(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetResponses -> h.svc.GetResponses -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if responses == nil {
		responses = []domain.SurveyResponse{}
	}

	ctx.JSON(http.StatusOK, responses)
}

// HandleGetSummary returns the winning pick per category.
func (h *SurveyHandler) HandleGetSummary(ctx *gin.Context) {
	summary, err := h.svc.GetSummary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSummary -> h.svc.GetSummary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleGetMetadata serves the static catalogs the wizard renders from.
func (h *SurveyHandler) HandleGetMetadata(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.MetadataResponse{
		Locations:     domain.Locations,
		FoodTypes:     domain.FoodTypes,
		DrinkTypes:    domain.DrinkTypes,
		TimeOptions:   domain.TimeOptions,
		AnimalAvatars: domain.AnimalAvatars,
	})
}
