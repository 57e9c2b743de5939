package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/moimlab/survey-api/internal/api/handler/v1"
	"github.com/moimlab/survey-api/internal/api/middleware"
	"github.com/moimlab/survey-api/internal/config"
	"github.com/moimlab/survey-api/internal/repository"
	"github.com/moimlab/survey-api/internal/repository/dao"
	"github.com/moimlab/survey-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	surveyHandler := s.initSurveyHandler(db)
	restaurantHandler := s.initRestaurantHandler(db)
	s.MountHandlers(surveyHandler, restaurantHandler)

	return s
}

func (s *Server) initSurveyHandler(db *gorm.DB) *v1.SurveyHandler {
	responseDAO := dao.NewSurveyResponseDAO(db)
	repo := repository.NewSurveyResponseRepository(responseDAO)
	svc := service.NewSurveyService(repo)
	handler := v1.NewSurveyHandler(svc)

	return handler
}

func (s *Server) initRestaurantHandler(db *gorm.DB) *v1.RestaurantHandler {
	restaurantDAO := dao.NewRestaurantDAO(db)
	repo := repository.NewRestaurantRepository(restaurantDAO)
	svc := service.NewRestaurantService(repo)
	handler := v1.NewRestaurantHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(surveyHandler *v1.SurveyHandler, restaurantHandler *v1.RestaurantHandler) {
	const basePath = "/api/v1"

	survey := s.Router.Group(basePath)
	{
		survey.POST("/survey", surveyHandler.HandleSubmitSurvey)
		survey.GET("/survey/used-nicknames", surveyHandler.HandleGetUsedNicknames)
		survey.GET("/survey/stats", surveyHandler.HandleGetStats)
		survey.GET("/survey/stats-with-users", surveyHandler.HandleGetStatsWithUsers)
		survey.GET("/survey/responses", surveyHandler.HandleGetResponses)
		survey.GET("/survey/summary", surveyHandler.HandleGetSummary)
		survey.GET("/survey/metadata", surveyHandler.HandleGetMetadata)
	}

	restaurants := s.Router.Group(basePath)
	{
		restaurants.GET("/restaurants/:location", restaurantHandler.HandleGetByLocation)
		restaurants.GET("/restaurants/:location/:foodType", restaurantHandler.HandleGetByLocationAndFoodType)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
