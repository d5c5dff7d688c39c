// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"closet/internal/delivery/http/middleware"
	"closet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClothHandler        *handler.ClothHandler
	RecommendHandler    *handler.RecommendHandler
	WearHandler         *handler.WearHandler
	AccountHandler      *handler.AccountHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	clothHandler        *handler.ClothHandler
	recommendHandler    *handler.RecommendHandler
	wearHandler         *handler.WearHandler
	accountHandler      *handler.AccountHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		clothHandler:        params.ClothHandler,
		recommendHandler:    params.RecommendHandler,
		wearHandler:         params.WearHandler,
		accountHandler:      params.AccountHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Wardrobe routes
	clothGroup := e.Group("/clothes")
	{
		clothGroup.GET("", r.clothHandler.ListClothes)
		clothGroup.POST("", r.clothHandler.AddCloth)
		clothGroup.PATCH("/:cloth_id/status", r.clothHandler.ChangeStatus)
	}

	// Recommendation and wear confirmation
	e.POST("/recommend", r.recommendHandler.Recommend)
	e.POST("/wear", r.wearHandler.ConfirmWear)

	// Account configuration
	e.PUT("/users/:user_id/wash-cycle", r.accountHandler.UpdateWashCycle)
	e.POST("/auth/link", r.accountHandler.LinkProvider)
}
