package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aditya/universe/internal/app/services"
	"github.com/aditya/universe/internal/middleware"
)

// ActivityController serves the two cross-collection read endpoints
type ActivityController struct {
	activityService services.ActivityService
	searchService   services.SearchService
	logger          zerolog.Logger
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService services.ActivityService, searchService services.SearchService, logger zerolog.Logger) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		searchService:   searchService,
		logger:          logger,
	}
}

// UserActivity handles GET /user-activity/:id. It returns every post by one
// student, keyed by category.
func (c *ActivityController) UserActivity(ctx *gin.Context) {
	activity, err := c.activityService.UserActivity(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch user activity")
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// Search handles GET /search?q=, an aggregate match across the searchable
// collections, keyed by category.
func (c *ActivityController) Search(ctx *gin.Context) {
	matches, err := c.searchService.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Search failed")
		return
	}

	ctx.JSON(http.StatusOK, matches)
}
