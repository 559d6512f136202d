package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aditya/universe/internal/app/controllers"
	"github.com/aditya/universe/internal/app/models"
)

// SetupRouter configures all application routes. Each post collection gets
// the same five-route quintuple; auth and the fan-out reads sit beside them
// at the root.
func SetupRouter(
	router *gin.Engine,
	crudControllers map[string]*controllers.CrudController,
	authController *controllers.AuthController,
	activityController *controllers.ActivityController,
	healthController *controllers.HealthController,
) {
	// --- Auth routes ---
	router.POST("/signup", authController.Signup)
	router.POST("/login", authController.Login)

	// --- Cross-collection reads ---
	router.GET("/user-activity/:id", activityController.UserActivity)
	router.GET("/search", activityController.Search)

	// --- Collection routes ---
	for _, coll := range models.Collections() {
		controller, ok := crudControllers[coll.Name]
		if !ok {
			continue
		}

		group := router.Group("/" + coll.Name)
		{
			group.GET("", controller.GetAll)
			group.GET("/:id", controller.GetOne)
			group.POST("", controller.Create)
			group.PUT("/:id", controller.Update)
			group.DELETE("/:id", controller.Delete)
		}
	}

	// --- Health check ---
	router.GET("/health", healthController.Health)
}
