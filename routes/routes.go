package routes

import (
	"github.com/mikespe/calcalc2.0/controllers"
	"github.com/mikespe/calcalc2.0/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
		}

		api.GET("/health", controllers.HealthCheck)
		api.GET("/nutrition-search", controllers.NutritionSearch)

		protected := api.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.GET("/user", controllers.GetProfile)
			protected.PUT("/user", controllers.UpdateProfile)
			protected.GET("/calorie-target", controllers.GetCalorieTarget)

			protected.GET("/calorie-log", controllers.ListCalorieLogs)
			protected.POST("/calorie-log", controllers.CreateCalorieLog)
			protected.PUT("/calorie-log/:id", controllers.UpdateCalorieLog)
			protected.DELETE("/calorie-log/:id", controllers.DeleteCalorieLog)

			protected.GET("/weight-log", controllers.ListWeightLogs)
			protected.POST("/weight-log", controllers.CreateWeightLog)
			protected.PUT("/weight-log/:id", controllers.UpdateWeightLog)
			protected.DELETE("/weight-log/:id", controllers.DeleteWeightLog)

			protected.GET("/activity-log", controllers.ListActivityLogs)
			protected.POST("/activity-log", controllers.CreateActivityLog)

			protected.GET("/logs", controllers.GetAllLogs)
		}
	}

	// Page routes sit behind the presence-only gate; the API routes above
	// always run full token verification regardless of what the gate let
	// through.
	r.GET("/", controllers.Home)

	pages := r.Group("")
	pages.Use(middlewares.RequireTokenPresence())
	{
		pages.GET("/calendar", controllers.Page)
		pages.GET("/calorie-calculator", controllers.Page)
		pages.GET("/nutrition-search", controllers.Page)
		pages.GET("/my-account", controllers.Page)
	}

	authPages := r.Group("")
	authPages.Use(middlewares.RedirectIfAuthenticated())
	{
		authPages.GET("/login", controllers.Page)
		authPages.GET("/register", controllers.Page)
	}

	return r
}
