package routes

import (
	"nsdrink-pos/controllers"
	"nsdrink-pos/dtos"
	"nsdrink-pos/middlewares"
	"nsdrink-pos/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	dtos.RegisterValidators()

	api := r.Group("/api")

	api.POST("/login", controllers.Login)

	// Menu is public to read, admin to change
	api.GET("/menu", controllers.GetMenu)
	menu := api.Group("/menu")
	menu.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin))
	{
		menu.POST("", controllers.CreateMenuItem)
		menu.PUT("/:id", controllers.UpdateMenuItem)
		menu.DELETE("/:id", controllers.DeleteMenuItem)
	}

	// Orders
	admin := middlewares.RoleMiddleware(models.RoleAdmin)
	orders := api.Group("/orders")
	orders.Use(middlewares.AuthMiddleware())
	{
		orders.GET("", controllers.GetOrders)
		orders.POST("", controllers.CreateOrder)
		orders.GET("/last", controllers.GetLastOrder)
		orders.GET("/dashboard", controllers.GetDashboard)
		orders.GET("/completed", admin, controllers.GetCompletedOrders)
		orders.GET("/discount-notes", admin, controllers.GetDiscountNoteOrders)
		orders.GET("/:id", controllers.GetOrderByID)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.POST("/:id/reopen", admin, controllers.ReopenOrder)
	}

	// Users (admin only)
	users := api.Group("/users")
	users.Use(middlewares.AuthMiddleware(), middlewares.RoleMiddleware(models.RoleAdmin))
	{
		users.GET("", controllers.GetUsers)
		users.POST("", controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}
}
