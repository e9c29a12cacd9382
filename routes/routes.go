package routes

import (
	"net/http"
	"time"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/middleware"
	"hotel-management/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires controllers onto the HTTP surface. Booking lifecycle
// transitions are staff-only, room management is admin/owner, and customers
// get self-service search, create and history.
func SetupRouter(
	cfg config.Config,
	db *gorm.DB,
	uc *controllers.UserController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", cfg.UploadDir)

	origins := cfg.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.Authenticate(cfg, db)
	staffRoles := middleware.RequireRoles(models.RoleAdmin, models.RoleOwner, models.RoleStaff)
	managerRoles := middleware.RequireRoles(models.RoleAdmin, models.RoleOwner)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", uc.Register)
			users.POST("/login", uc.Login)
			users.POST("/forgot-password", uc.ForgotPassword)

			users.POST("/logout", authed, uc.Logout)
			users.PUT("/update-profile", authed, uc.UpdateProfile)
			users.POST("/create-owner", authed, middleware.RequireRoles(models.RoleOwner), uc.CreateOwner)
			users.POST("/create-staff", authed, middleware.RequireRoles(models.RoleOwner, models.RoleAdmin), uc.CreateStaff)
		}

		bookings := api.Group("/bookings", authed)
		{
			// customers search and book for themselves
			bookings.GET("/search", bc.SearchAvailableRooms)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/user/:userId", bc.GetUserBookings)

			bookings.GET("", staffRoles, bc.GetBookings)
			bookings.GET("/rooms/status", staffRoles, bc.GetRoomStatuses)

			bookings.PUT("/:id/confirm", staffRoles, bc.ConfirmBooking)
			bookings.PUT("/:id/checkin", staffRoles, bc.CheckInBooking)
			bookings.PUT("/:id/checkout", staffRoles, bc.CheckOutBooking)
			bookings.PUT("/:id/cancel", staffRoles, bc.CancelBooking)
		}

		rooms := api.Group("/rooms", authed, managerRoles)
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PUT("/:id", rc.UpdateRoom)
			rooms.PATCH("/:id", rc.UpdateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.POST("/:id/images", rc.UploadRoomImages)
			rooms.DELETE("/:id/images", rc.DeleteRoomImages)
		}
	}

	return r
}
