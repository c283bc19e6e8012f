package routes

import (
	"context"
	"net/http"

	"arabella/controllers"
	middlewares "arabella/middleware"
	"arabella/models"
	"arabella/services"
	"arabella/services/logger"
	"arabella/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	pricing := services.NewStayPricing()
	availability := services.NewAvailabilityService(db)
	gateway := services.NewRazorpayGateway()
	dispatcher := notification.NewDispatcher(
		notification.NewMailer(),
		notification.NewSMSSender(log),
		notification.NewMelodyService(m),
		log,
	)
	bookingService := services.NewBookingService(db, gateway, pricing, dispatcher, log)
	statsService := services.NewStatsService(db)
	authService := services.NewAuthService(db)

	roomController := controllers.NewRoomController(db, redisCli, availability, pricing, log)
	bookingController := controllers.NewBookingController(db, redisCli, bookingService, log)
	adminController := controllers.NewAdminController(db, redisCli, bookingService, statsService, dispatcher, log)
	authController := controllers.NewAuthController(authService, log)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	// Catalog và tìm phòng công khai
	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/suggest", roomController.SuggestRooms)
	v1.GET("/rooms/:id", roomController.GetRoomDetail)

	// Luồng đặt phòng hai bước của khách
	v1.POST("/bookings/initiate", bookingController.InitiateBooking)
	v1.POST("/bookings/confirm", bookingController.ConfirmBooking)
	v1.GET("/bookings/:id/invoice", bookingController.GetBookingInvoice)

	v1.POST("/auth/login", authController.Login)

	// Route cần đăng nhập
	v1.GET("/bookings", middlewares.AuthMiddleware(models.RoleAdmin, models.RoleStaff), bookingController.GetBookings)

	admin := v1.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(models.RoleAdmin))
	{
		admin.POST("/rooms", adminController.CreateRoom)
		admin.PUT("/rooms/:id", adminController.UpdateRoom)
		admin.DELETE("/rooms/:id", adminController.DeleteRoom)

		admin.POST("/rooms/:id/rates", adminController.CreateRatePlan)
		admin.PUT("/rooms/:id/rates/:planId", adminController.UpdateRatePlan)
		admin.DELETE("/rooms/:id/rates/:planId", adminController.DeleteRatePlan)

		admin.PUT("/bookings/:id/status", adminController.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", adminController.DeleteBooking)
		admin.POST("/bookings/:id/notify", adminController.SendManualNotification)

		admin.GET("/dashboard", adminController.GetDashboardStats)
	}

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(models.RoleAdmin), func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(models.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
