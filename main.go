package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arabella/config"
	"arabella/jobs"
	"arabella/models"
	"arabella/routes"
	"arabella/services"
	"arabella/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func migrateTables(db *gorm.DB) {
	if err := db.AutoMigrate(&models.RoomType{}, &models.RatePlan{}, &models.Booking{}, &models.User{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, db, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer func() {
		if err := config.CloseDB(); err != nil {
			log.Printf("Lỗi khi đóng kết nối DB: %v", err)
		}
	}()

	migrateTables(db)

	statsService := services.NewStatsService(db)
	if err := jobs.InitCronJobs(c, m, statsService, config.RedisClient); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, db, config.RedisClient, config.Cloudinary, m)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Println("Server starting on port " + port + "...")
		utils.LogInfo("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Chờ tín hiệu dừng rồi shutdown có timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")
	utils.LogInfo("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError("Server forced to shutdown: %v", err)
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
