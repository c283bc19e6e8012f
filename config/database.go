package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Pool kết nối khởi tạo lazy, đóng qua CloseDB khi process shutdown.
// Không dùng singleton trần: mọi nơi lấy kết nối qua DB().
var (
	db     *gorm.DB
	dbOnce sync.Once
	dbErr  error
)

func buildDSN() string {
	host := GetEnvDefault("DB_HOST", "127.0.0.1")
	user := GetEnvDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := GetEnvDefault("DB_NAME", "arabella")
	port := GetEnvDefault("DB_PORT", "5432")
	sslmode := GetEnvDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode)
}

func connect() {
	gormDB, err := gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		dbErr = fmt.Errorf("fail to connect to db: %w", err)
		return
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		dbErr = err
		return
	}

	maxOpen, _ := strconv.Atoi(GetEnvDefault("DB_MAX_OPEN_CONNS", "25"))
	maxIdle, _ := strconv.Atoi(GetEnvDefault("DB_MAX_IDLE_CONNS", "5"))
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	log.Println("Successfully connected to db")
}

// DB trả về pool kết nối, khởi tạo ở lần gọi đầu tiên
func DB() (*gorm.DB, error) {
	dbOnce.Do(connect)
	return db, dbErr
}

// CloseDB đóng pool, gọi từ shutdown hook của main
func CloseDB() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
