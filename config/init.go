package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var RedisClient *redis.Client

// InitApp dựng router, kết nối các thành phần và trả về melody + cron
// để main wire tiếp.
func InitApp() (*gin.Engine, *gorm.DB, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	gormDB, err := initComponents()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, gormDB, m, c, nil
}

func initComponents() (*gorm.DB, error) {
	LoadEnv()

	gormDB, err := DB()
	if err != nil {
		return nil, err
	}

	if err := ConnectCloudinary(); err != nil {
		return nil, fmt.Errorf("failed to connect to Cloudinary: %v", err)
	}

	RedisClient, err = ConnectRedis()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return gormDB, nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
