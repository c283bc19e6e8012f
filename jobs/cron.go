package jobs

import (
	"fmt"
	"log"
	"time"

	"arabella/config"
	"arabella/services"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody, stats *services.StatsService, rdb *redis.Client) error {
	// Cron job chạy lúc 0h mỗi ngày: tính lại thống kê, broadcast cho
	// dashboard và xóa cache danh sách đã cũ
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang chạy tổng hợp thống kê hằng ngày lúc: %v", now)

		result, err := stats.DashboardStats()
		if err != nil {
			log.Printf("Lỗi khi tính thống kê hằng ngày: %v", err)
			return
		}

		if m != nil {
			msg := fmt.Sprintf("📊 Thống kê ngày %s: %d booking, doanh thu %.2f",
				now.Format("2006-01-02"), result.TotalBookings, result.TotalRevenue)
			if err := m.Broadcast([]byte(msg)); err != nil {
				log.Printf("Lỗi khi broadcast thống kê: %v", err)
			}
		}

		if rdb != nil {
			if err := services.DeleteKeysByPattern(config.Ctx, rdb, "bookings:*"); err != nil {
				log.Printf("Lỗi khi xóa cache booking: %v", err)
			}
			if err := services.DeleteKeysByPattern(config.Ctx, rdb, "rooms:*"); err != nil {
				log.Printf("Lỗi khi xóa cache phòng: %v", err)
			}
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
