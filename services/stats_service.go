package services

import (
	"time"

	"arabella/dto"
	"arabella/models"

	"gorm.io/gorm"
)

// StatsService tổng hợp số liệu cho dashboard admin
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// DashboardStats đếm tổng số phòng, booking, user và doanh thu từ các
// booking đã thanh toán chưa bị hủy
func (s *StatsService) DashboardStats() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{GeneratedAt: time.Now()}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.RoomType{}).Count(&stats.TotalRooms).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	if err := s.db.Model(&models.Booking{}).
		Where("payment_status = ? AND status <> ?", models.PaymentStatusPaid, models.BookingStatusCancelled).
		Select("SUM(total_price)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	return stats, nil
}
