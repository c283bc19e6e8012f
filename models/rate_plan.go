package models

import (
	"time"
)

// RatePlan là một gói giá gắn với đúng một RoomType (vd: "Non Refundable -
// Pay Now", "Breakfast Included"). Giá mỗi đêm = giá gốc đã giảm nhân
// PriceMultiplier cộng FlatPremium, sau đó cộng phụ thu khách vượt chuẩn.
type RatePlan struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	RoomTypeID         uint      `json:"roomTypeId" gorm:"index"`
	Name               string    `json:"name"`
	PriceMultiplier    float64   `json:"priceMultiplier" gorm:"default:1.0"`
	FlatPremium        float64   `json:"flatPremium"`
	ExtraAdultCharge   float64   `json:"extraAdultCharge"`
	ExtraChildCharge   float64   `json:"extraChildCharge"`
	IsRefundable       bool      `json:"isRefundable"`
	IncludesBreakfast  bool      `json:"includesBreakfast"`
	CancellationPolicy string    `json:"cancellationPolicy" gorm:"default:Non-refundable"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DefaultRatePlans là hai gói giá tạo tự động khi admin tạo phòng mới,
// tạo cùng transaction với phòng.
func DefaultRatePlans(roomTypeID uint) []RatePlan {
	return []RatePlan{
		{
			RoomTypeID:      roomTypeID,
			Name:            "Non Refundable - Pay Now",
			PriceMultiplier: 0.9,
			IsRefundable:    false,
		},
		{
			RoomTypeID:         roomTypeID,
			Name:               "Breakfast Included",
			PriceMultiplier:    1.0,
			FlatPremium:        30,
			IncludesBreakfast:  true,
			IsRefundable:       true,
			CancellationPolicy: "Free cancellation up to 48h before check-in",
		},
	}
}
