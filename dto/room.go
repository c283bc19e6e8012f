package dto

import (
	"encoding/json"
	"time"
)

// AmenityInput là tiện nghi gửi lên khi admin tạo/cập nhật phòng
type AmenityInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// Chế độ cập nhật ảnh: client phải nói rõ muốn làm gì thay vì để server đoán
const (
	ImageModeReplace = "replace"
	ImageModeAppend  = "append"
	ImageModeNone    = "none"
)

// ImageUpdate mang chỉ thị cập nhật danh sách ảnh của phòng
type ImageUpdate struct {
	Mode string   `json:"mode" binding:"required"`
	URLs []string `json:"urls"`
}

// CreateRoomRequest tạo loại phòng mới
type CreateRoomRequest struct {
	Name               string         `json:"name" binding:"required"`
	Description        string         `json:"description"`
	Images             []string       `json:"images"`
	SizeSqm            int            `json:"sizeSqm"`
	BasePrice          float64        `json:"basePrice" binding:"required"`
	DiscountPercentage float64        `json:"discountPercentage"`
	TotalStock         int            `json:"totalStock" binding:"required"`
	BaseCapacity       int            `json:"baseCapacity" binding:"required"`
	MaxAdults          int            `json:"maxAdults" binding:"required"`
	MaxChildren        int            `json:"maxChildren"`
	MaxOccupancy       int            `json:"maxOccupancy" binding:"required"`
	Amenities          []AmenityInput `json:"amenities"`
}

// UpdateRoomRequest cập nhật loại phòng, field nil là giữ nguyên.
// Ảnh chỉ thay đổi khi có chỉ thị Images đi kèm.
type UpdateRoomRequest struct {
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	SizeSqm            *int            `json:"sizeSqm"`
	BasePrice          *float64        `json:"basePrice"`
	DiscountPercentage *float64        `json:"discountPercentage"`
	TotalStock         *int            `json:"totalStock"`
	BaseCapacity       *int            `json:"baseCapacity"`
	MaxAdults          *int            `json:"maxAdults"`
	MaxChildren        *int            `json:"maxChildren"`
	MaxOccupancy       *int            `json:"maxOccupancy"`
	Amenities          *[]AmenityInput `json:"amenities"`
	Images             *ImageUpdate    `json:"images"`
}

// CreateRatePlanRequest tạo gói giá cho một loại phòng
type CreateRatePlanRequest struct {
	Name               string  `json:"name" binding:"required"`
	PriceMultiplier    float64 `json:"priceMultiplier"`
	FlatPremium        float64 `json:"flatPremium"`
	ExtraAdultCharge   float64 `json:"extraAdultCharge"`
	ExtraChildCharge   float64 `json:"extraChildCharge"`
	IsRefundable       bool    `json:"isRefundable"`
	IncludesBreakfast  bool    `json:"includesBreakfast"`
	CancellationPolicy string  `json:"cancellationPolicy"`
}

// UpdateRatePlanRequest cập nhật gói giá, field nil là giữ nguyên
type UpdateRatePlanRequest struct {
	Name               *string  `json:"name"`
	PriceMultiplier    *float64 `json:"priceMultiplier"`
	FlatPremium        *float64 `json:"flatPremium"`
	ExtraAdultCharge   *float64 `json:"extraAdultCharge"`
	ExtraChildCharge   *float64 `json:"extraChildCharge"`
	IsRefundable       *bool    `json:"isRefundable"`
	IncludesBreakfast  *bool    `json:"includesBreakfast"`
	CancellationPolicy *string  `json:"cancellationPolicy"`
}

// RateOption là một lựa chọn giá cho kết quả tìm phòng
type RateOption struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Breakfast     bool    `json:"breakfast"`
	Refundable    bool    `json:"refundable"`
	PricePerNight float64 `json:"pricePerNight"`
	RoomTotal     float64 `json:"roomTotal"`
	CityTax       float64 `json:"cityTax"`
	Discount      float64 `json:"discount"`
	TotalPrice    float64 `json:"totalPrice"`
}

// RoomSearchResult là một loại phòng còn trống kèm các lựa chọn giá
type RoomSearchResult struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Images         json.RawMessage `json:"images"`
	SizeSqm        int             `json:"sizeSqm"`
	BasePrice      float64         `json:"basePrice"`
	BaseCapacity   int             `json:"baseCapacity"`
	MaxOccupancy   int             `json:"maxOccupancy"`
	Amenities      interface{}     `json:"amenities"`
	AvailableCount int             `json:"availableCount"`
	Nights         int             `json:"nights"`
	RateOptions    []RateOption    `json:"rateOptions"`
}

// RoomSuggestion là một gợi ý khi tìm phòng theo từ khóa
type RoomSuggestion struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// DashboardStats số liệu tổng quan cho admin
type DashboardStats struct {
	TotalUsers    int64     `json:"totalUsers"`
	TotalRooms    int64     `json:"totalRooms"`
	TotalBookings int64     `json:"totalBookings"`
	TotalRevenue  float64   `json:"totalRevenue"`
	GeneratedAt   time.Time `json:"generatedAt"`
}
