package dto

import "time"

// InitiateBookingRequest là yêu cầu báo giá + tạo order thanh toán.
// Chưa giữ phòng, chưa ghi gì vào DB.
type InitiateBookingRequest struct {
	RoomTypeID uint     `json:"roomTypeId" binding:"required"`
	RatePlanID uint     `json:"ratePlanId" binding:"required"`
	CheckIn    string   `json:"checkIn" binding:"required"`
	CheckOut   string   `json:"checkOut" binding:"required"`
	Adults     int      `json:"adults" binding:"required"`
	Children   int      `json:"children"`
	Addons     []string `json:"addons"`
}

// PriceBreakdown là bảng giá chi tiết trả về cho client
type PriceBreakdown struct {
	Nights            int     `json:"nights"`
	BaseRatePerNight  float64 `json:"baseRatePerNight"`
	NightlyRate       float64 `json:"nightlyRate"`
	AmenitiesPerNight float64 `json:"amenitiesPerNight"`
	RoomTotal         float64 `json:"roomTotal"`
	AmenitiesCost     float64 `json:"amenitiesCost"`
	CityTax           float64 `json:"cityTax"`
	Discount          float64 `json:"discount"`
	FinalTotal        float64 `json:"finalTotal"`
}

// InitiateBookingResponse gồm order handle của cổng thanh toán và bảng giá
type InitiateBookingResponse struct {
	OrderID   string         `json:"orderId"`
	Amount    float64        `json:"amount"`
	Currency  string         `json:"currency"`
	KeyID     string         `json:"keyId"`
	Breakdown PriceBreakdown `json:"breakdown"`
}

// GuestDetails thông tin khách khi xác nhận booking
type GuestDetails struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// BookingDetails phòng/ngày/số khách đã chọn
type BookingDetails struct {
	RoomTypeID uint     `json:"roomTypeId" binding:"required"`
	RatePlanID uint     `json:"ratePlanId" binding:"required"`
	CheckIn    string   `json:"checkIn" binding:"required"`
	CheckOut   string   `json:"checkOut" binding:"required"`
	Adults     int      `json:"adults" binding:"required"`
	Children   int      `json:"children"`
	Addons     []string `json:"addons"`
}

// Financials bảng giá đã chốt từ bước initiate
type Financials struct {
	BaseRatePerNight float64 `json:"baseRatePerNight"`
	RoomTotal        float64 `json:"roomTotal"`
	AmenitiesCost    float64 `json:"amenitiesCost"`
	CityTax          float64 `json:"cityTax"`
	Discount         float64 `json:"discount"`
	FinalTotal       float64 `json:"finalTotal"`
}

// ConfirmBookingRequest xác nhận thanh toán và ghi booking
type ConfirmBookingRequest struct {
	OrderID   string         `json:"orderId" binding:"required"`
	PaymentID string         `json:"paymentId" binding:"required"`
	Signature string         `json:"signature" binding:"required"`
	Guest     GuestDetails   `json:"guestDetails" binding:"required"`
	Booking   BookingDetails `json:"bookingDetails" binding:"required"`
	Financial Financials     `json:"financials" binding:"required"`
}

// BookingStatusUpdateRequest admin đổi trạng thái booking
type BookingStatusUpdateRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentStatus *string `json:"paymentStatus"`
}

// ManualNotificationRequest admin gửi thông báo tùy ý cho khách
type ManualNotificationRequest struct {
	Message string `json:"message" binding:"required"`
	Channel string `json:"channel"`
}

// BookingResponse bản ghi booking trả về cho admin/invoice
type BookingResponse struct {
	ID            uint      `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	RoomName      string    `json:"roomName"`
	RateName      string    `json:"rateName"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`

	BaseRatePerNight float64 `json:"baseRatePerNight"`
	RoomPriceTotal   float64 `json:"roomPriceTotal"`
	AmenitiesCost    float64 `json:"amenitiesCost"`
	CityTax          float64 `json:"cityTax"`
	Discount         float64 `json:"discount"`
	TotalPrice       float64 `json:"totalPrice"`

	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
