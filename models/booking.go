package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Trạng thái thanh toán
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// Trạng thái booking
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"
	BookingStatusCheckedIn = "CheckedIn"
)

// Booking là bản ghi đặt phòng, chỉ được tạo sau khi xác minh thanh toán
// thành công. Các trường tài chính bất biến sau khi tạo; chỉ Status và
// PaymentStatus được phép thay đổi qua thao tác admin.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	InvoiceNumber string    `json:"invoiceNumber" gorm:"unique;size:20"`
	RoomTypeID    uint      `json:"roomTypeId" gorm:"index"`
	RoomType      RoomType  `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
	RatePlanID    uint      `json:"ratePlanId"`
	RatePlan      RatePlan  `json:"ratePlan,omitempty" gorm:"foreignKey:RatePlanID"`
	GuestName     string    `json:"guestName"`
	GuestEmail    string    `json:"guestEmail"`
	GuestPhone    string    `json:"guestPhone,omitempty"`
	GuestAddress  string    `json:"guestAddress,omitempty"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Nights        int       `json:"nights"`
	Adults        int       `json:"adults" gorm:"default:1"`
	Children      int       `json:"children" gorm:"default:0"`

	Addons json.RawMessage `json:"addons,omitempty" gorm:"type:json"`

	// Giá đã chốt tại thời điểm xác nhận
	BaseRatePerNight float64 `json:"baseRatePerNight"`
	RoomPriceTotal   float64 `json:"roomPriceTotal"`
	AmenitiesCost    float64 `json:"amenitiesCost"`
	CityTax          float64 `json:"cityTax"`
	Discount         float64 `json:"discount"`
	TotalPrice       float64 `json:"totalPrice"`

	PaymentStatus  string `json:"paymentStatus" gorm:"size:16;default:Pending"`
	Status         string `json:"status" gorm:"size:16;default:Confirmed"`
	PaymentOrderID string `json:"paymentOrderId,omitempty" gorm:"size:64"`
	PaymentID      string `json:"paymentId,omitempty" gorm:"size:64"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// OverlapsRange kiểm tra giao nhau theo khoảng nửa mở [CheckIn, CheckOut).
// Ngày trả phòng trùng ngày nhận phòng của booking khác không tính là giao.
func (b *Booking) OverlapsRange(from, to time.Time) bool {
	return b.CheckIn.Before(to) && b.CheckOut.After(from)
}

func (b *Booking) ValidateStatus() error {
	switch b.Status {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCheckedIn:
	default:
		return fmt.Errorf("invalid status: %q", b.Status)
	}
	switch b.PaymentStatus {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
	default:
		return fmt.Errorf("invalid payment status: %q", b.PaymentStatus)
	}
	return nil
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.InvoiceNumber == "" {
		b.InvoiceNumber = fmt.Sprintf("ARA-%05dX", 10000+time.Now().UnixNano()%90000)
	}

	var count int64
	if err := tx.Model(&Booking{}).Where("invoice_number = ?", b.InvoiceNumber).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("invoice number %s đã tồn tại, hãy thử lại", b.InvoiceNumber)
	}
	return b.ValidateStatus()
}
