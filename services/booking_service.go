package services

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"arabella/builders"
	"arabella/dto"
	"arabella/errors"
	"arabella/models"
	"arabella/services/logger"
	"arabella/services/notification"
	"arabella/validator"

	"gorm.io/gorm"
)

// BookingService điều phối hai bước đặt phòng: initiate báo giá + tạo
// order thanh toán (không ghi DB), confirm xác minh chữ ký rồi mới ghi
// booking. Giữa hai bước không có inventory hold.
type BookingService struct {
	db         *gorm.DB
	gateway    PaymentGateway
	pricing    *StayPricing
	dispatcher *notification.Dispatcher
	log        logger.Logger
}

func NewBookingService(db *gorm.DB, gateway PaymentGateway, pricing *StayPricing, dispatcher *notification.Dispatcher, log logger.Logger) *BookingService {
	return &BookingService{
		db:         db,
		gateway:    gateway,
		pricing:    pricing,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (s *BookingService) loadRoomAndRate(roomTypeID, ratePlanID uint) (*models.RoomType, *models.RatePlan, error) {
	var room models.RoomType
	if err := s.db.First(&room, roomTypeID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy loại phòng", errors.ErrRoomNotFound)
		}
		return nil, nil, err
	}

	var plan models.RatePlan
	if err := s.db.Where("id = ? AND room_type_id = ?", ratePlanID, roomTypeID).First(&plan).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NewAppError(errors.ErrCodeRateNotFound, "Không tìm thấy gói giá cho loại phòng này", errors.ErrRateNotFound)
		}
		return nil, nil, err
	}

	return &room, &plan, nil
}

// Initiate báo giá và tạo order trên cổng thanh toán. Không ghi gì vào
// DB: order bị bỏ rơi sẽ tự hết hạn phía cổng thanh toán.
func (s *BookingService) Initiate(req *dto.InitiateBookingRequest) (*dto.InitiateBookingResponse, error) {
	checkIn, checkOut, err := validator.ParseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateParty(req.Adults, req.Children); err != nil {
		return nil, err
	}

	room, plan, err := s.loadRoomAndRate(req.RoomTypeID, req.RatePlanID)
	if err != nil {
		return nil, err
	}

	nights := Nights(checkIn, checkOut)
	quote := s.pricing.Price(QuoteInput{
		Room:     room,
		Plan:     plan,
		Adults:   req.Adults,
		Children: req.Children,
		Addons:   req.Addons,
		Nights:   nights,
	})

	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "INR"
	}

	// Cổng thanh toán nhận số tiền theo đơn vị nhỏ nhất
	amountMinor := int64(quote.GrandTotal * 100)
	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())

	orderID, err := s.gateway.CreateOrder(amountMinor, currency, receipt)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodePaymentGateway, "Không tạo được order thanh toán", err)
	}

	return &dto.InitiateBookingResponse{
		OrderID:  orderID,
		Amount:   quote.GrandTotal,
		Currency: currency,
		KeyID:    s.gateway.KeyID(),
		Breakdown: dto.PriceBreakdown{
			Nights:            quote.Nights,
			BaseRatePerNight:  quote.EffectiveBase,
			NightlyRate:       quote.NightlyRate,
			AmenitiesPerNight: quote.AmenitiesPerNight,
			RoomTotal:         quote.RoomTotal,
			AmenitiesCost:     quote.AmenitiesCost,
			CityTax:           quote.CityTax,
			Discount:          quote.Discount,
			FinalTotal:        quote.GrandTotal,
		},
	}, nil
}

// Confirm xác minh chữ ký thanh toán rồi mới ghi booking. Chữ ký sai
// thì dừng ngay, không ghi gì. Thông báo cho khách chạy nền, không bao
// giờ làm fail response.
func (s *BookingService) Confirm(req *dto.ConfirmBookingRequest) (*models.Booking, error) {
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidSignature, "Chữ ký thanh toán không hợp lệ", errors.ErrInvalidSignature)
	}

	if err := validator.ValidateGuest(&req.Guest); err != nil {
		return nil, err
	}
	checkIn, checkOut, err := validator.ParseStayRange(req.Booking.CheckIn, req.Booking.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateParty(req.Booking.Adults, req.Booking.Children); err != nil {
		return nil, err
	}

	room, plan, err := s.loadRoomAndRate(req.Booking.RoomTypeID, req.Booking.RatePlanID)
	if err != nil {
		return nil, err
	}

	nights := Nights(checkIn, checkOut)
	booking := builders.NewBookingBuilder().
		WithRoom(room.ID, plan.ID).
		WithGuest(req.Guest.FirstName, req.Guest.LastName, req.Guest.Email, req.Guest.Phone, req.Guest.Address).
		WithStay(checkIn, checkOut, nights, req.Booking.Adults, req.Booking.Children).
		WithAddons(req.Booking.Addons).
		WithFinancials(req.Financial.BaseRatePerNight, req.Financial.RoomTotal,
			req.Financial.AmenitiesCost, req.Financial.CityTax,
			req.Financial.Discount, req.Financial.FinalTotal).
		WithPayment(req.OrderID, req.PaymentID, models.PaymentStatusPaid).
		WithStatus(models.BookingStatusConfirmed).
		Build()

	if err := s.db.Create(booking).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không lưu được booking", err)
	}

	booking.RoomType = *room
	booking.RatePlan = *plan

	if s.dispatcher != nil {
		go s.dispatcher.BookingConfirmed(booking)
	}

	return booking, nil
}

// FindByID lấy booking kèm loại phòng và gói giá
func (s *BookingService) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("RoomType").Preload("RatePlan").First(&booking, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy booking", errors.ErrBookingNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus đổi trạng thái booking, chỉ thông báo khi trạng thái
// thực sự thay đổi
func (s *BookingService) UpdateStatus(id uint, status string, paymentStatus *string) (*models.Booking, bool, error) {
	if err := validator.ValidateBookingStatus(status); err != nil {
		return nil, false, err
	}

	booking, err := s.FindByID(id)
	if err != nil {
		return nil, false, err
	}

	changed := booking.Status != status
	booking.Status = status
	if paymentStatus != nil {
		booking.PaymentStatus = *paymentStatus
	}
	if err := booking.ValidateStatus(); err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	if err := s.db.Model(&models.Booking{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         booking.Status,
			"payment_status": booking.PaymentStatus,
		}).Error; err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được booking", err)
	}

	if changed && s.dispatcher != nil {
		go s.dispatcher.StatusChanged(booking)
	}

	return booking, changed, nil
}

// ToResponse map booking sang DTO trả về cho admin/invoice
func ToBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:            b.ID,
		InvoiceNumber: b.InvoiceNumber,
		RoomName:      b.RoomType.Name,
		RateName:      b.RatePlan.Name,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		GuestPhone:    b.GuestPhone,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        b.Nights,
		Adults:        b.Adults,
		Children:      b.Children,

		BaseRatePerNight: b.BaseRatePerNight,
		RoomPriceTotal:   b.RoomPriceTotal,
		AmenitiesCost:    b.AmenitiesCost,
		CityTax:          b.CityTax,
		Discount:         b.Discount,
		TotalPrice:       b.TotalPrice,

		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
