package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"arabella/config"
	"arabella/dto"
	"arabella/errors"
	"arabella/models"
	"arabella/response"
	"arabella/services"
	"arabella/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// BookingController phục vụ luồng đặt phòng hai bước của khách và danh
// sách booking cho nhân viên
type BookingController struct {
	db       *gorm.DB
	rdb      *redis.Client
	bookings *services.BookingService
	log      logger.Logger
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, bookings *services.BookingService, log logger.Logger) *BookingController {
	return &BookingController{
		db:       db,
		rdb:      rdb,
		bookings: bookings,
		log:      log,
	}
}

// respondAppError map AppError sang HTTP status tương ứng
func respondAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeRoomNotFound, errors.ErrCodeRateNotFound, errors.ErrCodeBookingNotFound, errors.ErrCodeUserNotFound:
		response.NotFound(c)
	case errors.ErrCodeInvalidSignature:
		response.Error(c, 0, appErr.Message)
	case errors.ErrCodeConflict, errors.ErrCodeRoomNameTaken:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDates, errors.ErrCodeInvalidParty:
		response.ValidationError(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.ServerError(c)
	}
}

// InitiateBooking báo giá và tạo order thanh toán, chưa ghi gì vào DB
func (ctrl *BookingController) InitiateBooking(c *gin.Context) {
	var req dto.InitiateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := ctrl.bookings.Initiate(&req)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodePaymentGateway {
			ctrl.log.Error("Lỗi cổng thanh toán khi initiate: %v", err)
			response.ServerError(c)
			return
		}
		respondAppError(c, err)
		return
	}

	response.Success(c, result)
}

// ConfirmBooking xác minh chữ ký thanh toán rồi ghi booking. Chữ ký sai
// trả về lỗi ngay, không lưu gì.
func (ctrl *BookingController) ConfirmBooking(c *gin.Context) {
	var req dto.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.bookings.Confirm(&req)
	if err != nil {
		respondAppError(c, err)
		return
	}

	// Booking mới tạo làm danh sách cache cũ lỗi thời
	ctrl.invalidateBookingCache()

	response.Created(c, services.ToBookingResponse(booking))
}

// GetBookingInvoice lấy hóa đơn của một booking theo id
func (ctrl *BookingController) GetBookingInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := ctrl.bookings.FindByID(uint(id))
	if err != nil {
		respondAppError(c, err)
		return
	}

	response.Success(c, services.ToBookingResponse(booking))
}

// GetBookings lấy danh sách booking cho nhân viên, lọc trong bộ nhớ và
// phân trang sau khi lọc. Cache Redis toàn bộ danh sách, lọc trên cache.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	statusFilter := c.Query("status")
	paymentFilter := c.Query("paymentStatus")
	guestFilter := c.Query("guest")
	invoiceFilter := c.Query("invoice")

	var allBookings []models.Booking

	// Lấy từ cache trước, lọc và phân trang trên bản cache
	cacheHit := false
	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyBookingsAll, &allBookings); err == nil && len(allBookings) > 0 {
			cacheHit = true
		}
	}

	if !cacheHit {
		if err := ctrl.db.Preload("RoomType").Preload("RatePlan").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if ctrl.rdb != nil {
			if err := services.SetToRedis(config.Ctx, ctrl.rdb, services.CacheKeyBookingsAll, allBookings, 5*time.Minute); err != nil {
				ctrl.log.Error("Lỗi khi lưu danh sách booking vào Redis: %v", err)
			}
		}
	}

	filtered := make([]models.Booking, 0, len(allBookings))
	for i := range allBookings {
		b := allBookings[i]
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		if paymentFilter != "" && b.PaymentStatus != paymentFilter {
			continue
		}
		if guestFilter != "" && !strings.Contains(strings.ToLower(b.GuestName), strings.ToLower(guestFilter)) {
			continue
		}
		if invoiceFilter != "" && !strings.Contains(strings.ToLower(b.InvoiceNumber), strings.ToLower(invoiceFilter)) {
			continue
		}
		filtered = append(filtered, b)
	}

	// Mới cập nhật lên đầu
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	total := len(filtered)
	start := page * limit
	end := start + limit
	if start >= total {
		filtered = []models.Booking{}
	} else {
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	results := make([]dto.BookingResponse, 0, len(filtered))
	for i := range filtered {
		results = append(results, services.ToBookingResponse(&filtered[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

func (ctrl *BookingController) invalidateBookingCache() {
	if ctrl.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyBookingsAll); err != nil {
		ctrl.log.Error("Lỗi khi xóa cache booking: %v", err)
	}
}
