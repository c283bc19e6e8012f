package controllers

import (
	"encoding/json"
	stderrors "errors"
	"strconv"

	"arabella/config"
	"arabella/dto"
	"arabella/models"
	"arabella/response"
	"arabella/services"
	"arabella/services/logger"
	"arabella/services/notification"
	"arabella/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// AdminController quản lý catalog phòng, gói giá và booking
type AdminController struct {
	db         *gorm.DB
	rdb        *redis.Client
	bookings   *services.BookingService
	stats      *services.StatsService
	dispatcher *notification.Dispatcher
	log        logger.Logger
}

func NewAdminController(db *gorm.DB, rdb *redis.Client, bookings *services.BookingService, stats *services.StatsService, dispatcher *notification.Dispatcher, log logger.Logger) *AdminController {
	return &AdminController{
		db:         db,
		rdb:        rdb,
		bookings:   bookings,
		stats:      stats,
		dispatcher: dispatcher,
		log:        log,
	}
}

func (ctrl *AdminController) invalidateRoomCache() {
	if ctrl.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyRoomsAll); err != nil {
		ctrl.log.Error("Lỗi khi xóa cache phòng: %v", err)
	}
}

func (ctrl *AdminController) invalidateBookingCache() {
	if ctrl.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyBookingsAll); err != nil {
		ctrl.log.Error("Lỗi khi xóa cache booking: %v", err)
	}
}

// CreateRoom tạo loại phòng mới kèm hai gói giá mặc định trong cùng
// transaction. Trùng tên trả về 409.
func (ctrl *AdminController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateCreateRoom(&req); err != nil {
		respondAppError(c, err)
		return
	}

	amenities := make(models.AmenityList, 0, len(req.Amenities))
	for _, a := range req.Amenities {
		amenities = append(amenities, models.Amenity{Name: a.Name, Price: a.Price})
	}

	images, err := json.Marshal(req.Images)
	if err != nil {
		response.BadRequest(c, "Danh sách ảnh không hợp lệ")
		return
	}

	room := models.RoomType{
		Name:               req.Name,
		Description:        req.Description,
		Images:             images,
		SizeSqm:            req.SizeSqm,
		BasePrice:          req.BasePrice,
		DiscountPercentage: req.DiscountPercentage,
		TotalStock:         req.TotalStock,
		BaseCapacity:       req.BaseCapacity,
		MaxAdults:          req.MaxAdults,
		MaxChildren:        req.MaxChildren,
		MaxOccupancy:       req.MaxOccupancy,
		Amenities:          amenities,
	}

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.RoomType{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		// Phòng mới luôn có sẵn hai gói giá mặc định
		plans := models.DefaultRatePlans(room.ID)
		if err := tx.Create(&plans).Error; err != nil {
			return err
		}
		room.RatePlans = plans
		return nil
	})
	if err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			response.Conflict(c, "Tên phòng đã tồn tại")
			return
		}
		ctrl.log.Error("Lỗi khi tạo phòng: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Created(c, room)
}

// UpdateRoom cập nhật loại phòng. Field không gửi thì giữ nguyên; ảnh
// chỉ thay đổi khi có chỉ thị images rõ ràng (replace/append/none).
func (ctrl *AdminController) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateUpdateRoom(&req); err != nil {
		respondAppError(c, err)
		return
	}

	var room models.RoomType
	if err := ctrl.db.Preload("RatePlans").First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != nil && *req.Name != room.Name {
		var count int64
		if err := ctrl.db.Model(&models.RoomType{}).Where("name = ? AND id <> ?", *req.Name, room.ID).Count(&count).Error; err != nil {
			response.ServerError(c)
			return
		}
		if count > 0 {
			response.Conflict(c, "Tên phòng đã tồn tại")
			return
		}
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.SizeSqm != nil {
		room.SizeSqm = *req.SizeSqm
	}
	if req.BasePrice != nil {
		room.BasePrice = *req.BasePrice
	}
	if req.DiscountPercentage != nil {
		room.DiscountPercentage = *req.DiscountPercentage
	}
	if req.TotalStock != nil {
		room.TotalStock = *req.TotalStock
	}
	if req.BaseCapacity != nil {
		room.BaseCapacity = *req.BaseCapacity
	}
	if req.MaxAdults != nil {
		room.MaxAdults = *req.MaxAdults
	}
	if req.MaxChildren != nil {
		room.MaxChildren = *req.MaxChildren
	}
	if req.MaxOccupancy != nil {
		room.MaxOccupancy = *req.MaxOccupancy
	}
	if req.Amenities != nil {
		amenities := make(models.AmenityList, 0, len(*req.Amenities))
		for _, a := range *req.Amenities {
			amenities = append(amenities, models.Amenity{Name: a.Name, Price: a.Price})
		}
		room.Amenities = amenities
	}

	if req.Images != nil {
		switch req.Images.Mode {
		case dto.ImageModeReplace:
			images, err := json.Marshal(req.Images.URLs)
			if err != nil {
				response.BadRequest(c, "Danh sách ảnh không hợp lệ")
				return
			}
			room.Images = images
		case dto.ImageModeAppend:
			var existing []string
			if len(room.Images) > 0 {
				if err := json.Unmarshal(room.Images, &existing); err != nil {
					response.ServerError(c)
					return
				}
			}
			existing = append(existing, req.Images.URLs...)
			images, err := json.Marshal(existing)
			if err != nil {
				response.BadRequest(c, "Danh sách ảnh không hợp lệ")
				return
			}
			room.Images = images
		case dto.ImageModeNone:
			// Giữ nguyên ảnh hiện tại
		}
	}

	if err := room.ValidateCapacity(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := ctrl.db.Save(&room).Error; err != nil {
		ctrl.log.Error("Lỗi khi cập nhật phòng: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Success(c, room)
}

// DeleteRoom xóa loại phòng và toàn bộ gói giá của nó
func (ctrl *AdminController) DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var room models.RoomType
	if err := ctrl.db.First(&room, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	err = ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", room.ID).Delete(&models.RatePlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		ctrl.log.Error("Lỗi khi xóa phòng: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Success(c, gin.H{"id": room.ID})
}

// CreateRatePlan thêm gói giá cho một loại phòng
func (ctrl *AdminController) CreateRatePlan(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	var req dto.CreateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateRatePlan(&req); err != nil {
		respondAppError(c, err)
		return
	}

	var room models.RoomType
	if err := ctrl.db.First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	multiplier := req.PriceMultiplier
	if multiplier == 0 {
		multiplier = 1.0
	}

	plan := models.RatePlan{
		RoomTypeID:         room.ID,
		Name:               req.Name,
		PriceMultiplier:    multiplier,
		FlatPremium:        req.FlatPremium,
		ExtraAdultCharge:   req.ExtraAdultCharge,
		ExtraChildCharge:   req.ExtraChildCharge,
		IsRefundable:       req.IsRefundable,
		IncludesBreakfast:  req.IncludesBreakfast,
		CancellationPolicy: req.CancellationPolicy,
	}

	if err := ctrl.db.Create(&plan).Error; err != nil {
		ctrl.log.Error("Lỗi khi tạo gói giá: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Created(c, plan)
}

// UpdateRatePlan cập nhật gói giá, kiểm tra gói thuộc đúng phòng
func (ctrl *AdminController) UpdateRatePlan(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}
	planID, err := strconv.Atoi(c.Param("planId"))
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	var req dto.UpdateRatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var plan models.RatePlan
	if err := ctrl.db.Where("id = ? AND room_type_id = ?", planID, roomID).First(&plan).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.PriceMultiplier != nil {
		plan.PriceMultiplier = *req.PriceMultiplier
	}
	if req.FlatPremium != nil {
		plan.FlatPremium = *req.FlatPremium
	}
	if req.ExtraAdultCharge != nil {
		plan.ExtraAdultCharge = *req.ExtraAdultCharge
	}
	if req.ExtraChildCharge != nil {
		plan.ExtraChildCharge = *req.ExtraChildCharge
	}
	if req.IsRefundable != nil {
		plan.IsRefundable = *req.IsRefundable
	}
	if req.IncludesBreakfast != nil {
		plan.IncludesBreakfast = *req.IncludesBreakfast
	}
	if req.CancellationPolicy != nil {
		plan.CancellationPolicy = *req.CancellationPolicy
	}

	if err := ctrl.db.Save(&plan).Error; err != nil {
		ctrl.log.Error("Lỗi khi cập nhật gói giá: %v", err)
		response.ServerError(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Success(c, plan)
}

// DeleteRatePlan xóa một gói giá của phòng
func (ctrl *AdminController) DeleteRatePlan(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}
	planID, err := strconv.Atoi(c.Param("planId"))
	if err != nil {
		response.BadRequest(c, "ID gói giá không hợp lệ")
		return
	}

	result := ctrl.db.Where("id = ? AND room_type_id = ?", planID, roomID).Delete(&models.RatePlan{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	ctrl.invalidateRoomCache()
	response.Success(c, gin.H{"id": planID})
}

// UpdateBookingStatus đổi trạng thái booking, khách được thông báo khi
// trạng thái thực sự thay đổi
func (ctrl *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var req dto.BookingStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, _, err := ctrl.bookings.UpdateStatus(uint(id), req.Status, req.PaymentStatus)
	if err != nil {
		respondAppError(c, err)
		return
	}

	ctrl.invalidateBookingCache()
	response.Success(c, services.ToBookingResponse(booking))
}

// DeleteBooking xóa hẳn một booking
func (ctrl *AdminController) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	result := ctrl.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	ctrl.invalidateBookingCache()
	response.Success(c, gin.H{"id": id})
}

// SendManualNotification gửi thông báo do admin soạn tới khách của một
// booking, qua email, SMS hoặc cả hai
func (ctrl *AdminController) SendManualNotification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	var req dto.ManualNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.bookings.FindByID(uint(id))
	if err != nil {
		respondAppError(c, err)
		return
	}

	if err := ctrl.dispatcher.Manual(booking, req.Message, req.Channel); err != nil {
		ctrl.log.Error("Lỗi khi gửi thông báo thủ công booking %d: %v", booking.ID, err)
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"sent": true})
}

// GetDashboardStats số liệu tổng quan cho dashboard admin
func (ctrl *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ctrl.stats.DashboardStats()
	if err != nil {
		ctrl.log.Error("Lỗi khi tính thống kê dashboard: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}
