package controllers

import (
	stderrors "errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"arabella/config"
	"arabella/dto"
	"arabella/errors"
	"arabella/models"
	"arabella/response"
	"arabella/services"
	"arabella/services/logger"
	"arabella/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// RoomController phục vụ catalog phòng công khai và tìm phòng trống
type RoomController struct {
	db           *gorm.DB
	rdb          *redis.Client
	availability *services.AvailabilityService
	pricing      *services.StayPricing
	log          logger.Logger
}

func NewRoomController(db *gorm.DB, rdb *redis.Client, availability *services.AvailabilityService, pricing *services.StayPricing, log logger.Logger) *RoomController {
	return &RoomController{
		db:           db,
		rdb:          rdb,
		availability: availability,
		pricing:      pricing,
		log:          log,
	}
}

// GetAllRooms lấy danh sách loại phòng kèm gói giá, có cache Redis
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.RoomType

	// Lấy từ cache trước
	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.CacheKeyRoomsAll, &rooms); err == nil && len(rooms) > 0 {
			response.SuccessWithTotal(c, rooms, len(rooms))
			return
		}
	}

	if err := ctrl.db.Preload("RatePlans").Order("base_price ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, services.CacheKeyRoomsAll, rooms, 10*time.Minute); err != nil {
			ctrl.log.Error("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
		}
	}

	response.SuccessWithTotal(c, rooms, len(rooms))
}

// GetRoomDetail lấy chi tiết một loại phòng kèm gói giá
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
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

	response.Success(c, room)
}

// SearchRooms tìm loại phòng còn trống trong khoảng ngày, trả về từng
// phòng kèm các lựa chọn giá đã tính đủ thuế và giảm giá
func (ctrl *RoomController) SearchRooms(c *gin.Context) {
	checkInStr := c.Query("checkIn")
	checkOutStr := c.Query("checkOut")
	adults, _ := strconv.Atoi(c.DefaultQuery("adults", "1"))
	children, _ := strconv.Atoi(c.DefaultQuery("children", "0"))

	checkIn, checkOut, err := validator.ParseStayRange(checkInStr, checkOutStr)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ValidationError(c, "Khoảng ngày không hợp lệ")
		return
	}
	if adults < 1 {
		response.ValidationError(c, "Phải có ít nhất 1 người lớn")
		return
	}
	if children < 0 {
		response.ValidationError(c, "Số trẻ em không được âm")
		return
	}

	available, err := ctrl.availability.FindAvailable(checkIn, checkOut, adults, children)
	if err != nil {
		ctrl.log.Error("Lỗi khi tìm phòng trống: %v", err)
		response.ServerError(c)
		return
	}

	nights := services.Nights(checkIn, checkOut)
	results := make([]dto.RoomSearchResult, 0, len(available))
	for i := range available {
		room := available[i].Room

		options := make([]dto.RateOption, 0, len(room.RatePlans))
		for j := range room.RatePlans {
			plan := room.RatePlans[j]
			quote := ctrl.pricing.Price(services.QuoteInput{
				Room:     &room,
				Plan:     &plan,
				Adults:   adults,
				Children: children,
				Nights:   nights,
			})
			options = append(options, dto.RateOption{
				ID:            plan.ID,
				Name:          plan.Name,
				Breakfast:     plan.IncludesBreakfast,
				Refundable:    plan.IsRefundable,
				PricePerNight: quote.NightlyRate,
				RoomTotal:     quote.RoomTotal,
				CityTax:       quote.CityTax,
				Discount:      quote.Discount,
				TotalPrice:    quote.GrandTotal,
			})
		}

		results = append(results, dto.RoomSearchResult{
			ID:             room.ID,
			Name:           room.Name,
			Description:    room.Description,
			Images:         room.Images,
			SizeSqm:        room.SizeSqm,
			BasePrice:      room.BasePrice,
			BaseCapacity:   room.BaseCapacity,
			MaxOccupancy:   room.MaxOccupancy,
			Amenities:      room.Amenities,
			AvailableCount: available[i].Remaining,
			Nights:         nights,
			RateOptions:    options,
		})
	}

	response.SuccessWithTotal(c, results, len(results))
}

// SuggestRooms gợi ý loại phòng theo từ khóa tự do: khớp gần đúng tên
// phòng và tiện nghi, chấm điểm song song rồi sắp theo điểm giảm dần
func (ctrl *RoomController) SuggestRooms(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	var rooms []models.RoomType
	if err := ctrl.db.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmNames := createMatcher(prepareNameList(rooms))
	suggestions := scoreRooms(query, rooms, cmNames)

	response.SuccessWithTotal(c, suggestions, len(suggestions))
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareNameList(rooms []models.RoomType) []string {
	names := make([]string, 0, len(rooms))
	for i := range rooms {
		names = append(names, normalizeInput(rooms[i].Name))
	}
	return names
}

// Tính điểm phù hợp cho một loại phòng
func calculateRoomScore(query string, room *models.RoomType, cmNames *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	normalizedName := normalizeInput(room.Name)
	score := 0

	if cmNames.Closest(normalizedQuery) == normalizedName {
		score += 20
	}
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 15
	}
	if similarity := calculateSimilarity(normalizedQuery, normalizedName); similarity > 0.5 {
		score += int(similarity * 10)
	}

	maxAmenityScore := 12
	amenityScore := 0
	for i := range room.Amenities {
		normalizedAmenity := normalizeInput(room.Amenities[i].Name)
		similarity := calculateSimilarity(normalizedQuery, normalizedAmenity)
		if similarity > 0.7 || strings.Contains(normalizedQuery, normalizedAmenity) {
			amenityScore += 4
			if amenityScore >= maxAmenityScore {
				break
			}
		}
	}
	score += amenityScore

	return score
}

func scoreRooms(query string, rooms []models.RoomType, cmNames *closestmatch.ClosestMatch) []dto.RoomSuggestion {
	scoreCh := make(chan dto.RoomSuggestion, len(rooms))
	var wg sync.WaitGroup

	for i := range rooms {
		wg.Add(1)
		go func(room models.RoomType) {
			defer wg.Done()
			score := calculateRoomScore(query, &room, cmNames)
			if score > 0 {
				scoreCh <- dto.RoomSuggestion{
					ID:    room.ID,
					Name:  room.Name,
					Score: score,
				}
			}
		}(rooms[i])
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	suggestions := make([]dto.RoomSuggestion, 0, len(rooms))
	for s := range scoreCh {
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}
