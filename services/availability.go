package services

import (
	"math"
	"time"

	"arabella/models"

	"gorm.io/gorm"
)

// RoomAvailability là một loại phòng còn trống và số phòng còn lại
type RoomAvailability struct {
	Room      models.RoomType
	Remaining int
}

// AvailabilityService trả lời câu hỏi "còn phòng loại nào trong khoảng
// ngày này". Chỉ là snapshot tại thời điểm hỏi, không giữ phòng: hai
// request đồng thời có thể cùng thấy phòng trống.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// Nights tính số đêm của khoảng [checkIn, checkOut), tối thiểu 1
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// FindAvailable lọc loại phòng theo sức chứa rồi đếm booking trùng ngày.
// Caller phải validate checkOut > checkIn trước khi gọi.
func (s *AvailabilityService) FindAvailable(checkIn, checkOut time.Time, adults, children int) ([]RoomAvailability, error) {
	totalGuests := adults + children

	var rooms []models.RoomType
	if err := s.db.
		Preload("RatePlans").
		Where("max_occupancy >= ? AND max_adults >= ?", totalGuests, adults).
		Order("base_price ASC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []RoomAvailability{}, nil
	}

	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}

	// Overlap nửa mở: existing.checkIn < checkOut AND existing.checkOut > checkIn
	var bookings []models.Booking
	if err := s.db.
		Where("room_type_id IN ? AND status <> ? AND check_in < ? AND check_out > ?",
			ids, models.BookingStatusCancelled, checkOut, checkIn).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return AvailableRooms(rooms, bookings, checkIn, checkOut), nil
}

// AvailableRooms đếm booking trùng ngày cho từng loại phòng và loại các
// phòng đã hết. bookings đã được lọc status != Cancelled từ trước.
func AvailableRooms(rooms []models.RoomType, bookings []models.Booking, checkIn, checkOut time.Time) []RoomAvailability {
	overlaps := make(map[uint]int, len(rooms))
	for i := range bookings {
		if bookings[i].Status == models.BookingStatusCancelled {
			continue
		}
		if bookings[i].OverlapsRange(checkIn, checkOut) {
			overlaps[bookings[i].RoomTypeID]++
		}
	}

	out := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		remaining := room.TotalStock - overlaps[room.ID]
		if remaining > 0 {
			out = append(out, RoomAvailability{Room: room, Remaining: remaining})
		}
	}
	return out
}
