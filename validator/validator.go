package validator

import (
	"regexp"
	"time"

	"arabella/dto"
	"arabella/errors"
)

// DateLayout là định dạng ngày dùng trên toàn API
const DateLayout = "2006-01-02"

// ParseStayRange parse và kiểm tra khoảng lưu trú [checkIn, checkOut).
// checkOut phải sau checkIn; khoảng bằng nhau hoặc ngược bị từ chối.
func ParseStayRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	if checkInStr == "" || checkOutStr == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Thiếu ngày nhận hoặc trả phòng", nil)
	}

	checkIn, err := time.Parse(DateLayout, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOut, err := time.Parse(DateLayout, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDates, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateParty kiểm tra số khách
func ValidateParty(adults, children int) error {
	if adults < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidParty, "Phải có ít nhất 1 người lớn", nil)
	}
	if children < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidParty, "Số trẻ em không được âm", nil)
	}
	return nil
}

// ValidateCreateRoom kiểm tra yêu cầu tạo loại phòng
func ValidateCreateRoom(req *dto.CreateRoomRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if req.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}
	if req.DiscountPercentage < 0 || req.DiscountPercentage > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}
	if req.TotalStock < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng phòng không được âm", nil)
	}
	if req.BaseCapacity < 1 || req.MaxAdults < 1 || req.MaxOccupancy < 1 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phòng không hợp lệ", nil)
	}
	if req.BaseCapacity > req.MaxOccupancy {
		return errors.NewAppError(errors.ErrCodeValidation, "baseCapacity không được vượt quá maxOccupancy", nil)
	}
	if req.MaxChildren < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số trẻ em tối đa không được âm", nil)
	}
	for _, a := range req.Amenities {
		if a.Name == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên tiện nghi không được để trống", nil)
		}
		if a.Price < 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Giá tiện nghi không được âm", nil)
		}
	}
	return nil
}

// ValidateUpdateRoom kiểm tra yêu cầu cập nhật loại phòng
func ValidateUpdateRoom(req *dto.UpdateRoomRequest) error {
	if req.DiscountPercentage != nil && (*req.DiscountPercentage < 0 || *req.DiscountPercentage > 100) {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}
	if req.BasePrice != nil && *req.BasePrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}
	if req.TotalStock != nil && *req.TotalStock < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số lượng phòng không được âm", nil)
	}
	if req.Images != nil {
		if err := ValidateImageUpdate(req.Images); err != nil {
			return err
		}
	}
	return nil
}

// ValidateImageUpdate chỉ chấp nhận chỉ thị rõ ràng, không đoán định dạng
func ValidateImageUpdate(img *dto.ImageUpdate) error {
	switch img.Mode {
	case dto.ImageModeReplace, dto.ImageModeAppend:
		if len(img.URLs) == 0 {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Danh sách ảnh không được để trống với chế độ "+img.Mode, nil)
		}
	case dto.ImageModeNone:
		if len(img.URLs) > 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "Chế độ none không được kèm danh sách ảnh", nil)
		}
	default:
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Chế độ cập nhật ảnh không hợp lệ: "+img.Mode, nil)
	}
	return nil
}

// ValidateRatePlan kiểm tra gói giá
func ValidateRatePlan(req *dto.CreateRatePlanRequest) error {
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên gói giá không được để trống", nil)
	}
	return nil
}

// ValidateGuest kiểm tra thông tin khách khi xác nhận booking
func ValidateGuest(g *dto.GuestDetails) error {
	if g.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if g.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email khách không được để trống", nil)
	}
	if !isValidEmail(g.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email khách không hợp lệ", nil)
	}
	if g.Phone != "" && !isValidPhone(g.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại khách không hợp lệ", nil)
	}
	return nil
}

// ValidateBookingStatus kiểm tra trạng thái admin gửi lên
func ValidateBookingStatus(status string) error {
	switch status {
	case "Confirmed", "Cancelled", "CheckedIn":
		return nil
	}
	return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái booking không hợp lệ: "+status, nil)
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ (cho phép mã quốc gia)
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	return phoneRegex.MatchString(phone)
}
