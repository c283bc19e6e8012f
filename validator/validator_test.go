package validator

import (
	"testing"

	"arabella/dto"
	"arabella/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStayRange(t *testing.T) {
	checkIn, checkOut, err := ParseStayRange("2026-01-10", "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-10", checkIn.Format(DateLayout))
	assert.Equal(t, "2026-01-15", checkOut.Format(DateLayout))

	_, _, err = ParseStayRange("2026-01-15", "2026-01-10")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidDates, errors.GetAppError(err).Code)

	_, _, err = ParseStayRange("2026-01-10", "2026-01-10")
	require.Error(t, err)

	_, _, err = ParseStayRange("jan 10", "2026-01-15")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}

func TestValidateParty(t *testing.T) {
	assert.NoError(t, ValidateParty(1, 0))
	assert.NoError(t, ValidateParty(2, 3))
	assert.Error(t, ValidateParty(0, 0))
	assert.Error(t, ValidateParty(2, -1))
}

func TestValidateCreateRoom(t *testing.T) {
	valid := func() *dto.CreateRoomRequest {
		return &dto.CreateRoomRequest{
			Name:         "Deluxe Queen",
			BasePrice:    1000,
			TotalStock:   3,
			BaseCapacity: 2,
			MaxAdults:    3,
			MaxOccupancy: 4,
			Amenities:    []dto.AmenityInput{{Name: "Wifi"}},
		}
	}

	assert.NoError(t, ValidateCreateRoom(valid()))

	req := valid()
	req.Name = ""
	assert.Error(t, ValidateCreateRoom(req))

	req = valid()
	req.DiscountPercentage = 101
	assert.Error(t, ValidateCreateRoom(req))

	req = valid()
	req.BaseCapacity = 5
	assert.Error(t, ValidateCreateRoom(req))

	req = valid()
	req.Amenities = []dto.AmenityInput{{Name: "Spa", Price: -5}}
	assert.Error(t, ValidateCreateRoom(req))
}

func TestValidateImageUpdate(t *testing.T) {
	assert.NoError(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeReplace, URLs: []string{"a.jpg"}}))
	assert.NoError(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeAppend, URLs: []string{"b.jpg"}}))
	assert.NoError(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeNone}))

	// replace/append bắt buộc có URL
	assert.Error(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeReplace}))
	assert.Error(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeAppend}))

	// none không được kèm URL
	assert.Error(t, ValidateImageUpdate(&dto.ImageUpdate{Mode: dto.ImageModeNone, URLs: []string{"a.jpg"}}))

	// Chế độ lạ bị từ chối thay vì đoán
	err := ValidateImageUpdate(&dto.ImageUpdate{Mode: "merge", URLs: []string{"a.jpg"}})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}

func TestValidateGuest(t *testing.T) {
	valid := func() *dto.GuestDetails {
		return &dto.GuestDetails{
			FirstName: "Lan",
			Email:     "lan@example.com",
			Phone:     "+84901234567",
		}
	}

	assert.NoError(t, ValidateGuest(valid()))

	g := valid()
	g.FirstName = ""
	assert.Error(t, ValidateGuest(g))

	g = valid()
	g.Email = "lan@"
	assert.Error(t, ValidateGuest(g))

	g = valid()
	g.Phone = "abc"
	assert.Error(t, ValidateGuest(g))

	// Số điện thoại là tùy chọn
	g = valid()
	g.Phone = ""
	assert.NoError(t, ValidateGuest(g))
}

func TestValidateBookingStatus(t *testing.T) {
	assert.NoError(t, ValidateBookingStatus("Confirmed"))
	assert.NoError(t, ValidateBookingStatus("Cancelled"))
	assert.NoError(t, ValidateBookingStatus("CheckedIn"))
	assert.Error(t, ValidateBookingStatus("Paused"))
	assert.Error(t, ValidateBookingStatus(""))
}
