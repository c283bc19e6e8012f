package services

import (
	"testing"

	"arabella/dto"
	"arabella/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway đếm số lần gọi để kiểm tra thứ tự xác minh
type fakeGateway struct {
	verifyResult bool
	orderCalls   int
}

func (f *fakeGateway) CreateOrder(amountMinor int64, currency, receipt string) (string, error) {
	f.orderCalls++
	return "order_fake", nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return f.verifyResult
}

func (f *fakeGateway) KeyID() string { return "key_fake" }

func confirmRequest() *dto.ConfirmBookingRequest {
	return &dto.ConfirmBookingRequest{
		OrderID:   "order_ABC",
		PaymentID: "pay_XYZ",
		Signature: "deadbeef",
		Guest: dto.GuestDetails{
			FirstName: "Lan",
			LastName:  "Nguyen",
			Email:     "lan@example.com",
		},
		Booking: dto.BookingDetails{
			RoomTypeID: 1,
			RatePlanID: 1,
			CheckIn:    "2026-01-10",
			CheckOut:   "2026-01-12",
			Adults:     2,
		},
		Financial: dto.Financials{FinalTotal: 2350},
	}
}

// Chữ ký sai phải dừng trước khi chạm tới DB: service được dựng với db
// nil, nếu Confirm truy cập DB test sẽ panic.
func TestConfirmRejectsInvalidSignature(t *testing.T) {
	gw := &fakeGateway{verifyResult: false}
	s := NewBookingService(nil, gw, NewStayPricing(), nil, nil)

	booking, err := s.Confirm(confirmRequest())
	require.Error(t, err)
	assert.Nil(t, booking)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidSignature, appErr.Code)
}

func TestConfirmValidatesGuestAfterSignature(t *testing.T) {
	gw := &fakeGateway{verifyResult: true}
	s := NewBookingService(nil, gw, NewStayPricing(), nil, nil)

	req := confirmRequest()
	req.Guest.Email = "not-an-email"

	_, err := s.Confirm(req)
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidFormat, appErr.Code)
}

func TestInitiateRejectsInvalidStayRange(t *testing.T) {
	gw := &fakeGateway{}
	s := NewBookingService(nil, gw, NewStayPricing(), nil, nil)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		code     errors.ErrorCode
	}{
		{"đảo ngược", "2026-01-12", "2026-01-10", errors.ErrCodeInvalidDates},
		{"cùng ngày", "2026-01-10", "2026-01-10", errors.ErrCodeInvalidDates},
		{"sai định dạng", "10/01/2026", "2026-01-12", errors.ErrCodeInvalidFormat},
		{"thiếu ngày", "", "2026-01-12", errors.ErrCodeRequiredField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Initiate(&dto.InitiateBookingRequest{
				RoomTypeID: 1,
				RatePlanID: 1,
				CheckIn:    tt.checkIn,
				CheckOut:   tt.checkOut,
				Adults:     2,
			})
			require.Error(t, err)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Zero(t, gw.orderCalls, "không được tạo order khi request không hợp lệ")
		})
	}
}

func TestInitiateRejectsInvalidParty(t *testing.T) {
	gw := &fakeGateway{}
	s := NewBookingService(nil, gw, NewStayPricing(), nil, nil)

	_, err := s.Initiate(&dto.InitiateBookingRequest{
		RoomTypeID: 1,
		RatePlanID: 1,
		CheckIn:    "2026-01-10",
		CheckOut:   "2026-01-12",
		Adults:     0,
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidParty, appErr.Code)
	assert.Zero(t, gw.orderCalls)
}
