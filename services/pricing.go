package services

import (
	"math"
	"strconv"

	"arabella/models"
)

// Thuế thành phố mặc định, cộng cố định theo đêm (không theo phần trăm)
const DefaultCityTaxPerNight = 25

// StayPricing tính giá lưu trú cho một loại phòng + gói giá.
// PerAdultBase bật biến thể tính phụ thu từ người lớn thứ hai trở đi
// (baseline = 1) thay vì theo baseCapacity của phòng.
type StayPricing struct {
	CityTaxPerNight float64
	PerAdultBase    bool
}

func NewStayPricing() *StayPricing {
	return &StayPricing{CityTaxPerNight: DefaultCityTaxPerNight}
}

// QuoteInput là một yêu cầu báo giá đã qua validate
type QuoteInput struct {
	Room     *models.RoomType
	Plan     *models.RatePlan
	Adults   int
	Children int
	Addons   []string
	Nights   int
}

// Quote là bảng giá đầy đủ cho một lưu trú. Chỉ làm tròn ở mức tổng,
// không làm tròn từng đêm để tránh dồn sai số qua nhiều đêm.
type Quote struct {
	Nights            int
	EffectiveBase     float64
	NightlyRate       float64
	AmenitiesPerNight float64
	RoomTotal         float64
	AmenitiesCost     float64
	CityTax           float64
	Discount          float64
	GrandTotal        float64
}

// nightlyRate tính giá một đêm. applyFloor chặn giá đêm không được thấp
// hơn giá gốc đã giảm (phòng multiplier/phụ thu âm kéo giá xuống).
func (p *StayPricing) nightlyRate(in QuoteInput, discountPct float64, applyFloor bool) (rate, addonPerNight float64) {
	effectiveBase := in.Room.BasePrice * (1 - discountPct/100)

	rate = effectiveBase*in.Plan.PriceMultiplier + in.Plan.FlatPremium

	baseline := in.Room.BaseCapacity
	if p.PerAdultBase {
		baseline = 1
	}
	if in.Adults > baseline {
		rate += float64(in.Adults-baseline) * in.Plan.ExtraAdultCharge
	}
	if in.Children > 0 {
		rate += float64(in.Children) * in.Plan.ExtraChildCharge
	}

	for _, name := range in.Addons {
		if a := in.Room.Amenity(name); a != nil {
			addonPerNight += a.Price
		}
	}
	rate += addonPerNight

	if applyFloor && rate < effectiveBase {
		rate = effectiveBase
	}
	return rate, addonPerNight
}

// Price tính bảng giá cho toàn bộ lưu trú
func (p *StayPricing) Price(in QuoteInput) Quote {
	if in.Nights < 1 {
		in.Nights = 1
	}

	nightly, addonPerNight := p.nightlyRate(in, in.Room.DiscountPercentage, true)

	roomTotal := math.Round(nightly * float64(in.Nights))
	cityTax := p.CityTaxPerNight * float64(in.Nights)
	grandTotal := roomTotal + cityTax

	// Khoản tiết kiệm báo cho khách: chênh lệch so với giá chưa giảm
	undiscountedNightly, _ := p.nightlyRate(in, 0, false)
	undiscountedTotal := math.Round(undiscountedNightly*float64(in.Nights)) + cityTax

	return Quote{
		Nights:            in.Nights,
		EffectiveBase:     in.Room.BasePrice * (1 - in.Room.DiscountPercentage/100),
		NightlyRate:       nightly,
		AmenitiesPerNight: addonPerNight,
		RoomTotal:         roomTotal,
		AmenitiesCost:     math.Round(addonPerNight * float64(in.Nights)),
		CityTax:           cityTax,
		Discount:          undiscountedTotal - grandTotal,
		GrandTotal:        grandTotal,
	}
}

// FormatAmount format số tiền cho template thông báo
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
