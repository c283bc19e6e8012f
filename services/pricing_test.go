package services

import (
	"testing"

	"arabella/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardRoom() *models.RoomType {
	return &models.RoomType{
		ID:                 1,
		Name:               "Deluxe Queen",
		BasePrice:          1000,
		DiscountPercentage: 10,
		TotalStock:         5,
		BaseCapacity:       2,
		MaxAdults:          3,
		MaxChildren:        2,
		MaxOccupancy:       4,
		Amenities: models.AmenityList{
			{Name: "Wifi", Price: 0},
			{Name: "Late Checkout", Price: 300},
			{Name: "Parking", Price: 50},
		},
	}
}

func TestPriceFullBreakdown(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	plan := &models.RatePlan{
		Name:            "Non Refundable - Pay Now",
		PriceMultiplier: 0.9,
		FlatPremium:     40,
	}

	quote := p.Price(QuoteInput{
		Room:   room,
		Plan:   plan,
		Adults: 2,
		Addons: []string{"Late Checkout"},
		Nights: 2,
	})

	// effectiveBase = 1000*0.9 = 900; đêm = 900*0.9 + 40 + 300 = 1150
	require.Equal(t, 2, quote.Nights)
	assert.InDelta(t, 900, quote.EffectiveBase, 0.001)
	assert.InDelta(t, 1150, quote.NightlyRate, 0.001)
	assert.InDelta(t, 300, quote.AmenitiesPerNight, 0.001)
	assert.InDelta(t, 2300, quote.RoomTotal, 0.001)
	assert.InDelta(t, 600, quote.AmenitiesCost, 0.001)
	assert.InDelta(t, 50, quote.CityTax, 0.001)
	assert.InDelta(t, 2350, quote.GrandTotal, 0.001)

	// Chưa giảm: 1000*0.9 + 40 + 300 = 1240/đêm, tổng 2530
	assert.InDelta(t, 180, quote.Discount, 0.001)
}

func TestPriceNoSurchargeWithinBaseCapacity(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	room.DiscountPercentage = 0
	plan := &models.RatePlan{
		PriceMultiplier:  1.0,
		ExtraAdultCharge: 100,
		ExtraChildCharge: 60,
	}

	base := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 2, Nights: 1})
	withExtra := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 3, Nights: 1})
	withChild := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 2, Children: 2, Nights: 1})

	// 2 người lớn nằm trong baseCapacity, không phụ thu
	assert.InDelta(t, 1000, base.NightlyRate, 0.001)
	assert.InDelta(t, 1100, withExtra.NightlyRate, 0.001)
	assert.InDelta(t, 1120, withChild.NightlyRate, 0.001)
}

func TestPricePerAdultBaseVariant(t *testing.T) {
	p := NewStayPricing()
	p.PerAdultBase = true
	room := standardRoom()
	room.DiscountPercentage = 0
	plan := &models.RatePlan{
		PriceMultiplier:  1.0,
		ExtraAdultCharge: 100,
	}

	// Baseline là 1 người lớn: người thứ hai đã bị phụ thu
	quote := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 2, Nights: 1})
	assert.InDelta(t, 1100, quote.NightlyRate, 0.001)
}

func TestPriceFloorAtEffectiveBase(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	plan := &models.RatePlan{
		Name:            "Deep Promo",
		PriceMultiplier: 0.5,
	}

	quote := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 2, Nights: 1})

	// 900*0.5 = 450 < 900 nên bị chặn sàn ở giá gốc đã giảm
	assert.InDelta(t, 900, quote.NightlyRate, 0.001)
	assert.InDelta(t, 900, quote.RoomTotal, 0.001)
}

func TestPriceUnknownAddonIgnored(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	room.DiscountPercentage = 0
	plan := &models.RatePlan{PriceMultiplier: 1.0}

	quote := p.Price(QuoteInput{
		Room:   room,
		Plan:   plan,
		Adults: 2,
		Addons: []string{"Helipad"},
		Nights: 1,
	})

	assert.InDelta(t, 0, quote.AmenitiesPerNight, 0.001)
	assert.InDelta(t, 1000, quote.NightlyRate, 0.001)
}

func TestPriceClampsNightsToOne(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	plan := &models.RatePlan{PriceMultiplier: 1.0}

	quote := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 1, Nights: 0})
	assert.Equal(t, 1, quote.Nights)
	assert.InDelta(t, DefaultCityTaxPerNight, quote.CityTax, 0.001)
}

func TestPriceMoreNightsCostMore(t *testing.T) {
	p := NewStayPricing()
	room := standardRoom()
	plan := &models.RatePlan{PriceMultiplier: 1.0, FlatPremium: 40}

	prev := 0.0
	for nights := 1; nights <= 5; nights++ {
		quote := p.Price(QuoteInput{Room: room, Plan: plan, Adults: 2, Nights: nights})
		assert.Greater(t, quote.GrandTotal, prev, "tổng %d đêm phải lớn hơn %d đêm", nights, nights-1)
		prev = quote.GrandTotal
	}
}
