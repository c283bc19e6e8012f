package controllers

import (
	"testing"

	"arabella/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "deluxe queen", normalizeInput("  Deluxe Queen "))
	assert.Equal(t, "can ho", normalizeInput("Căn Hộ"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, calculateSimilarity("queen", "queen"), 0.001)
	assert.InDelta(t, 1.0, calculateSimilarity("", ""), 0.001)
	assert.Greater(t, calculateSimilarity("queen", "quen"), 0.7)
	assert.Less(t, calculateSimilarity("queen", "xyzabc"), 0.3)
}

func TestScoreRoomsRanksCloserNamesFirst(t *testing.T) {
	rooms := []models.RoomType{
		{ID: 1, Name: "Deluxe Queen"},
		{ID: 2, Name: "Family Suite"},
		{ID: 3, Name: "Deluxe King"},
	}
	cm := createMatcher(prepareNameList(rooms))

	suggestions := scoreRooms("deluxe queen", rooms, cm)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, uint(1), suggestions[0].ID)

	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestScoreRoomsMatchesAmenities(t *testing.T) {
	rooms := []models.RoomType{
		{ID: 1, Name: "Standard Twin", Amenities: models.AmenityList{{Name: "Pool"}}},
		{ID: 2, Name: "Budget Single"},
	}
	cm := createMatcher(prepareNameList(rooms))

	suggestions := scoreRooms("pool", rooms, cm)
	require.NotEmpty(t, suggestions)

	found := false
	for _, s := range suggestions {
		if s.ID == 1 {
			found = true
		}
	}
	assert.True(t, found, "phòng có tiện nghi khớp từ khóa phải nằm trong gợi ý")
}
