package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Amenity là một tiện nghi của loại phòng. Price = 0 nghĩa là đã bao gồm
// trong giá phòng; Price > 0 là add-on tính thêm mỗi đêm khi khách chọn.
type Amenity struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AmenityList lưu danh sách tiện nghi dưới dạng cột json, giữ nguyên thứ tự.
type AmenityList []Amenity

func (a AmenityList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *AmenityList) Scan(value interface{}) error {
	if value == nil {
		*a = AmenityList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported amenities column type %T", value)
	}
	return json.Unmarshal(b, a)
}

type RoomType struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Name               string          `json:"name" gorm:"unique;size:100"`
	Description        string          `json:"description"`
	Images             json.RawMessage `json:"images" gorm:"type:json"`
	SizeSqm            int             `json:"sizeSqm"`
	BasePrice          float64         `json:"basePrice"`
	DiscountPercentage float64         `json:"discountPercentage"`
	TotalStock         int             `json:"totalStock"`
	BaseCapacity       int             `json:"baseCapacity"`
	MaxAdults          int             `json:"maxAdults"`
	MaxChildren        int             `json:"maxChildren"`
	MaxOccupancy       int             `json:"maxOccupancy"`
	Amenities          AmenityList     `json:"amenities" gorm:"type:json"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	RatePlans          []RatePlan      `json:"ratePlans,omitempty" gorm:"foreignKey:RoomTypeID;constraint:OnDelete:CASCADE"`
}

// Amenity trả về tiện nghi theo tên, nil nếu loại phòng không có.
func (r *RoomType) Amenity(name string) *Amenity {
	for i := range r.Amenities {
		if r.Amenities[i].Name == name {
			return &r.Amenities[i]
		}
	}
	return nil
}

func (r *RoomType) ValidateCapacity() error {
	if r.BaseCapacity > r.MaxOccupancy {
		return fmt.Errorf("baseCapacity %d exceeds maxOccupancy %d", r.BaseCapacity, r.MaxOccupancy)
	}
	if r.TotalStock < 0 {
		return fmt.Errorf("totalStock must not be negative, got %d", r.TotalStock)
	}
	return nil
}
