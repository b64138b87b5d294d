// internal/domain/listing/entity.go
package listing

import "time"

type CarType string
type TransmissionType string
type FuelType string

const (
	CarTypeNew           CarType = "new"
	CarTypeReconditioned CarType = "reconditioned"
	CarTypeUsed          CarType = "used"

	TransmissionAutomatic TransmissionType = "automatic"
	TransmissionManual    TransmissionType = "manual"
	TransmissionCVT       TransmissionType = "cvt"

	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

// ValidCarType reports whether t is one of the known car types.
func ValidCarType(t CarType) bool {
	switch t {
	case CarTypeNew, CarTypeReconditioned, CarTypeUsed:
		return true
	}
	return false
}

func ValidTransmission(t TransmissionType) bool {
	switch t {
	case TransmissionAutomatic, TransmissionManual, TransmissionCVT:
		return true
	}
	return false
}

func ValidFuelType(t FuelType) bool {
	switch t {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeHybrid, FuelTypeElectric:
		return true
	}
	return false
}

// Listing represents a single car-for-sale record.
type Listing struct {
	ID      int64   `json:"id" db:"id"`
	MakeID  int64   `json:"make_id" db:"make_id"`
	ModelID int64   `json:"model_id" db:"model_id"`
	Year    int     `json:"year" db:"year"`
	CarType CarType `json:"car_type" db:"car_type"`
	Price   float64 `json:"price" db:"price"`
	Mileage *int    `json:"mileage,omitempty" db:"mileage"`

	// Technical specs
	EngineCapacity float64          `json:"engine_capacity" db:"engine_capacity"`
	Transmission   TransmissionType `json:"transmission" db:"transmission"`
	FuelType       FuelType         `json:"fuel_type" db:"fuel_type"`
	Color          string           `json:"color" db:"color"`
	Doors          int              `json:"doors" db:"doors"`
	Seats          int              `json:"seats" db:"seats"`

	// Features and description
	Features    string `json:"features" db:"features"`
	Description string `json:"description" db:"description"`

	// Reconditioned specific fields
	CountryOfOrigin   *string `json:"country_of_origin,omitempty" db:"country_of_origin"`
	ReconditionStatus *string `json:"recondition_status,omitempty" db:"recondition_status"`

	// Sales info
	SellerID   int64     `json:"seller_id" db:"seller_id"`
	IsFeatured bool      `json:"is_featured" db:"is_featured"`
	IsSold     bool      `json:"is_sold" db:"is_sold"`
	PostedOn   time.Time `json:"posted_on" db:"posted_on"`
	UpdatedOn  time.Time `json:"updated_on" db:"updated_on"`

	Slug string `json:"slug" db:"slug"`

	// Denormalized names joined from the catalog tables on reads.
	MakeName  string `json:"make_name,omitempty" db:"make_name"`
	ModelName string `json:"model_name,omitempty" db:"model_name"`

	Images []Image `json:"images,omitempty"`
}

// Image is a photo attached to a listing. The binary lives in object
// storage; only the URL is persisted.
type Image struct {
	ID        int64  `json:"id" db:"id"`
	ListingID int64  `json:"listing_id" db:"listing_id"`
	ImageURL  string `json:"image_url" db:"image_url"`
	IsPrimary bool   `json:"is_primary" db:"is_primary"`
}
