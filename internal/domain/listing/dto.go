// internal/domain/listing/dto.go
package listing

import "gari-service/internal/domain/catalog"

type ImageInput struct {
	ImageURL  string `json:"image_url" binding:"required,max=500"`
	IsPrimary bool   `json:"is_primary"`
}

type CreateListingRequest struct {
	MakeID         int64   `json:"make_id" binding:"required"`
	ModelID        int64   `json:"model_id" binding:"required"`
	Year           int     `json:"year" binding:"required,min=1900,max=2100"`
	CarType        string  `json:"car_type" binding:"required"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Mileage        *int    `json:"mileage" binding:"omitempty,min=0"`
	EngineCapacity float64 `json:"engine_capacity" binding:"required,gt=0"`
	Transmission   string  `json:"transmission" binding:"required"`
	FuelType       string  `json:"fuel_type" binding:"required"`
	Color          string  `json:"color" binding:"required,max=50"`
	Doors          int     `json:"doors" binding:"omitempty,min=2,max=6"`
	Seats          int     `json:"seats" binding:"omitempty,min=1,max=12"`
	Features       string  `json:"features"`
	Description    string  `json:"description" binding:"required"`

	CountryOfOrigin   string `json:"country_of_origin"`
	ReconditionStatus string `json:"recondition_status"`

	Images []ImageInput `json:"images" binding:"omitempty,dive"`
}

// UpdateListingRequest carries the full replacement state of a listing;
// images, when present, replace the existing set.
type UpdateListingRequest = CreateListingRequest

type ListResponse struct {
	Listings   []Listing `json:"listings"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

type DetailResponse struct {
	Listing         *Listing  `json:"listing"`
	FeatureList     []string  `json:"feature_list"`
	FeaturesDisplay string    `json:"features_display,omitempty"`
	SimilarListings []Listing `json:"similar_listings"`
}

type HomeResponse struct {
	Featured      []Listing      `json:"featured"`
	New           []Listing      `json:"new"`
	Reconditioned []Listing      `json:"reconditioned"`
	Makes         []catalog.Make `json:"makes"`
}
