// internal/domain/listing/filter.go
package listing

import (
	"net/url"
	"strconv"
)

const DefaultPageSize = 12

// Filters narrows the public listing collection. Absent fields impose no
// constraint; sold listings are always excluded by the repository.
type Filters struct {
	Make         string
	Model        string
	CarType      CarType
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	Transmission TransmissionType
	FuelType     FuelType
	Query        string

	Page     int
	PageSize int
}

// ParseFilters reads listing filters from query parameters. Malformed
// numeric values and unknown enum values are treated as absent, never
// rejected.
func ParseFilters(q url.Values) Filters {
	f := Filters{
		Make:     q.Get("make"),
		Model:    q.Get("model"),
		Query:    q.Get("q"),
		Page:     1,
		PageSize: DefaultPageSize,
	}

	if t := CarType(q.Get("car_type")); ValidCarType(t) {
		f.CarType = t
	}
	if t := TransmissionType(q.Get("transmission")); ValidTransmission(t) {
		f.Transmission = t
	}
	if t := FuelType(q.Get("fuel_type")); ValidFuelType(t) {
		f.FuelType = t
	}

	f.MinPrice = parseFloat(q.Get("min_price"))
	f.MaxPrice = parseFloat(q.Get("max_price"))
	f.MinYear = parseInt(q.Get("min_year"))
	f.MaxYear = parseInt(q.Get("max_year"))

	if p := parseInt(q.Get("page")); p != nil && *p >= 1 {
		f.Page = *p
	}
	if ps := parseInt(q.Get("page_size")); ps != nil && *ps >= 1 && *ps <= 100 {
		f.PageSize = *ps
	}

	return f
}

func parseFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
