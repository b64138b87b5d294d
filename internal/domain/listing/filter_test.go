package listing

import (
	"net/url"
	"testing"
)

func TestParseFilters(t *testing.T) {
	q := url.Values{}
	q.Set("make", "Toyota")
	q.Set("model", "Corolla")
	q.Set("car_type", "reconditioned")
	q.Set("min_price", "10000")
	q.Set("max_price", "20000")
	q.Set("min_year", "2015")
	q.Set("max_year", "2022")
	q.Set("transmission", "automatic")
	q.Set("fuel_type", "hybrid")
	q.Set("q", "sunroof")

	f := ParseFilters(q)

	if f.Make != "Toyota" || f.Model != "Corolla" {
		t.Errorf("make/model = %q/%q", f.Make, f.Model)
	}
	if f.CarType != CarTypeReconditioned {
		t.Errorf("car_type = %q", f.CarType)
	}
	if f.MinPrice == nil || *f.MinPrice != 10000 {
		t.Errorf("min_price = %v", f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 20000 {
		t.Errorf("max_price = %v", f.MaxPrice)
	}
	if f.MinYear == nil || *f.MinYear != 2015 || f.MaxYear == nil || *f.MaxYear != 2022 {
		t.Errorf("year range = %v..%v", f.MinYear, f.MaxYear)
	}
	if f.Transmission != TransmissionAutomatic || f.FuelType != FuelTypeHybrid {
		t.Errorf("transmission/fuel = %q/%q", f.Transmission, f.FuelType)
	}
	if f.Query != "sunroof" {
		t.Errorf("q = %q", f.Query)
	}
	if f.Page != 1 || f.PageSize != DefaultPageSize {
		t.Errorf("pagination defaults = %d/%d", f.Page, f.PageSize)
	}
}

// Malformed numeric values are ignored, not rejected.
func TestParseFiltersMalformedNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "cheap")
	q.Set("max_price", "12,000")
	q.Set("min_year", "twenty")
	q.Set("page", "zero")

	f := ParseFilters(q)

	if f.MinPrice != nil || f.MaxPrice != nil || f.MinYear != nil {
		t.Errorf("expected malformed numerics to be absent: %+v", f)
	}
	if f.Page != 1 {
		t.Errorf("page = %d, want fallback 1", f.Page)
	}
}

func TestParseFiltersUnknownEnums(t *testing.T) {
	q := url.Values{}
	q.Set("car_type", "hovercraft")
	q.Set("transmission", "warp")
	q.Set("fuel_type", "coal")

	f := ParseFilters(q)

	if f.CarType != "" || f.Transmission != "" || f.FuelType != "" {
		t.Errorf("expected unknown enum values to be absent: %+v", f)
	}
}

func TestParseFiltersPageSizeClamp(t *testing.T) {
	q := url.Values{}
	q.Set("page_size", "1000")
	if f := ParseFilters(q); f.PageSize != DefaultPageSize {
		t.Errorf("page_size = %d, want default when out of range", f.PageSize)
	}
}
