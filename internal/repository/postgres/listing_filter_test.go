package postgres

import (
	"strings"
	"testing"

	"gari-service/internal/domain/listing"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestBuildListingFilterEmpty(t *testing.T) {
	where, args := buildListingFilter(&listing.Filters{})

	if where != "l.is_sold = FALSE" {
		t.Fatalf("where = %q, want sold exclusion only", where)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
}

func TestBuildListingFilterConjunctive(t *testing.T) {
	f := &listing.Filters{
		MinPrice: fptr(10000),
		MaxPrice: fptr(20000),
		FuelType: listing.FuelTypeHybrid,
	}

	where, args := buildListingFilter(f)

	for _, want := range []string{
		"l.is_sold = FALSE",
		"l.price >= $1",
		"l.price <= $2",
		"l.fuel_type = $3",
	} {
		if !strings.Contains(where, want) {
			t.Errorf("where %q missing %q", where, want)
		}
	}
	if strings.Count(where, " AND ") != 3 {
		t.Errorf("expected 3 AND joins, got %q", where)
	}
	if len(args) != 3 {
		t.Errorf("args = %v, want 3", args)
	}
	if args[0] != 10000.0 || args[1] != 20000.0 || args[2] != "hybrid" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildListingFilterFreeTextIsDisjunctive(t *testing.T) {
	f := &listing.Filters{
		Make:  "toyo",
		Query: "sunroof",
	}

	where, args := buildListingFilter(f)

	if !strings.Contains(where, "mk.name ILIKE $1") {
		t.Errorf("where %q missing make substring match", where)
	}
	// The q clause ORs across make, model, description and features with a
	// single bound argument, and is ANDed against the rest.
	qClause := "(mk.name ILIKE $2 OR md.name ILIKE $2 OR l.description ILIKE $2 OR l.features ILIKE $2)"
	if !strings.Contains(where, qClause) {
		t.Errorf("where %q missing free-text clause %q", where, qClause)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v, want 2", args)
	}
	if args[0] != "%toyo%" || args[1] != "%sunroof%" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildListingFilterRanges(t *testing.T) {
	f := &listing.Filters{
		MinYear: iptr(2015),
		MaxYear: iptr(2022),
		CarType: listing.CarTypeReconditioned,
	}

	where, args := buildListingFilter(f)

	for _, want := range []string{"l.car_type = $1", "l.year >= $2", "l.year <= $3"} {
		if !strings.Contains(where, want) {
			t.Errorf("where %q missing %q", where, want)
		}
	}
	if args[0] != "reconditioned" || args[1] != 2015 || args[2] != 2022 {
		t.Errorf("unexpected args %v", args)
	}
}
