package listing

import (
	"testing"

	"gari-service/internal/domain/listing"
	xerrors "gari-service/internal/pkg/errors"
)

func validRequest(carType string) *listing.CreateListingRequest {
	mileage := 45000
	return &listing.CreateListingRequest{
		MakeID:            1,
		ModelID:           2,
		Year:              2020,
		CarType:           carType,
		Price:             15000,
		Mileage:           &mileage,
		EngineCapacity:    1.8,
		Transmission:      "automatic",
		FuelType:          "hybrid",
		Color:             "white",
		Description:       "well maintained",
		CountryOfOrigin:   "Japan",
		ReconditionStatus: "engine overhauled",
	}
}

func TestValidateSpecNewCar(t *testing.T) {
	req := validRequest("new")
	req.Mileage = nil
	req.CountryOfOrigin = ""
	req.ReconditionStatus = ""

	if err := validateSpec(req); err != nil {
		t.Fatalf("new car without conditional fields should pass: %v", err)
	}
}

func TestValidateSpecUsedRequiresMileage(t *testing.T) {
	req := validRequest("used")
	req.Mileage = nil

	if err := validateSpec(req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestValidateSpecReconditionedRequiresOriginAndStatus(t *testing.T) {
	req := validRequest("reconditioned")
	req.CountryOfOrigin = ""
	if err := validateSpec(req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing country, got %v", err)
	}

	req = validRequest("reconditioned")
	req.ReconditionStatus = ""
	if err := validateSpec(req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing status, got %v", err)
	}

	if err := validateSpec(validRequest("reconditioned")); err != nil {
		t.Fatalf("complete reconditioned request should pass: %v", err)
	}
}

func TestValidateSpecRejectsUnknownEnums(t *testing.T) {
	req := validRequest("used")
	req.Transmission = "warp"
	if err := validateSpec(req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid transmission, got %v", err)
	}

	req = validRequest("hovercraft")
	if err := validateSpec(req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid car type, got %v", err)
	}
}

func TestEnsureOwner(t *testing.T) {
	l := &listing.Listing{SellerID: 7}

	if err := ensureOwner(l, 7); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	if err := ensureOwner(l, 8); !xerrors.Is(err, xerrors.ErrForbidden) {
		t.Fatalf("non-owner should be forbidden, got %v", err)
	}
}

func TestBuildEntityDefaultsAndConditionalClearing(t *testing.T) {
	req := validRequest("new")
	l := buildEntity(req)

	if l.Doors != 4 || l.Seats != 5 {
		t.Errorf("defaults = %d doors / %d seats", l.Doors, l.Seats)
	}
	// A new car keeps no mileage or recondition fields even if supplied.
	if l.Mileage != nil || l.CountryOfOrigin != nil || l.ReconditionStatus != nil {
		t.Errorf("conditional fields should be cleared for new cars: %+v", l)
	}

	l = buildEntity(validRequest("reconditioned"))
	if l.Mileage == nil || l.CountryOfOrigin == nil || l.ReconditionStatus == nil {
		t.Errorf("conditional fields should be kept for reconditioned cars: %+v", l)
	}
}
