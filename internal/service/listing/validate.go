// internal/service/listing/validate.go
package listing

import (
	"gari-service/internal/domain/listing"
	xerrors "gari-service/internal/pkg/errors"
)

// validateSpec checks the enum fields and the conditionally required
// ones: mileage, country of origin and recondition status only apply to
// cars that are not new.
func validateSpec(req *listing.CreateListingRequest) error {
	carType := listing.CarType(req.CarType)
	if !listing.ValidCarType(carType) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "invalid car type")
	}
	if !listing.ValidTransmission(listing.TransmissionType(req.Transmission)) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "invalid transmission")
	}
	if !listing.ValidFuelType(listing.FuelType(req.FuelType)) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "invalid fuel type")
	}

	if carType != listing.CarTypeNew {
		if req.Mileage == nil {
			return xerrors.Wrap(xerrors.ErrInvalidInput, "mileage is required for non-new cars")
		}
		if carType == listing.CarTypeReconditioned {
			if req.CountryOfOrigin == "" {
				return xerrors.Wrap(xerrors.ErrInvalidInput, "country of origin is required for reconditioned cars")
			}
			if req.ReconditionStatus == "" {
				return xerrors.Wrap(xerrors.ErrInvalidInput, "recondition status is required for reconditioned cars")
			}
		}
	}

	return nil
}

// ensureOwner rejects mutation attempts by anyone but the seller.
func ensureOwner(l *listing.Listing, sellerID int64) error {
	if l.SellerID != sellerID {
		return xerrors.ErrForbidden
	}
	return nil
}

// buildEntity maps a validated request onto a listing entity, applying
// the doors/seats defaults and clearing conditional fields that do not
// apply to the car type.
func buildEntity(req *listing.CreateListingRequest) *listing.Listing {
	carType := listing.CarType(req.CarType)

	l := &listing.Listing{
		MakeID:         req.MakeID,
		ModelID:        req.ModelID,
		Year:           req.Year,
		CarType:        carType,
		Price:          req.Price,
		EngineCapacity: req.EngineCapacity,
		Transmission:   listing.TransmissionType(req.Transmission),
		FuelType:       listing.FuelType(req.FuelType),
		Color:          req.Color,
		Doors:          req.Doors,
		Seats:          req.Seats,
		Features:       req.Features,
		Description:    req.Description,
	}

	if l.Doors == 0 {
		l.Doors = 4
	}
	if l.Seats == 0 {
		l.Seats = 5
	}

	if carType != listing.CarTypeNew {
		l.Mileage = req.Mileage
	}
	if carType == listing.CarTypeReconditioned {
		if req.CountryOfOrigin != "" {
			l.CountryOfOrigin = &req.CountryOfOrigin
		}
		if req.ReconditionStatus != "" {
			l.ReconditionStatus = &req.ReconditionStatus
		}
	}

	return l
}
