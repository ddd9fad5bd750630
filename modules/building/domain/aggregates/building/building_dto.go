package building

import (
	"strings"

	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type CreateDTO struct {
	Address   string  `json:"address" validate:"required,max=150"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func (d *CreateDTO) Ok() error {
	d.Address = strings.TrimSpace(d.Address)
	return serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(d))
}

func (d *CreateDTO) ToEntity() Building {
	return New(d.Address, d.Latitude, d.Longitude)
}

// CoordinatesFilter selects buildings inside an inclusive latitude/longitude box.
type CoordinatesFilter struct {
	LatitudeGte  *float64 `form:"latitudeGte" validate:"required,gte=-90,lte=90"`
	LatitudeLte  *float64 `form:"latitudeLte" validate:"required,gte=-90,lte=90"`
	LongitudeGte *float64 `form:"longitudeGte" validate:"required,gte=-180,lte=180"`
	LongitudeLte *float64 `form:"longitudeLte" validate:"required,gte=-180,lte=180"`
}

func NewCoordinatesFilter(latGte, latLte, lonGte, lonLte float64) CoordinatesFilter {
	return CoordinatesFilter{
		LatitudeGte:  &latGte,
		LatitudeLte:  &latLte,
		LongitudeGte: &lonGte,
		LongitudeLte: &lonLte,
	}
}

// Ok checks every bound is present and in range, and that each lower bound
// does not exceed its upper bound.
func (f *CoordinatesFilter) Ok() error {
	if err := serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(f)); err != nil {
		return err
	}
	fields := serrors.ValidationErrors{}
	if *f.LatitudeGte > *f.LatitudeLte {
		fields["latitudeGte"] = "must not exceed latitudeLte"
	}
	if *f.LongitudeGte > *f.LongitudeLte {
		fields["longitudeGte"] = "must not exceed longitudeLte"
	}
	if len(fields) > 0 {
		return serrors.Validation(fields)
	}
	return nil
}

func (f *CoordinatesFilter) Contains(b Building) bool {
	return b.Latitude() >= *f.LatitudeGte && b.Latitude() <= *f.LatitudeLte &&
		b.Longitude() >= *f.LongitudeGte && b.Longitude() <= *f.LongitudeLte
}
