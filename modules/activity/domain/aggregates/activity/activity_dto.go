package activity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

type CreateDTO struct {
	Name      string     `json:"name" validate:"required,max=250"`
	ParentSID *uuid.UUID `json:"parentSid"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

// Ok normalizes the payload and reports per-field problems as a validation error.
func (d *CreateDTO) Ok() error {
	d.Normalize()
	return serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(d))
}

func (d *CreateDTO) ToEntity() Activity {
	return New(d.Name, d.ParentSID)
}

type UpdateDTO struct {
	Name string `json:"name" validate:"required,max=250"`
}

func (d *UpdateDTO) Ok() error {
	d.Name = strings.TrimSpace(d.Name)
	return serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(d))
}
