package organization

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/pkg/constants"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

// CreateDTO describes an organization together with its relations.
// Registering the same name again extends the existing organization.
type CreateDTO struct {
	Name         string      `json:"name" validate:"required,max=250"`
	PhoneNumbers []string    `json:"phoneNumbers" validate:"dive,required,max=25"`
	BuildingSID  *uuid.UUID  `json:"buildingSid"`
	Office       string      `json:"office" validate:"max=25"`
	ActivitySIDs []uuid.UUID `json:"activitySids"`
}

func (d *CreateDTO) Ok() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Office = strings.TrimSpace(d.Office)
	for i := range d.PhoneNumbers {
		d.PhoneNumbers[i] = strings.TrimSpace(d.PhoneNumbers[i])
	}
	if err := serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(d)); err != nil {
		return err
	}
	if d.Office != "" && d.BuildingSID == nil {
		return serrors.Validation(serrors.ValidationErrors{"office": "requires buildingSid"})
	}
	return nil
}

type UpdateDTO struct {
	Name string `json:"name" validate:"required,max=250"`
}

func (d *UpdateDTO) Ok() error {
	d.Name = strings.TrimSpace(d.Name)
	return serrors.FromValidator(serrors.UnprocessableEntity, constants.Validate.Struct(d))
}

type SearchByNameQuery struct {
	Name string `form:"name" validate:"required,max=250"`
}

type ActivityQuery struct {
	ActivityName string `form:"activityName" validate:"required"`
}
