package viewmodels

import (
	activityviewmodels "github.com/iota-uz/org-directory/modules/activity/presentation/viewmodels"
	buildingviewmodels "github.com/iota-uz/org-directory/modules/building/presentation/viewmodels"
)

type Address struct {
	OrganizationSID string                      `json:"organizationSid"`
	BuildingSID     string                      `json:"buildingSid"`
	Office          string                      `json:"office"`
	Building        buildingviewmodels.Building `json:"building"`
}

type PhoneNumber struct {
	OrganizationSID string `json:"organizationSid"`
	Phone           string `json:"phone"`
}

type OrganizationFull struct {
	SID          string                        `json:"sid"`
	Name         string                        `json:"name"`
	Address      *Address                      `json:"address"`
	Activities   []activityviewmodels.Activity `json:"activities"`
	PhoneNumbers []PhoneNumber                 `json:"phoneNumbers"`
}
