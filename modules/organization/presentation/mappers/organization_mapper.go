package mappers

import (
	activitymappers "github.com/iota-uz/org-directory/modules/activity/presentation/mappers"
	buildingmappers "github.com/iota-uz/org-directory/modules/building/presentation/mappers"
	"github.com/iota-uz/org-directory/modules/organization/domain/aggregates/organization"
	"github.com/iota-uz/org-directory/modules/organization/presentation/viewmodels"
)

func FullToViewModel(f organization.Full) viewmodels.OrganizationFull {
	vm := viewmodels.OrganizationFull{
		SID:          f.Organization.SID().String(),
		Name:         f.Organization.Name(),
		Activities:   activitymappers.ActivitiesToViewModels(f.Activities),
		PhoneNumbers: make([]viewmodels.PhoneNumber, 0, len(f.Phones)),
	}
	if f.Address != nil {
		vm.Address = &viewmodels.Address{
			OrganizationSID: f.Address.Address.OrganizationSID().String(),
			BuildingSID:     f.Address.Address.BuildingSID().String(),
			Office:          f.Address.Address.Office(),
			Building:        buildingmappers.BuildingToViewModel(f.Address.Building),
		}
	}
	for _, p := range f.Phones {
		vm.PhoneNumbers = append(vm.PhoneNumbers, viewmodels.PhoneNumber{
			OrganizationSID: p.OrganizationSID().String(),
			Phone:           p.Phone(),
		})
	}
	return vm
}

func FullsToViewModels(fulls []organization.Full) []viewmodels.OrganizationFull {
	out := make([]viewmodels.OrganizationFull, 0, len(fulls))
	for _, f := range fulls {
		out = append(out, FullToViewModel(f))
	}
	return out
}
