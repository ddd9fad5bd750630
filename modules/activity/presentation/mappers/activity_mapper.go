package mappers

import (
	"github.com/google/uuid"

	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/activity/presentation/viewmodels"
)

func ActivityToViewModel(a activity.Activity) viewmodels.Activity {
	vm := viewmodels.Activity{
		SID:  a.SID().String(),
		Name: a.Name(),
	}
	if parent := a.ParentSID(); parent != nil {
		s := parent.String()
		vm.ParentSID = &s
	}
	return vm
}

func ActivitiesToViewModels(activities []activity.Activity) []viewmodels.Activity {
	out := make([]viewmodels.Activity, 0, len(activities))
	for _, a := range activities {
		out = append(out, ActivityToViewModel(a))
	}
	return out
}

func DescendantsToViewModel(name string, sids []uuid.UUID) viewmodels.ActivityDescendants {
	out := viewmodels.ActivityDescendants{ActivityName: name, SIDs: make([]string, 0, len(sids))}
	for _, sid := range sids {
		out.SIDs = append(out.SIDs, sid.String())
	}
	return out
}
