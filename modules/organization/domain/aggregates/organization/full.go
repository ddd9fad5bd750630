package organization

import (
	"github.com/iota-uz/org-directory/modules/activity/domain/aggregates/activity"
	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
)

// LoadOptions selects which relations are fetched alongside an organization.
type LoadOptions struct {
	Address    bool
	Activities bool
	Phones     bool
}

func FullLoad() LoadOptions {
	return LoadOptions{Address: true, Activities: true, Phones: true}
}

func (o LoadOptions) Any() bool {
	return o.Address || o.Activities || o.Phones
}

type LoadedAddress struct {
	Address  Address
	Building building.Building
}

// Full is an organization with its relations. Relations that were not
// requested stay empty, and Address is nil when the organization has none.
type Full struct {
	Organization Organization
	Address      *LoadedAddress
	Activities   []activity.Activity
	Phones       []Phone
}
