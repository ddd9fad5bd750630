package viewmodels

type Activity struct {
	SID       string  `json:"sid"`
	Name      string  `json:"name"`
	ParentSID *string `json:"parentSid"`
}

type ActivityDescendants struct {
	ActivityName string   `json:"activityName"`
	SIDs         []string `json:"sids"`
}
