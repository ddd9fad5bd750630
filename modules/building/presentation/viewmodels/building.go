package viewmodels

type Building struct {
	SID       string  `json:"sid"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Organization struct {
	SID  string `json:"sid"`
	Name string `json:"name"`
}

type BuildingWithOrganizations struct {
	Building
	Organizations []Organization `json:"organizations"`
}
