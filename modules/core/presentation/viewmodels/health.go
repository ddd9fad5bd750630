package viewmodels

type Health struct {
	Status  string `json:"status"`
	ScopeID string `json:"scopeId"`
}
