package session

type ResolveResponse struct {
	Session       *ResolvedSession `json:"session,omitempty"`
	RoutingTarget RoutingTarget    `json:"routing_target"`
}

type SortPreferenceRequest struct {
	Sort string `json:"sort" binding:"required"`
}

type SortPreferenceResponse struct {
	Sort string `json:"sort"`
}
