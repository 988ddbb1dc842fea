package reject_session

// RejectSessionRequest HTTP request model
type RejectSessionRequest struct {
	Reason string `json:"reason"`
}
