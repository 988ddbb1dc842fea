package get_rejection_options

import "github.com/squadsync/SquadSync-SessionService/internal/domain"

// RejectionOptionsResponse HTTP response model
// UI показывает диалог выбора причины только при requiresPrompt=true
type RejectionOptionsResponse struct {
	RequiresPrompt bool     `json:"requiresPrompt"`
	AllowedReasons []string `json:"allowedReasons"`
	DefaultReason  string   `json:"defaultReason"`
}

// FromResolution конвертирует доменную резолюцию в HTTP response
func FromResolution(resolution domain.RejectionResolution) *RejectionOptionsResponse {
	reasons := make([]string, len(resolution.AllowedReasons))
	for i, reason := range resolution.AllowedReasons {
		reasons[i] = string(reason)
	}

	return &RejectionOptionsResponse{
		RequiresPrompt: resolution.RequiresPrompt,
		AllowedReasons: reasons,
		DefaultReason:  string(resolution.DefaultReason),
	}
}
