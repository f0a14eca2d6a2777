package scoring

import "fmt"

// ValidationError describes a response vector that violates the
// instrument's input contract. It is always caused by client input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ValidateResponses checks the scoring precondition: exactly NumItems
// answers, each an integer within [MinResponse, MaxResponse]. Callers
// must run this before handing the vector to Score.
func ValidateResponses(responses []int64) error {
	if len(responses) != NumItems {
		return &ValidationError{
			Reason: fmt.Sprintf("expected exactly %d responses, got %d", NumItems, len(responses)),
		}
	}
	for i, v := range responses {
		if v < MinResponse || v > MaxResponse {
			return &ValidationError{
				Reason: fmt.Sprintf("response %d has value %d, must be between %d and %d", i+1, v, MinResponse, MaxResponse),
			}
		}
	}
	return nil
}
