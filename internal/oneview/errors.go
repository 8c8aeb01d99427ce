package oneview

import (
	"fmt"
	"net/http"
)

// APIError is an error response returned by the appliance. Transport and
// authentication failures surface as-is; callers that need to distinguish
// a domain-level rejection from other failures use DomainRejection.
type APIError struct {
	StatusCode         int
	ErrorCode          string   `json:"errorCode"`
	Message            string   `json:"message"`
	Details            string   `json:"details"`
	RecommendedActions []string `json:"recommendedActions"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.ErrorCode != "" {
		return fmt.Sprintf("oneview: %s (%d %s)", e.Message, e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("oneview: %s (%d)", e.Message, e.StatusCode)
}

// DomainRejection reports whether the appliance understood the request
// but refused the operation, for example an exhausted ID pool. Session
// and routing failures are not domain rejections.
func (e *APIError) DomainRejection() bool {
	if e == nil {
		return false
	}
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusConflict, http.StatusPreconditionFailed:
		return true
	default:
		return false
	}
}
