package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// CatalogWarning is shown to users whenever the product catalog could not be loaded.
const CatalogWarning = "לא הצלחנו לטעון את רשימת המוצרים. אנא נסה שוב מאוחר יותר."

// Common domain errors
var (
	ErrCatalogUnavailable = NewDomainError(ErrCodeCatalogUnavailable, CatalogWarning)
	ErrInvalidPagination  = NewDomainError(ErrCodeInvalidParameter, "limit and offset must be integers")
)
