package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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

// Common domain errors
var (
	ErrNotFound              = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation            = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrUnauthorized          = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrLotAlreadySold        = NewDomainError("LOT_ALREADY_SOLD", "Production lot has already been sold")
	ErrIngredientUnavailable = NewDomainError("INGREDIENT_UNAVAILABLE", "Ingredient is exhausted or past its expiry date")
	ErrCodeGenerationFailed  = NewDomainError("CODE_GENERATION_FAILED", "Could not allocate a lot code")
	ErrStoreUnavailable      = NewDomainError("STORE_UNAVAILABLE", "Ledger store could not be read")
	ErrStoreWriteFailed      = NewDomainError("STORE_WRITE_FAILED", "Ledger store write did not complete")
)
