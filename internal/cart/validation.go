package cart

type ValidationErrorType string

const (
	ErrInsufficientStock ValidationErrorType = "insufficient_stock"
	ErrOutOfStock        ValidationErrorType = "out_of_stock"
	ErrInvalidQuantity   ValidationErrorType = "invalid_quantity"
)

type ValidationError struct {
	Type                ValidationErrorType `json:"type"`
	CurrentStock        int                 `json:"current_stock"`
	RequestedQuantity   int                 `json:"requested_quantity"`
	CurrentCartQuantity int                 `json:"current_cart_quantity,omitempty"`
}

// ValidationResult is what cart mutations return to callers. When IsValid is
// false the mutation did not happen and Error describes why;
// MaxAllowedQuantity is how much more of the variant could still be added.
type ValidationResult struct {
	IsValid            bool             `json:"is_valid"`
	Error              *ValidationError `json:"error,omitempty"`
	MaxAllowedQuantity int              `json:"max_allowed_quantity"`
}

// Validate applies the stock policy, in order: non-positive request, empty
// stock, then the additive stock ceiling.
func Validate(stock, inCart, requested int) ValidationResult {
	maxAllowed := stock - inCart
	if maxAllowed < 0 {
		maxAllowed = 0
	}

	switch {
	case requested <= 0:
		return ValidationResult{
			MaxAllowedQuantity: maxAllowed,
			Error: &ValidationError{
				Type:              ErrInvalidQuantity,
				CurrentStock:      stock,
				RequestedQuantity: requested,
			},
		}
	case stock == 0:
		return ValidationResult{
			MaxAllowedQuantity: 0,
			Error: &ValidationError{
				Type:              ErrOutOfStock,
				CurrentStock:      0,
				RequestedQuantity: requested,
			},
		}
	case inCart+requested > stock:
		return ValidationResult{
			MaxAllowedQuantity: maxAllowed,
			Error: &ValidationError{
				Type:                ErrInsufficientStock,
				CurrentStock:        stock,
				RequestedQuantity:   requested,
				CurrentCartQuantity: inCart,
			},
		}
	default:
		return ValidationResult{IsValid: true, MaxAllowedQuantity: maxAllowed}
	}
}
