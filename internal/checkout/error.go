package checkout

import "errors"

var (
	ErrCartEmpty = errors.New("cart is empty")
)

// ValidationError carries every failing field at once so the whole form
// can be reported in one pass.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "shipping information is invalid"
}
