package services

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")

	ErrAlreadyInCart = errors.New("item already in cart")
	ErrEmptyCart     = errors.New("your cart is empty, please add items to cart")
)

// ValidationError marks bad input caught below the binding layer; the
// controllers turn it into a 400 with the message as-is.
type ValidationError struct{ msg string }

func Validation(msg string) error { return &ValidationError{msg: msg} }

func (e *ValidationError) Error() string { return e.msg }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
