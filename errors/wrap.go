package errors

import (
	goerrors "errors"
)

// Unwrap 等价于标准库 errors.Unwrap
func Unwrap(err error) error {
	return goerrors.Unwrap(err)
}

// Is 等价于标准库 errors.Is
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// As 等价于标准库 errors.As
func As(err error, target any) bool {
	return goerrors.As(err, target)
}

// Join 等价于标准库 errors.Join
func Join(errs ...error) error {
	return goerrors.Join(errs...)
}
