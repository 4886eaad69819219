package httperr

import "errors"

type BusinessError struct {
	Code string
	// Campo ofensor, quando o erro é de validação de entrada
	Field string
}

func (e BusinessError) Error() string {
	if e.Field != "" {
		return e.Code + ": " + e.Field
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrField(code, field string) error {
	return BusinessError{Code: code, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
