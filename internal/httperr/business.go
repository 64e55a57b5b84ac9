package httperr

import "errors"

// Códigos das regras de negócio que voltam ao usuário como mensagem flash.
const (
	CodeInvalidCredentials    = "invalid_credentials"
	CodeDefaultAdminProtected = "default_admin_protected"
	CodeSelfDelete            = "self_delete"
	CodeWrongPassword         = "wrong_current_password"
	CodePasswordMismatch      = "password_mismatch"
	CodeEmailTaken            = "email_taken"
	CodeInvalidEmail          = "invalid_email"
	CodeInvalidImage          = "invalid_image"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode devolve o código quando err é uma regra de negócio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
