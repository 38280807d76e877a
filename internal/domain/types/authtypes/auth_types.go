package authtypes

import "go-botadmin/internal/domain/types/apitypes"

const CodeInvalidPassword = "RESET_PASSWORD_INVALID_PASSWORD"

// IsInvalidPassword reports whether the server rejected the new password
// itself rather than the token.
func IsInvalidPassword(d apitypes.Detail) bool {
	return d.Kind == apitypes.DetailStructured && d.Code == CodeInvalidPassword
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type ErrorResponse struct {
	Detail apitypes.Detail `json:"detail"`
}
