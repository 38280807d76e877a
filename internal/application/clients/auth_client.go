package clients

import (
	"context"
	"encoding/json"
	"go-botadmin/internal/domain/types/authtypes"
	"go-botadmin/pkg/e"
	"io"
	"log/slog"
	"net/http"
)

const (
	forgotPasswordPath = "/api/auth/forgot-password"
	resetPasswordPath  = "/api/auth/reset-password"

	MsgPasswordResetFailed = "An error occurred during password reset."
	MsgInvalidPassword     = "Invalid password"
)

type HTTPAuthClient interface {
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// ResetError is returned when the server answers a password reset call
// with a non-2xx status. Error() is the message meant for the user.
type ResetError struct {
	Status  int
	Code    string
	Message string
	cause   error
}

func (r *ResetError) Error() string {
	return r.Message
}

func (r *ResetError) Unwrap() []error {
	if r.cause != nil {
		return []error{e.ErrPasswordReset, r.cause}
	}

	return []error{e.ErrPasswordReset}
}

type AuthClient struct {
	client   *http.Client
	endpoint Endpoint
}

func NewAuthClient(client *http.Client, scheme, host string) *AuthClient {
	if client == nil {
		client = &http.Client{}
	}

	return &AuthClient{
		client:   client,
		endpoint: Endpoint{Scheme: scheme, Host: host},
	}
}

// ForgotPassword asks the server to mail a reset link to email.
func (c *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	request := authtypes.ForgotPasswordRequest{Email: email}

	return c.post(ctx, forgotPasswordPath, request, forgotPasswordMessage)
}

// ResetPassword sets a new password using the token from the reset link.
func (c *AuthClient) ResetPassword(ctx context.Context, token, password string) error {
	request := authtypes.ResetPasswordRequest{Token: token, Password: password}

	return c.post(ctx, resetPasswordPath, request, resetPasswordMessage)
}

func (c *AuthClient) post(ctx context.Context, path string, payload any,
	message func(authtypes.ErrorResponse) string) error {
	response, err := PostJSON(ctx, c.client, c.endpoint, path, payload, nil)
	if err != nil {
		slog.Error(
			e.ErrDoRequest.Error(),
			slog.String("path", path),
			slog.String("error", err.Error()))

		return err
	}
	defer closeBody(response)

	if isSuccess(response.StatusCode) {
		return nil
	}

	apiErr, errDecode := decodeErrorResponse(response.Body)
	if errDecode != nil {
		slog.Error(
			e.ErrDecodeJSONBody.Error(),
			slog.String("path", path),
			slog.Int("status code", response.StatusCode),
			slog.String("error", errDecode.Error()))

		return &ResetError{
			Status:  response.StatusCode,
			Message: MsgPasswordResetFailed,
			cause:   e.With(e.ErrDecodeJSONBody, errDecode),
		}
	}

	return &ResetError{
		Status:  response.StatusCode,
		Code:    apiErr.Detail.Code,
		Message: message(apiErr),
	}
}

func decodeErrorResponse(body io.Reader) (authtypes.ErrorResponse, error) {
	var apiErr authtypes.ErrorResponse

	data, err := io.ReadAll(body)
	if err != nil {
		return apiErr, e.With(e.ErrReadBody, err)
	}

	if err := json.Unmarshal(data, &apiErr); err != nil {
		return apiErr, err
	}

	return apiErr, nil
}

func forgotPasswordMessage(apiErr authtypes.ErrorResponse) string {
	if msg := apiErr.Detail.String(); msg != "" {
		return msg
	}

	return MsgPasswordResetFailed
}

func resetPasswordMessage(apiErr authtypes.ErrorResponse) string {
	if authtypes.IsInvalidPassword(apiErr.Detail) {
		if apiErr.Detail.Reason != "" {
			return apiErr.Detail.Reason
		}

		return MsgInvalidPassword
	}

	return forgotPasswordMessage(apiErr)
}
