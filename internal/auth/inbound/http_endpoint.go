package inbound

import (
	"github.com/codecafelab/phoneauth/internal/auth/usecase"
	"github.com/codecafelab/phoneauth/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the OTP registration and login workflows.
type HTTPEndpoint struct {
	uc uc
}

// RequestOTP issues an OTP challenge for a phone number.
// @Summary Request OTP
// @Description Issues an OTP for the given phone number and returns a remember token for the verification step.
// @Tags Auth, Registration
// @Accept json
// @Produce json
// @Param request body RequestOTPRequest true "OTP request payload"
// @Success 200 {object} router.successResponse{data=RequestOTPResponse} "OTP issued"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Suspected abuse"
// @Failure 409 {object} router.errorResponse "Phone already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Daily request limit exceeded"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/request [post]
func (h *HTTPEndpoint) RequestOTP(r *router.Request) (any, error) {
	var req RequestOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RequestOTP(r.Context(), usecase.RequestOTPInput{Phone: req.Phone})
	if err != nil {
		return nil, err
	}

	return RequestOTPResponse{
		Phone:         resp.Phone,
		RememberToken: resp.RememberToken,
	}, nil
}

// VerifyOTP checks the OTP against the active challenge.
// @Summary Verify OTP
// @Description Verifies the OTP for the active challenge and returns a verify token for the password step.
// @Tags Auth, Registration
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "OTP verification payload"
// @Success 200 {object} router.successResponse{data=VerifyOTPResponse} "OTP verified"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid token or incorrect OTP"
// @Failure 403 {object} router.errorResponse "OTP expired"
// @Failure 404 {object} router.errorResponse "No OTP request found"
// @Failure 409 {object} router.errorResponse "Phone already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/otp/verify [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Phone:         req.Phone,
		RememberToken: req.RememberToken,
		OtpCode:       req.OtpCode,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		Phone:       resp.Phone,
		VerifyToken: resp.VerifyToken,
	}, nil
}

// ConfirmPassword sets the PIN, creates the account and returns a token.
// @Summary Confirm password
// @Description Sets the account PIN after OTP verification, creates the account and returns an access token.
// @Tags Auth, Registration
// @Accept json
// @Produce json
// @Param request body ConfirmPasswordRequest true "Password confirmation payload"
// @Success 200 {object} router.successResponse{data=ConfirmPasswordResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid token"
// @Failure 403 {object} router.errorResponse "Confirmation window expired"
// @Failure 404 {object} router.errorResponse "No OTP request found"
// @Failure 409 {object} router.errorResponse "Phone already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/password/confirm [post]
func (h *HTTPEndpoint) ConfirmPassword(r *router.Request) (any, error) {
	var req ConfirmPasswordRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ConfirmPassword(r.Context(), usecase.ConfirmPasswordInput{
		Phone:       req.Phone,
		VerifyToken: req.VerifyToken,
		Pin:         req.Pin,
	})
	if err != nil {
		return nil, err
	}

	return ConfirmPasswordResponse{
		Token:     resp.Token,
		Phone:     resp.Phone,
		AccountID: formatAccountID(resp.AccountID),
	}, nil
}

// Login authenticates a registered phone number with its PIN.
// @Summary Login
// @Description Validates the phone number and PIN and returns an access token.
// @Tags Auth, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Wrong password"
// @Failure 403 {object} router.errorResponse "Account locked"
// @Failure 404 {object} router.errorResponse "Phone not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Phone: req.Phone,
		Pin:   req.Pin,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Token:     resp.Token,
		Phone:     resp.Phone,
		AccountID: formatAccountID(resp.AccountID),
	}, nil
}
