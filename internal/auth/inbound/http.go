// Package inbound exposes the auth flows over HTTP.
package inbound

import (
	"context"

	"github.com/codecafelab/phoneauth/internal/auth/usecase"
	"github.com/codecafelab/phoneauth/internal/pkg/router"
)

type uc interface {
	RequestOTP(ctx context.Context, in usecase.RequestOTPInput) (*usecase.RequestOTPOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	ConfirmPassword(ctx context.Context, in usecase.ConfirmPasswordInput) (*usecase.ConfirmPasswordOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration flow: request an OTP, verify it, then set the PIN.
	r.POST("/api/v1/auth/otp/request", end.RequestOTP)
	r.POST("/api/v1/auth/otp/verify", end.VerifyOTP)
	r.POST("/api/v1/auth/password/confirm", end.ConfirmPassword)

	// Authentication
	r.POST("/api/v1/auth/login", end.Login)
}
