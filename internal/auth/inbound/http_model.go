package inbound

import "strconv"

type RequestOTPRequest struct {
	Phone string `json:"phone"`
}

type RequestOTPResponse struct {
	Phone         string `json:"phone"`
	RememberToken string `json:"remember_token"`
}

func (r RequestOTPResponse) Message() string {
	return "We are sending OTP to " + r.Phone + "."
}

type VerifyOTPRequest struct {
	Phone         string `json:"phone"`
	RememberToken string `json:"remember_token"`
	OtpCode       string `json:"otp_code"`
}

type VerifyOTPResponse struct {
	Phone       string `json:"phone"`
	VerifyToken string `json:"verify_token"`
}

func (VerifyOTPResponse) Message() string {
	return "Successfully OTP is verified"
}

type ConfirmPasswordRequest struct {
	Phone       string `json:"phone"`
	VerifyToken string `json:"verify_token"`
	Pin         string `json:"pin"`
}

type ConfirmPasswordResponse struct {
	Token     string `json:"token"`
	Phone     string `json:"phone"`
	AccountID string `json:"account_id"`
}

func (ConfirmPasswordResponse) Message() string {
	return "Successfully created an account."
}

type LoginRequest struct {
	Phone string `json:"phone"`
	Pin   string `json:"pin"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Phone     string `json:"phone"`
	AccountID string `json:"account_id"`
}

func (LoginResponse) Message() string {
	return "Successfully Logged In."
}

func formatAccountID(id int64) string {
	return strconv.FormatInt(id, 10)
}
