// Package validator validates request structs before they reach the
// business logic.
//
// Usecases depend on the Validator interface; the concrete implementation is
// go-playground/validator v10 with English translations plus the custom pin
// and otp rules the phone flows need.
package validator
