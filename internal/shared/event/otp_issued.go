package event

const OtpIssuedDestination string = "auth_otp_issued"
const OtpIssuedDestinationConsumerDispatcher string = "auth_otp_issued_dispatcher"

// OtpIssuedMessage is consumed by the external SMS dispatcher. The code
// rides along so delivery stays outside this service.
type OtpIssuedMessage struct {
	Phone        string `json:"phone"`
	OtpCode      string `json:"otp_code"`
	RequestCount int16  `json:"request_count"`
}
