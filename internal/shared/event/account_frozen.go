package event

const AccountFrozenDestination string = "auth_account_frozen"

// AccountFrozenMessage notifies operations that an account was locked after
// repeated wrong PIN attempts.
type AccountFrozenMessage struct {
	AccountID int64  `json:"account_id"`
	Phone     string `json:"phone"`
}
