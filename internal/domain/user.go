package domain

// CodeVerified is the registration code sentinel for a verified user.
const CodeVerified = -1

// User represents one registered notification recipient.
//
// JSON field names match the record files written by the previous
// implementation so an existing db directory stays readable.
type User struct {
	UserID           int64  `json:"UserId"`
	ChatID           int64  `json:"ChatId"`
	FirstName        string `json:"FirstName"`
	UserName         string `json:"UserName,omitempty"`
	RegistrationCode int    `json:"RegistrationCode"`
	DoorbellEnabled  bool   `json:"ReceiveDoorbellNotifications"`
	DinnerEnabled    bool   `json:"ReceiveDinnersReadyNotifications"`
	IsAdmin          bool   `json:"IsAdmin"`
}

// Verified reports whether the user has confirmed their registration code.
func (u *User) Verified() bool {
	return u.RegistrationCode == CodeVerified
}

// Preference returns the current flag for a notification category.
func (u *User) Preference(c Category) bool {
	switch c {
	case CategoryDoorbell:
		return u.DoorbellEnabled
	case CategoryDinner:
		return u.DinnerEnabled
	}
	return false
}

// SetPreference updates the flag for a notification category.
func (u *User) SetPreference(c Category, enabled bool) {
	switch c {
	case CategoryDoorbell:
		u.DoorbellEnabled = enabled
	case CategoryDinner:
		u.DinnerEnabled = enabled
	}
}
