package kvstore

// Persisted key names. They are shared with existing installs and must not change.
const (
	FlightsKey       = "FLYAIR_FLIGHTS"
	LastUpdateKey    = "FLYAIR_LAST_UPDATE"
	ReservationsKey  = "FLYAIR_RESERVATIONS"
	UserTokenKey     = "FLYAIR_USER_TOKEN"
	AccountsKey      = "FLYAIR_ACCOUNTS"
	ProfilesKey      = "FLYAIR_PROFILES"
	PasswordResetKey = "FLYAIR_PASSWORD_RESET"
)

// Scoped builds a per-entity key such as FLYAIR_PROFILES:<uid>.
func Scoped(prefix, id string) string {
	return prefix + ":" + id
}
