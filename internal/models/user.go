package models

// User represents a row in the users table. Accounts are provisioned
// out-of-band; there is no registration endpoint.
type User struct {
	Username        string `json:"username"`
	HashedPassword  string `json:"-"` // Never expose this to the client
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
}

// ColorPalette is the payload for a palette update. All four fields are
// written together in a single statement.
type ColorPalette struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	BackgroundColor string `json:"background_color"`
}
