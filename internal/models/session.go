package models

// Credentials are sent to the catalog on LogIn
type Credentials struct {
	Language         string // Interface language reported to the catalog (e.g., "en")
	ClientIdentifier string // Registered user agent of the application
}

// Session is the authenticated state held by one catalog client
type Session struct {
	Token         string
	Language      string
	Authenticated bool
}
