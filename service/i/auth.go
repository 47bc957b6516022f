package i

// Authenticator issues API tokens to known clients.
type Authenticator interface {
	// IssueToken returns a signed token when the credentials match.
	IssueToken(clientID, clientSecret string) (string, error)
}
