package scope

// Manager issues and verifies authenticated-identity tokens.
type Manager interface {
	CreateToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

// NewManager returns a Manager signing tokens with the given HS256 secret.
func NewManager(secretKey, issuer string) Manager {
	return &implManager{
		secretKey: secretKey,
		issuer:    issuer,
	}
}
