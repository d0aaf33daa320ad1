package authenticator

type TokenEngine[T any] interface {
	// Generate creates a token string carrying the given object. The sub is
	// the subject of token.
	Generate(sub string, obj T) (string, error)

	// Verify checks the signature and expiration of token, then returns the
	// carried object.
	Verify(token string) (T, error)
}
