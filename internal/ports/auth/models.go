package auth

// Claims representa la identidad autenticada de quien invoca una transición.
type Claims struct {
	AccountID string
	Email     string
}
