package models

// Usuario is the identity returned by the usuario service. ID 0 is the
// reserved sentinel for "no such user" and is a valid return value, not an
// error of the resolver.
type Usuario struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// UsuarioSentinelID marks an unresolved identity.
const UsuarioSentinelID int64 = 0
