package entities

// Identity é a identidade autenticada extraída de um token
type Identity struct {
	UserID uint
	Email  string
}
