package dto

// CredentialResponse is the serialized credential, hidden attributes removed
type CredentialResponse map[string]any

// CredentialDeletedResponse confirms a removed credential
type CredentialDeletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
