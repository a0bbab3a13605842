package dto

// TwoFactorRequest represents the request body for creating a second factor
type TwoFactorRequest struct {
	AuthenticatableType string         `json:"authenticatable_type" binding:"required"`
	AuthenticatableID   string         `json:"authenticatable_id" binding:"required"`
	Label               string         `json:"label"`
	Attributes          map[string]any `json:"attributes"`
}

// TwoFactorResponse is the serialized second factor, shared secret excluded
type TwoFactorResponse map[string]any
