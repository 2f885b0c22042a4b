package models

// SessionUnlock is the body of a data key binding request. DataKey travels
// base64-encoded in JSON.
type SessionUnlock struct {
	DataKey []byte `json:"data_key"`
}
