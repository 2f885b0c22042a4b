package session

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/data_key_store_mock.go -package=mock

// DataKeyStore resolves the data key bound to a session.
//
// The second return value is false when the session never unlocked protected
// content or its key has expired. Callers must treat that as access denied,
// never as an empty key.
type DataKeyStore interface {
	GetDataKey(sessionID string) ([]byte, bool)
}

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// DataKeyBinder manages the lifecycle of session data keys.
type DataKeyBinder interface {
	Bind(sessionID string, key []byte)
	Evict(sessionID string)
}
