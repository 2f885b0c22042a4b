package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/session"
)

type sessionService struct {
	dataKeys session.DataKeyBinder

	logger *logger.Logger
}

func NewSessionService(dataKeys session.DataKeyBinder, logger *logger.Logger) SessionService {
	return &sessionService{
		dataKeys: dataKeys,
		logger:   logger,
	}
}

// UnlockSession binds dataKey to sessionID. A previous key of the same
// session is replaced.
func (s *sessionService) UnlockSession(ctx context.Context, sessionID string, dataKey []byte) error {
	if sessionID == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidDataProvided)
	}
	if len(dataKey) < crypto.MinKeySize {
		return fmt.Errorf("%w: data key must be at least %d bytes", ErrInvalidDataProvided, crypto.MinKeySize)
	}

	s.dataKeys.Bind(sessionID, dataKey)
	logger.FromContext(ctx).Info().Str("func", "sessionService.UnlockSession").Msg("session unlocked")
	return nil
}

func (s *sessionService) LockSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidDataProvided)
	}

	s.dataKeys.Evict(sessionID)
	logger.FromContext(ctx).Info().Str("func", "sessionService.LockSession").Msg("session locked")
	return nil
}
