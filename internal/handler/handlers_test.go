package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
		App:    config.App{TokenSignKey: "sign"},
	}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
