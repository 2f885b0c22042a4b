package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const sourceIDHeader = "X-Source-ID"

type httpNoteClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNoteClient constructs an HTTP implementation of [NoteClient].
// address may omit the scheme, "localhost:8080" becomes
// "http://localhost:8080". A non-positive timeout keeps the client default.
func NewHTTPNoteClient(address string, timeout time.Duration, logger *logger.Logger) (NoteClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid note store address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpNoteClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpNoteClient) SetToken(token string) {
	h.client.WithSessionToken(strings.TrimSpace(token))
}

func (h *httpNoteClient) SetSourceID(sourceID string) {
	h.client.SetHeader(sourceIDHeader, sourceID)
}

func (h *httpNoteClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpNoteClient) GetNote(ctx context.Context, noteID string) (models.NoteDetail, error) {
	var detail models.NoteDetail

	resp, err := h.request(ctx).
		SetPathParam("id", noteID).
		SetResult(&detail).
		Get("/api/notes/{id}")
	if err != nil {
		return models.NoteDetail{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteDetail{}, err
	}

	return detail, nil
}

func (h *httpNoteClient) CreateNote(ctx context.Context, parentNoteID string, note models.NewNote) (models.CreatedNote, error) {
	var created models.CreatedNote

	resp, err := h.request(ctx).
		SetPathParam("id", parentNoteID).
		SetBody(note).
		SetResult(&created).
		Post("/api/notes/{id}/children")
	if err != nil {
		return models.CreatedNote{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedNote{}, err
	}

	h.logger.Debug().Str("func", "httpNoteClient.CreateNote").Str("note_id", created.NoteID).Msg("note created")
	return created, nil
}

func (h *httpNoteClient) UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) error {
	resp, err := h.request(ctx).
		SetPathParam("id", noteID).
		SetBody(update).
		Put("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpNoteClient) DeleteNote(ctx context.Context, noteTreeID string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", noteTreeID).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpNoteClient) Search(ctx context.Context, query string) ([]string, error) {
	var noteIDs []string

	resp, err := h.request(ctx).
		SetQueryParam("search", query).
		SetResult(&noteIDs).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return noteIDs, nil
}

func (h *httpNoteClient) AttachImage(ctx context.Context, noteID string, image models.NewImage) (string, error) {
	var created struct {
		ImageID string `json:"image_id"`
	}

	resp, err := h.request(ctx).
		SetPathParam("id", noteID).
		SetBody(image).
		SetResult(&created).
		Post("/api/notes/{id}/images")
	if err != nil {
		return "", fmt.Errorf("attach image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ImageID, nil
}

func (h *httpNoteClient) UnlockSession(ctx context.Context, dataKey []byte) error {
	resp, err := h.request(ctx).
		SetBody(models.SessionUnlock{DataKey: dataKey}).
		Put("/api/session/data-key")
	if err != nil {
		return fmt.Errorf("unlock session request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpNoteClient) LockSession(ctx context.Context) error {
	resp, err := h.request(ctx).Delete("/api/session/data-key")
	if err != nil {
		return fmt.Errorf("lock session request: %w", err)
	}
	return mapHTTPError(resp)
}
