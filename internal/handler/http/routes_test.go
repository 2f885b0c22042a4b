package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	testSignKey   = "test-sign-key"
	testIssuer    = "go-note-keeper"
	testSessionID = "session-1"
)

type testServer struct {
	client   *utils.HTTPClient
	url      string
	notes    *mock.MockNoteService
	sessions *mock.MockSessionService
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteService(ctrl)
	sessions := mock.NewMockSessionService(ctrl)

	h := NewHandler(&service.Services{NoteService: notes, SessionService: sessions},
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return testServer{
		client:   utils.NewHTTPClient(srv.URL).WithSessionToken(newToken(t, time.Hour)),
		url:      srv.URL,
		notes:    notes,
		sessions: sessions,
	}
}

func newToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(testIssuer, testSessionID, ttl, testSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{TokenSignKey: "k", TokenIssuer: "i"}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, "k", h.tokenSignKey)
	assert.Equal(t, "i", h.tokenIssuer)
}

func TestAuth_RejectsRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "no header", header: "", wantMsg: ErrEmptyAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Basic abc", wantMsg: ErrInvalidAuthorizationHeader.Error()},
		{name: "garbage token", header: "Bearer not-a-jwt", wantMsg: http.StatusText(http.StatusUnauthorized)},
		{name: "expired token", header: "Bearer " + newToken(t, -time.Minute), wantMsg: ErrTokenIsExpired.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body utils.ErrorResponse
			req := utils.NewHTTPClient(ts.url).R().SetError(&body)
			if tt.header != "" {
				req.SetHeader("Authorization", tt.header)
			}

			resp, err := req.Get("/api/notes/n-1")
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestAuth_RejectsForeignSignature(t *testing.T) {
	ts := newTestServer(t)

	token, err := utils.GenerateJWTToken(testIssuer, testSessionID, time.Hour, "another-key")
	require.NoError(t, err)

	resp, err := utils.NewHTTPClient(ts.url).WithSessionToken(token.SignedString).R().Get("/api/notes/n-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestGetNote(t *testing.T) {
	ts := newTestServer(t)

	loadTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ts.notes.EXPECT().GetNoteDetail(gomock.Any(), "n-1", testSessionID).Return(models.NoteDetail{
		Note:     models.Note{NoteID: "n-1", Title: "A", Text: "B"},
		Images:   []models.Image{{ImageID: "i-1", NoteID: "n-1", Name: "a.png", Mime: "image/png"}},
		LoadTime: loadTime,
	}, nil)

	var raw map[string]json.RawMessage
	resp, err := ts.client.R().SetResult(&raw).Get("/api/notes/n-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, raw, "detail")
	assert.Contains(t, raw, "images")
	assert.Contains(t, raw, "load_time")

	var note models.Note
	require.NoError(t, json.Unmarshal(raw["detail"], &note))
	assert.Equal(t, "A", note.Title)
	assert.NotContains(t, string(raw["detail"]), "is_deleted")
}

func TestGetNote_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantMsg: service.ErrNotFound.Error()},
		{name: "protected", err: service.ErrProtectedAccessDenied, wantStatus: http.StatusForbidden, wantMsg: service.ErrProtectedAccessDenied.Error()},
		{name: "invalid input", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantMsg: service.ErrInvalidDataProvided.Error()},
		{name: "crypto failure hidden", err: crypto.ErrCrypto, wantStatus: http.StatusInternalServerError, wantMsg: "Internal Server Error"},
		{name: "storage failure hidden", err: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantMsg: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.notes.EXPECT().GetNoteDetail(gomock.Any(), "n-1", testSessionID).Return(models.NoteDetail{}, tt.err)

			var body utils.ErrorResponse
			resp, err := ts.client.R().SetError(&body).Get("/api/notes/n-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode())
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestCreateNote(t *testing.T) {
	ts := newTestServer(t)

	localTime := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	ts.notes.EXPECT().CreateNewNote(gomock.Any(), "p-1", models.NewNote{
		Title: "A", Text: "B", Target: models.TargetAfter, TargetNoteTreeID: "t-sib",
	}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.NewNote, reqCtx models.RequestContext) (models.CreatedNote, error) {
			assert.Equal(t, testSessionID, reqCtx.SessionID)
			assert.Equal(t, "desktop-1", reqCtx.SourceID)
			assert.True(t, localTime.Equal(reqCtx.Time))
			return models.CreatedNote{NoteID: "n-1", NoteTreeID: "t-1"}, nil
		})

	var created models.CreatedNote
	resp, err := ts.client.R().
		SetHeader(sourceIDHeader, "desktop-1").
		SetHeader(localTimeHeader, localTime.Format(time.RFC3339)).
		SetBody(models.NewNote{Title: "A", Text: "B", Target: models.TargetAfter, TargetNoteTreeID: "t-sib"}).
		SetResult(&created).
		Post("/api/notes/p-1/children")
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, models.CreatedNote{NoteID: "n-1", NoteTreeID: "t-1"}, created)
}

func TestCreateNote_Errors(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		ts := newTestServer(t)

		resp, err := ts.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"title":`).
			Post("/api/notes/p-1/children")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("invalid parent", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notes.EXPECT().CreateNewNote(gomock.Any(), "ghost", gomock.Any(), gomock.Any()).
			Return(models.CreatedNote{}, service.ErrInvalidParent)

		resp, err := ts.client.R().SetBody(models.NewNote{Title: "x"}).Post("/api/notes/ghost/children")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("bad local time falls back to zero", func(t *testing.T) {
		ts := newTestServer(t)
		ts.notes.EXPECT().CreateNewNote(gomock.Any(), "p-1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ models.NewNote, reqCtx models.RequestContext) (models.CreatedNote, error) {
				assert.True(t, reqCtx.Time.IsZero())
				return models.CreatedNote{NoteID: "n-1", NoteTreeID: "t-1"}, nil
			})

		resp, err := ts.client.R().
			SetHeader(localTimeHeader, "yesterday").
			SetBody(models.NewNote{Title: "x"}).
			Post("/api/notes/p-1/children")
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode())
	})
}

func TestUpdateNote(t *testing.T) {
	ts := newTestServer(t)

	title := "renamed"
	ts.notes.EXPECT().UpdateNote(gomock.Any(), "n-1", models.NoteUpdate{Title: &title}, gomock.Any()).Return(nil)

	resp, err := ts.client.R().SetBody(map[string]string{"title": "renamed"}).Put("/api/notes/n-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{}`, resp.String())
}

func TestDeleteNote(t *testing.T) {
	ts := newTestServer(t)

	ts.notes.EXPECT().DeleteNote(gomock.Any(), "t-1", gomock.Any()).Return(nil)
	resp, err := ts.client.R().Delete("/api/notes/t-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{}`, resp.String())

	ts.notes.EXPECT().DeleteNote(gomock.Any(), "t-2", gomock.Any()).Return(service.ErrNotFound)
	resp, err = ts.client.R().Delete("/api/notes/t-2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestSearchNotes(t *testing.T) {
	ts := newTestServer(t)

	ts.notes.EXPECT().Search(gomock.Any(), "milk").Return([]string{"n-1", "n-2"}, nil)
	var ids []string
	resp, err := ts.client.R().SetQueryParam("search", "milk").SetResult(&ids).Get("/api/notes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []string{"n-1", "n-2"}, ids)

	ts.notes.EXPECT().Search(gomock.Any(), "").Return(nil, nil)
	resp, err = ts.client.R().Get("/api/notes")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, resp.String())
}

func TestAttachImage(t *testing.T) {
	ts := newTestServer(t)

	image := models.NewImage{Name: "a.png", Mime: "image/png", Data: []byte{0x89, 0x50, 0x4e, 0x47}}
	ts.notes.EXPECT().AttachImage(gomock.Any(), "n-1", image, gomock.Any()).Return("i-1", nil)

	resp, err := ts.client.R().SetBody(image).Post("/api/notes/n-1/images")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.JSONEq(t, `{"image_id":"i-1"}`, resp.String())
}

func TestSessionDataKey(t *testing.T) {
	ts := newTestServer(t)

	key := []byte("0123456789abcdef0123456789abcdef")
	ts.sessions.EXPECT().UnlockSession(gomock.Any(), testSessionID, key).Return(nil)
	resp, err := ts.client.R().SetBody(models.SessionUnlock{DataKey: key}).Put("/api/session/data-key")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	ts.sessions.EXPECT().UnlockSession(gomock.Any(), testSessionID, []byte("short")).
		Return(service.ErrInvalidDataProvided)
	resp, err = ts.client.R().SetBody(models.SessionUnlock{DataKey: []byte("short")}).Put("/api/session/data-key")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	ts.sessions.EXPECT().LockSession(gomock.Any(), testSessionID).Return(nil)
	resp, err = ts.client.R().Delete("/api/session/data-key")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestCheckHTTPMethod_UnsupportedMethodIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.client.R().Patch("/api/notes/n-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = ts.client.R().Post("/api/notes/n-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestWithTraceID(t *testing.T) {
	ts := newTestServer(t)
	ts.notes.EXPECT().Search(gomock.Any(), "").Return(nil, nil).Times(2)

	resp, err := ts.client.R().SetHeader(traceIDHeader, "trace-1").Get("/api/notes")
	require.NoError(t, err)
	assert.Equal(t, "trace-1", resp.Header().Get(traceIDHeader))

	resp, err = ts.client.R().Get("/api/notes")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header().Get(traceIDHeader))
}

func TestWithTraceID_StoresTraceIDInContext(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = utils.GetTraceIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set(traceIDHeader, "trace-2")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "trace-2", got)
}
