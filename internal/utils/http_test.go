package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.CreatedNote{NoteID: "n-1", NoteTreeID: "t-1"}

	n, err := WriteJSON(w, data, http.StatusCreated)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"note_id":"n-1","note_tree_id":"t-1"}`, w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteJSON_NilAndSlice(t *testing.T) {
	w := httptest.NewRecorder()
	_, err := WriteJSON(w, nil, http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, "null", w.Body.String())

	w = httptest.NewRecorder()
	_, err = WriteJSON(w, []string{"a", "b"}, http.StatusOK)
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "note not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"note not found"}`, w.Body.String())
}
