package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type document struct {
		ID   string  `json:"id"`
		File *string `json:"file_url"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "object", data: map[string]string{"key": "value"}, status: http.StatusOK, wantBody: `{"key":"value"}`},
		{name: "error status", data: map[string]string{"error": "not found"}, status: http.StatusNotFound, wantBody: `{"error":"not found"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: `null`},
		{name: "empty slice", data: []document{}, status: http.StatusOK, wantBody: `[]`},
		{name: "null field", data: document{ID: "d1"}, status: http.StatusCreated, wantBody: `{"id":"d1","file_url":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnencodableData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, fallbackBody, w.Body.String())
}
