package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"name" validate:"required,max=5"`
	Guests int    `json:"guests" validate:"min=1"`
}

func TestDecodeJSON(t *testing.T) {
	var req sampleRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ab","guests":2}`))
	require.NoError(t, DecodeJSON(r, &req))
	assert.Equal(t, sampleRequest{Name: "ab", Guests: 2}, req)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "unknown field", body: `{"name":"ab","extra":1}`},
		{name: "malformed", body: `{"name":`},
		{name: "trailing object", body: `{"name":"a"}{"name":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			assert.Error(t, DecodeJSON(r, &sampleRequest{}))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(&sampleRequest{Name: "abc", Guests: 1}))

	err := Validate(&sampleRequest{Name: "too long", Guests: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: max=5")
	assert.Contains(t, err.Error(), "guests: min=1")
}

func TestRespondErrorDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondErrorDetails(w, http.StatusUnprocessableEntity, "нельзя", ErrorMessages([]error{errors.New("a"), nil, errors.New("b")}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Error: "нельзя", Details: []string{"a", "b"}}, body)
}
