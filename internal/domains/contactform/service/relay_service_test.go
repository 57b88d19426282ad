package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/domains/contactform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() contactform.SubmitRequest {
	return contactform.SubmitRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I read your paper on crop yield prediction.",
	}
}

func TestSubmitRelaysFormEncoded(t *testing.T) {
	var gotPath, gotContentType, gotEmail, gotPhone string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotEmail = r.PostFormValue("email")
		gotPhone = r.PostFormValue("phone")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewRelayService(server.URL, "abc123", 5*time.Second)

	req := validRequest()
	req.Phone = "+880123456789"
	err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/f/abc123", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "jane@example.com", gotEmail)
	assert.Equal(t, "+880123456789", gotPhone)
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("invalid submissions must never reach the relay")
	}))
	defer server.Close()

	svc := NewRelayService(server.URL, "abc123", 5*time.Second)

	tests := []struct {
		name string
		mut  func(*contactform.SubmitRequest)
	}{
		{"missing name", func(r *contactform.SubmitRequest) { r.Name = "" }},
		{"missing email", func(r *contactform.SubmitRequest) { r.Email = "" }},
		{"malformed email", func(r *contactform.SubmitRequest) { r.Email = "not-an-email" }},
		{"missing message", func(r *contactform.SubmitRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mut(&req)
			assert.Error(t, svc.Submit(context.Background(), req))
		})
	}
}

func TestSubmitProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewRelayService(server.URL, "abc123", 5*time.Second)

	err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, contactform.ErrRelayFailed)
}
