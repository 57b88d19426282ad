package citation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDOI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.1000/xyz123", "10.1000/xyz123"},
		{"https://doi.org/10.1000/xyz123", "10.1000/xyz123"},
		{"http://dx.doi.org/10.1000/xyz123", "10.1000/xyz123"},
		{"doi:10.1000/xyz123", "10.1000/xyz123"},
		{"  10.1000/xyz123 ", "10.1000/xyz123"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDOI(tt.in), tt.in)
	}
}

func TestFetchCount(t *testing.T) {
	var gotPath, gotMailto string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMailto = r.URL.Query().Get("mailto")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": {"is-referenced-by-count": 42, "title": ["A Study"]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "owner@example.com", 5*time.Second)

	count, err := client.FetchCount(context.Background(), "https://doi.org/10.1000/xyz123")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, "/works/10.1000%2Fxyz123", gotPath)
	assert.Equal(t, "owner@example.com", gotMailto)
}

func TestFetchCountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)

	_, err := client.FetchCount(context.Background(), "10.1000/missing")
	assert.Error(t, err)
}

func TestFetchCountEmptyDOI(t *testing.T) {
	client := NewClient("https://api.crossref.org", "", 5*time.Second)

	_, err := client.FetchCount(context.Background(), "  ")
	assert.Error(t, err)
}
