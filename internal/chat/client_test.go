package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

func TestProxyClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		var req models.ProxyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Prompt)
		w.Write([]byte(`[{"generated_text":"hi there"}]`))
	}))
	defer srv.Close()

	reply, err := NewProxyClient(srv.URL).Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
}

func TestProxyClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"Hugging Face API Error: Service Unavailable"}`))
	}))
	defer srv.Close()

	_, err := NewProxyClient(srv.URL).Complete(context.Background(), "hello")
	var pe *ProxyError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusServiceUnavailable, pe.Status)
	assert.Equal(t, "Hugging Face API Error: Service Unavailable", pe.Message)
}

func TestProxyClient_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProxyClient(url).Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Connection error")
}

type stubProvider struct {
	gen *services.Generation
	err error
}

func (s *stubProvider) Name() string        { return "stub" }
func (s *stubProvider) HasCredential() bool { return true }
func (s *stubProvider) Generate(ctx context.Context, prompt string) (*services.Generation, error) {
	return s.gen, s.err
}

func TestProviderCompleter(t *testing.T) {
	ok := NewProviderCompleter(&stubProvider{gen: &services.Generation{StatusCode: 200, Body: []byte(`[{"generated_text":"yes"}]`)}})
	reply, err := ok.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "yes", reply)

	failing := NewProviderCompleter(&stubProvider{err: errors.New("boom")})
	_, err = failing.Complete(context.Background(), "p")
	assert.EqualError(t, err, "boom")
}
