package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

// ProxyError is a non-2xx answer from the chat proxy.
type ProxyError struct {
	Status  int
	Message string
}

func (e *ProxyError) Error() string { return e.Message }

// ProxyClient calls POST /api/chat on a running server.
type ProxyClient struct {
	client *resty.Client
}

func NewProxyClient(baseURL string) *ProxyClient {
	return &ProxyClient{
		client: resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
	}
}

func (p *ProxyClient) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := p.client.R().
		SetContext(ctx).
		SetBody(models.ProxyRequest{Prompt: prompt}).
		Post("/api/chat")
	if err != nil {
		return "", fmt.Errorf("Connection error: %w", err)
	}

	if !res.IsSuccess() {
		var body models.ErrorResponse
		if err := json.Unmarshal(res.Body(), &body); err != nil || body.Error == "" {
			body.Error = res.Status()
		}
		return "", &ProxyError{Status: res.StatusCode(), Message: body.Error}
	}

	return services.ParseGeneratedText(res.Body())
}

// ProviderCompleter calls an inference provider directly, skipping the HTTP hop.
type ProviderCompleter struct {
	provider services.InferenceProvider
}

func NewProviderCompleter(provider services.InferenceProvider) *ProviderCompleter {
	return &ProviderCompleter{provider: provider}
}

func (p *ProviderCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	gen, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return services.ParseGeneratedText(gen.Body)
}
