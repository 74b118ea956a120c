package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"portfolio-backend/internal/models"
)

// Fixed generation parameters sent with every prompt.
const (
	MaxNewTokens   = 250
	Temperature    = 0.7
	ReturnFullText = false
)

// MissingAPIKeyMessage is reported when no upstream credential is configured.
const MissingAPIKeyMessage = "Server Configuration Error: Missing API Key"

var (
	ErrInvalidUpstreamBody = errors.New("upstream returned a non-JSON body")
	ErrEmptyGeneration     = errors.New("upstream returned no generated text")
	ErrSlotTimeout         = errors.New("timeout waiting for inference slot")
)

// Generation is the raw upstream reply relayed to the caller.
type Generation struct {
	StatusCode int
	Body       []byte
}

// InferenceProvider forwards one prompt to a hosted text-generation model.
type InferenceProvider interface {
	Name() string
	HasCredential() bool
	Generate(ctx context.Context, prompt string) (*Generation, error)
}

// slotPool caps concurrent upstream calls.
type slotPool chan struct{}

func newSlotPool(size int) slotPool {
	if size <= 0 {
		size = 1
	}
	p := make(slotPool, size)
	for i := 0; i < size; i++ {
		p <- struct{}{}
	}
	return p
}

// acquire blocks until a slot is available. A positive wait bounds the block;
// zero waits for as long as ctx allows.
func (p slotPool) acquire(ctx context.Context, wait time.Duration) error {
	var expired <-chan time.Time
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-p:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-expired:
		return ErrSlotTimeout
	}
}

func (p slotPool) release() {
	p <- struct{}{}
}

type HuggingFaceOptions struct {
	BaseURL     string
	Model       string
	APIKey      string
	Concurrency int
	MaxRetries  int
	Timeout     time.Duration
}

type HuggingFaceProvider struct {
	client  *resty.Client
	apiKey  string
	model   string
	slots   slotPool
	timeout time.Duration
}

func NewHuggingFaceProvider(opts HuggingFaceOptions) *HuggingFaceProvider {
	client := resty.New().SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.MaxRetries > 0 {
		// resty backs off exponentially with jitter between attempts
		client.SetRetryCount(opts.MaxRetries).
			SetRetryWaitTime(500 * time.Millisecond).
			SetRetryMaxWaitTime(5 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
			})
	}

	return &HuggingFaceProvider{
		client:  client,
		apiKey:  opts.APIKey,
		model:   opts.Model,
		slots:   newSlotPool(opts.Concurrency),
		timeout: opts.Timeout,
	}
}

func (p *HuggingFaceProvider) Name() string { return "huggingface" }

func (p *HuggingFaceProvider) HasCredential() bool { return p.apiKey != "" }

func (p *HuggingFaceProvider) Generate(ctx context.Context, prompt string) (*Generation, error) {
	if !p.HasCredential() {
		return nil, &ConfigError{Message: MissingAPIKeyMessage}
	}
	if err := p.slots.acquire(ctx, p.timeout); err != nil {
		return nil, err
	}
	defer p.slots.release()

	body := models.UpstreamRequest{
		Inputs: prompt,
		Parameters: models.GenerationParameters{
			MaxNewTokens:   MaxNewTokens,
			Temperature:    Temperature,
			ReturnFullText: ReturnFullText,
		},
	}

	res, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/models/" + p.model)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}

	if !res.IsSuccess() {
		log.Printf("Hugging Face API Error: status=%d body=%s", res.StatusCode(), res.String())
		return nil, &UpstreamError{
			Status:  res.StatusCode(),
			Message: "Hugging Face API Error: " + statusText(res),
		}
	}

	if !json.Valid(res.Body()) {
		return nil, ErrInvalidUpstreamBody
	}

	return &Generation{StatusCode: res.StatusCode(), Body: res.Body()}, nil
}

func statusText(res *resty.Response) string {
	if text := http.StatusText(res.StatusCode()); text != "" {
		return text
	}
	return res.Status()
}

// ParseGeneratedText reads the reply text out of an upstream body. It accepts the
// usual array shape, a single object, and the provider's {"error": ...} object.
func ParseGeneratedText(body []byte) (string, error) {
	var list []models.GeneratedText
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", ErrEmptyGeneration
		}
		return list[0].GeneratedText, nil
	}

	var obj struct {
		GeneratedText *string `json:"generated_text"`
		Error         string  `json:"error"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return "", ErrInvalidUpstreamBody
	}
	if obj.Error != "" {
		return "", errors.New(obj.Error)
	}
	if obj.GeneratedText == nil {
		return "", ErrEmptyGeneration
	}
	return *obj.GeneratedText, nil
}
