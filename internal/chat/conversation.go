package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/portfolio"
)

const (
	Greeting      = "Hello! I'm Saad's AI Assistant. Ask me about his projects, skills, or experience."
	WarningPrefix = "⚠️ "
)

// ErrBusy is returned when a submission arrives while another is still in flight.
var ErrBusy = errors.New("a reply is still in progress")

// Completer sends a fully built prompt and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Snapshot is a copy of the conversation state handed to observers.
type Snapshot struct {
	Messages []models.ChatMessage `json:"messages"`
	Loading  bool                 `json:"loading"`
}

// Conversation holds one visible chat and allows a single request in flight.
type Conversation struct {
	mu        sync.Mutex
	messages  []models.ChatMessage
	input     string
	loading   bool
	completer Completer
	contextFn func() string
	onChange  func(Snapshot)
}

type Option func(*Conversation)

// WithContext replaces the prompt context builder.
func WithContext(fn func() string) Option {
	return func(c *Conversation) { c.contextFn = fn }
}

// WithObserver registers fn to receive a snapshot after every state change.
// fn runs without the conversation lock held.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Conversation) { c.onChange = fn }
}

func NewConversation(completer Completer, opts ...Option) *Conversation {
	c := &Conversation{
		messages:  []models.ChatMessage{{Role: models.RoleAI, Text: Greeting}},
		completer: completer,
		contextFn: portfolio.ContextBlock,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conversation) SetInput(text string) {
	c.mu.Lock()
	c.input = text
	c.mu.Unlock()
}

func (c *Conversation) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

func (c *Conversation) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatMessage(nil), c.messages...)
}

// SubmitInput submits whatever is in the input field.
func (c *Conversation) SubmitInput(ctx context.Context) error {
	return c.Submit(ctx, c.Input())
}

// Submit sends text as the next user turn. Blank text is ignored. While a reply is
// pending further submissions fail with ErrBusy and leave the conversation untouched.
// Failures are never returned; they become a warning bubble from the assistant.
func (c *Conversation) Submit(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.messages = append(c.messages, models.ChatMessage{Role: models.RoleUser, Text: text})
	c.input = ""
	c.loading = true
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	prompt := portfolio.BuildPrompt(c.contextFn(), text)
	reply, err := c.completer.Complete(ctx, prompt)

	var answer string
	if err != nil {
		answer = WarningPrefix + err.Error()
	} else {
		answer = portfolio.StripEcho(reply)
	}

	c.mu.Lock()
	c.messages = append(c.messages, models.ChatMessage{Role: models.RoleAI, Text: answer})
	c.loading = false
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	return nil
}

// Reset drops everything but the greeting. It is refused while a reply is pending.
func (c *Conversation) Reset() error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrBusy
	}
	c.messages = []models.ChatMessage{{Role: models.RoleAI, Text: Greeting}}
	c.input = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

func (c *Conversation) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Conversation) snapshotLocked() Snapshot {
	return Snapshot{
		Messages: append([]models.ChatMessage(nil), c.messages...),
		Loading:  c.loading,
	}
}

func (c *Conversation) notify(s Snapshot) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
