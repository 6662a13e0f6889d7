// Package prompt asks a user a question in a channel and waits for a reply that passes validation.
package prompt

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/models"
)

const defaultBufferSize = 8

// Service routes inbound messages to the flows waiting on them
type Service struct {
	config  *Config
	mu      sync.Mutex
	waiters map[models.SessionKey]chan *models.ChannelMessage
}

// New creates a new prompter
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.BufferSize < 1 {
		cfg.BufferSize = defaultBufferSize
	}

	return &Service{
		config:  cfg,
		waiters: make(map[models.SessionKey]chan *models.ChannelMessage),
	}, nil
}

// Deliver hands msg to the flow awaiting its author in its channel.
// It never blocks and reports whether a waiter took the message.
func (s *Service) Deliver(msg *models.ChannelMessage) bool {
	if msg == nil {
		return false
	}

	s.mu.Lock()
	ch, ok := s.waiters[msg.SessionKey()]
	s.mu.Unlock()
	if !ok {
		return false
	}

	select {
	case ch <- msg:
		return true
	default:
		s.config.Logger.Warn("dropping reply, waiter buffer full",
			"channel_id", msg.ChannelID,
			"user_id", msg.AuthorID)
		return false
	}
}

// Waiting reports whether a reply from authorID in channelID is awaited
func (s *Service) Waiting(channelID, authorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.waiters[models.SessionKey{ChannelID: channelID, UserID: authorID}]
	return ok
}

func (s *Service) register(key models.SessionKey) (<-chan *models.ChannelMessage, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.waiters[key]; exists {
		return nil, nil, ErrAlreadyWaiting
	}

	ch := make(chan *models.ChannelMessage, s.config.BufferSize)
	s.waiters[key] = ch

	return ch, func() {
		s.mu.Lock()
		delete(s.waiters, key)
		s.mu.Unlock()
	}, nil
}

// Await posts the prompt and waits for a reply accepted by validate.
// Rejected replies get input.InvalidReply and restart the timeout.
// It returns ok=false when the timeout elapses with no accepted reply.
func Await[T any](ctx context.Context, s *Service, input *AwaitInput, validate func(string) (T, bool)) (T, bool, error) {
	var zero T

	if input == nil {
		return zero, false, errors.New("input cannot be nil")
	}
	if input.Timeout <= 0 {
		return zero, false, ErrInvalidTimeout
	}

	key := models.SessionKey{ChannelID: input.ChannelID, UserID: input.AuthorID}
	replies, unregister, err := s.register(key)
	if err != nil {
		return zero, false, err
	}
	defer unregister()

	if input.Prompt != "" {
		if err := s.config.Messenger.SendMessage(ctx, input.ChannelID, input.Prompt); err != nil {
			return zero, false, err
		}
	}

	for {
		timeout := s.config.Clock.After(input.Timeout)

		select {
		case <-ctx.Done():
			return zero, false, ctx.Err()

		case <-timeout:
			return zero, false, nil

		case msg := <-replies:
			if value, ok := validate(strings.TrimSpace(msg.Content)); ok {
				return value, true, nil
			}

			if input.InvalidReply == "" {
				continue
			}
			if err := s.config.Messenger.SendMessage(ctx, input.ChannelID, input.InvalidReply); err != nil {
				s.config.Logger.Warn("failed to send invalid reply notice",
					"channel_id", input.ChannelID,
					"user_id", input.AuthorID,
					"error", err)
			}
		}
	}
}
