// Package judgment runs the !julgar flow: pick a target, pick an action,
// pick a lucky number, then apply the action to whoever the draw points at.
package judgment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/uuid"
	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/KirkDiggler/voicewatcher/internal/repositories/session"
	"github.com/KirkDiggler/voicewatcher/internal/services/moderation"
	"github.com/KirkDiggler/voicewatcher/internal/services/prompt"
)

// Commands recognized in the judgment channel
const (
	CommandJulgar = "!julgar"
	CommandRules  = "!julgar-regras"
	CommandHelp   = "!help"
)

const defaultPromptTimeout = 60 * time.Second

// Service is the judgment orchestrator
type Service struct {
	config     *Config
	logger     *slog.Logger
	candidates *CandidateSelector
	outcomes   *OutcomeResolver

	flows sync.WaitGroup
}

// flow carries one invocation through its states
type flow struct {
	id    string
	msg   *models.ChannelMessage
	state State
	log   *slog.Logger
}

// New creates a new judgment orchestrator
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.JudgmentChannelID == "" {
		return nil, errors.New("judgment channel ID is required")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.Directory == nil {
		return nil, errors.New("directory cannot be nil")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.Prompter == nil {
		return nil, errors.New("prompter cannot be nil")
	}
	if cfg.Executor == nil {
		return nil, errors.New("executor cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.PromptTimeout <= 0 {
		cfg.PromptTimeout = defaultPromptTimeout
	}
	if cfg.CandidateLimit < 1 {
		cfg.CandidateLimit = DefaultCandidateLimit
	}

	return &Service{
		config:     cfg,
		logger:     cfg.Logger.With("component", "judgment"),
		candidates: NewCandidateSelector(cfg.Directory),
		outcomes:   NewOutcomeResolver(cfg.Roller, cfg.Directory),
	}, nil
}

// ChannelID returns the text channel commands are accepted in
func (s *Service) ChannelID() string {
	return s.config.JudgmentChannelID
}

// HandleMessage answers the help and rules commands and starts !julgar flows.
// A flow runs on its own goroutine once its session is acquired and stops early
// when ctx is cancelled. Replies reach it through the prompter, not through this method.
func (s *Service) HandleMessage(ctx context.Context, msg *models.ChannelMessage) {
	if msg == nil || msg.AuthorIsBot || msg.ChannelID != s.config.JudgmentChannelID {
		return
	}

	switch strings.ToLower(strings.TrimSpace(msg.Content)) {
	case CommandHelp:
		s.send(ctx, msg.ChannelID, helpText)
	case CommandRules:
		s.send(ctx, msg.ChannelID, rulesText)
	case CommandJulgar:
		if msg.GuildID == "" {
			return
		}
		s.startFlow(ctx, msg)
	}
}

// Wait blocks until running flows have completed
func (s *Service) Wait() {
	s.flows.Wait()
}

func (s *Service) startFlow(ctx context.Context, msg *models.ChannelMessage) {
	key := msg.SessionKey()
	id := s.config.UUID.NewID()

	acquired, err := s.config.Sessions.TryAcquire(ctx, &session.TryAcquireInput{Key: key, Owner: id})
	if err != nil {
		s.logger.Error("failed to acquire judgment session",
			"guild_id", msg.GuildID,
			"channel_id", msg.ChannelID,
			"user_id", msg.AuthorID,
			"error", err)
		s.send(ctx, msg.ChannelID, failureText(msg.AuthorID))
		return
	}
	if !acquired {
		s.send(ctx, msg.ChannelID, alreadyInProgressText(msg.AuthorID))
		return
	}

	f := &flow{
		id:    id,
		msg:   msg,
		state: StateIdle,
	}
	f.log = s.logger.With(
		"flow_id", f.id,
		"guild_id", msg.GuildID,
		"channel_id", msg.ChannelID,
		"user_id", msg.AuthorID)

	s.flows.Add(1)
	go func() {
		defer s.flows.Done()
		s.run(ctx, f)
	}()
}

// run drives f to completion. The session is released on every exit path.
func (s *Service) run(ctx context.Context, f *flow) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("judgment flow panicked", "state", f.state, "panic", fmt.Sprint(r))
		}

		s.transition(f, StateCompleted)
		releaseCtx := context.WithoutCancel(ctx)
		if err := s.config.Sessions.Release(releaseCtx, &session.ReleaseInput{
			Key:   f.msg.SessionKey(),
			Owner: f.id,
		}); err != nil {
			f.log.Error("failed to release judgment session", "error", err)
		}
	}()

	if s.judge(ctx, f) {
		f.log.Info("julgar command processed", "message_id", f.msg.MessageID)
	}
}

// judge walks the states and reports whether an action was applied
func (s *Service) judge(ctx context.Context, f *flow) bool {
	msg := f.msg
	author := msg.AuthorID

	s.transition(f, StateSelectingTarget)

	candidates, err := s.candidates.Select(ctx, msg.GuildID, s.config.CandidateLimit)
	if err != nil {
		f.log.Error("failed to list candidates", "error", err)
		s.send(ctx, msg.ChannelID, failureText(author))
		return false
	}
	if len(candidates) == 0 {
		s.send(ctx, msg.ChannelID, noCandidatesText(author))
		return false
	}

	s.refresh(ctx, f)
	index, ok, err := prompt.Await(ctx, s.config.Prompter, &prompt.AwaitInput{
		ChannelID:    msg.ChannelID,
		AuthorID:     author,
		Prompt:       targetPromptText(author, candidates),
		Timeout:      s.config.PromptTimeout,
		InvalidReply: targetInvalidText(author, len(candidates)),
	}, ParseIndex(len(candidates)))
	if !s.answered(ctx, f, ok, err, targetTimeoutText(author)) {
		return false
	}
	selected := candidates[index-1]

	s.send(ctx, msg.ChannelID, targetChosenText(author, selected))
	s.transition(f, StateSelectingAction)

	s.refresh(ctx, f)
	action, ok, err := prompt.Await(ctx, s.config.Prompter, &prompt.AwaitInput{
		ChannelID:    msg.ChannelID,
		AuthorID:     author,
		Prompt:       actionPromptText(author, selected),
		Timeout:      s.config.PromptTimeout,
		InvalidReply: actionInvalidText(author),
	}, ParseAction)
	if !s.answered(ctx, f, ok, err, actionTimeoutText(author)) {
		return false
	}

	s.transition(f, StateSelectingNumber)

	s.refresh(ctx, f)
	chosen, ok, err := prompt.Await(ctx, s.config.Prompter, &prompt.AwaitInput{
		ChannelID:    msg.ChannelID,
		AuthorID:     author,
		Prompt:       numberPromptText(author),
		Timeout:      s.config.PromptTimeout,
		InvalidReply: numberInvalidText(author),
	}, ParseLuckyNumber)
	if !s.answered(ctx, f, ok, err, numberTimeoutText(author)) {
		return false
	}

	s.transition(f, StateResolving)

	draw := s.outcomes.Resolve(chosen)
	actor, err := s.outcomes.Actor(ctx, msg.GuildID, author)
	if err != nil {
		f.log.Error("failed to resolve command author", "error", err)
		s.send(ctx, msg.ChannelID, failureText(author))
		return false
	}
	target := s.outcomes.Target(draw, selected, actor)

	f.log.Debug("outcome drawn",
		"chosen", draw.Chosen,
		"rolled", draw.Rolled,
		"matched", draw.Matched,
		"action", action,
		"target_id", target.ID)

	s.send(ctx, msg.ChannelID, luckText(draw))

	result := s.config.Executor.Apply(ctx, &moderation.ApplyInput{
		GuildID: msg.GuildID,
		Actor:   actor,
		Target:  target,
		Action:  action,
	})
	s.send(ctx, msg.ChannelID, result.Message)

	return result.Success
}

// answered handles the non-success outcomes of a prompt and reports whether the flow continues
func (s *Service) answered(ctx context.Context, f *flow, ok bool, err error, timeoutText string) bool {
	if err != nil {
		f.log.Error("prompt failed", "state", f.state, "error", err)
		return false
	}
	if !ok {
		f.log.Debug("prompt timed out", "state", f.state)
		s.send(ctx, f.msg.ChannelID, timeoutText)
		return false
	}
	return true
}

// refresh extends the session lease before each prompt so a long flow keeps its key
func (s *Service) refresh(ctx context.Context, f *flow) {
	held, err := s.config.Sessions.Refresh(ctx, &session.RefreshInput{
		Key:   f.msg.SessionKey(),
		Owner: f.id,
	})
	if err != nil {
		f.log.Warn("failed to refresh judgment session", "state", f.state, "error", err)
		return
	}
	if !held {
		f.log.Warn("judgment session no longer held", "state", f.state)
	}
}

func (s *Service) transition(f *flow, to State) {
	f.log.Debug("judgment state transition", "from", f.state, "to", to)
	f.state = to
}

func (s *Service) send(ctx context.Context, channelID, content string) {
	if err := s.config.Messenger.SendMessage(ctx, channelID, content); err != nil {
		s.logger.Warn("failed to send message", "channel_id", channelID, "error", err)
	}
}
