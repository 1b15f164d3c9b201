// Package dialogue resolves NPC dialogue requests to either the remote
// generative channel or a deterministic line from the content store. The
// resolver never fails observably: every request yields a displayable
// line tagged with its source.
package dialogue

//go:generate mockgen -destination=mock/mock_service.go -package=mockdialogue -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wizardwars/engine/internal/content"
	"github.com/wizardwars/engine/internal/credential"
	engerr "github.com/wizardwars/engine/internal/errors"
	"github.com/wizardwars/engine/internal/repositories/transcripts"
	"github.com/wizardwars/engine/internal/uuid"
)

// Source tags where a line came from
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Line is a resolved dialogue line
type Line struct {
	RequestID   string
	ArchetypeID string
	Trigger     string
	Text        string
	Source      Source
	CreatedAt   time.Time
}

// GenerateRequest carries the archetype context handed to the remote
// channel
type GenerateRequest struct {
	ArchetypeID string
	Label       string
	Description string
	Spells      []string
	Trigger     string
}

// Channel is the remote dialogue collaborator: text in, text out. The
// credential is passed per call so hot rotation takes effect immediately.
type Channel interface {
	Generate(ctx context.Context, cred credential.Credential, req *GenerateRequest) (string, error)
}

// Service defines the dialogue resolver interface
type Service interface {
	// RequestLine resolves one dialogue turn. It returns an error only for
	// caller misuse (blank or unknown archetype id); resolution failures
	// are absorbed into the fallback path.
	RequestLine(ctx context.Context, input *RequestLineInput) (*Line, error)

	// Prewarm primes the remote channel for a set of archetypes ahead of
	// interaction. Failures are logged and skipped; fallback behavior is
	// unaffected.
	Prewarm(ctx context.Context, archetypeIDs []string, trigger string)
}

// RequestLineInput holds one dialogue request
type RequestLineInput struct {
	ArchetypeID string
	// Trigger identifies the conversational context, e.g. "greet". Blank
	// means the archetype's default trigger.
	Trigger string
}

// ServiceConfig holds configuration for the dialogue service
type ServiceConfig struct {
	Content     *content.Store         // Required
	Channel     Channel                // Required
	Credentials credential.Provider    // Required
	Toggle      *Toggle                // Required
	Transcripts transcripts.Repository // Optional: per-line observability log
	UUIDGen     uuid.Generator         // Optional: defaults to random ids
	Timeout     time.Duration          // Optional: remote call bound, defaults to 30s
	// PrewarmWorkers bounds prewarm concurrency, defaults to 2
	PrewarmWorkers int
}

type service struct {
	content     *content.Store
	channel     Channel
	credentials credential.Provider
	toggle      *Toggle
	transcripts transcripts.Repository
	uuidGen     uuid.Generator
	timeout     time.Duration
	workers     int

	mu   sync.RWMutex
	warm map[warmKey]string
}

type warmKey struct {
	archetypeID string
	trigger     string
}

// NewService creates a new dialogue service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, engerr.InvalidArgument("service config is required")
	}
	if cfg.Content == nil {
		return nil, engerr.InvalidArgument("content store is required")
	}
	if cfg.Channel == nil {
		return nil, engerr.InvalidArgument("dialogue channel is required")
	}
	if cfg.Credentials == nil {
		return nil, engerr.InvalidArgument("credential provider is required")
	}
	if cfg.Toggle == nil {
		return nil, engerr.InvalidArgument("toggle is required")
	}

	s := &service{
		content:     cfg.Content,
		channel:     cfg.Channel,
		credentials: cfg.Credentials,
		toggle:      cfg.Toggle,
		transcripts: cfg.Transcripts,
		uuidGen:     cfg.UUIDGen,
		timeout:     cfg.Timeout,
		workers:     cfg.PrewarmWorkers,
		warm:        make(map[warmKey]string),
	}
	if s.uuidGen == nil {
		s.uuidGen = uuid.NewRandomGenerator()
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}
	if s.workers <= 0 {
		s.workers = 2
	}

	return s, nil
}

// RequestLine resolves one dialogue turn
func (s *service) RequestLine(ctx context.Context, input *RequestLineInput) (*Line, error) {
	if input == nil || input.ArchetypeID == "" {
		return nil, engerr.InvalidArgument("archetype id is required")
	}

	trigger := input.Trigger
	if trigger == "" {
		trigger = content.DefaultTrigger
	}

	arch, err := s.content.Archetype(input.ArchetypeID)
	if err != nil {
		return nil, err
	}

	if !s.toggle.Get() {
		return s.fallback(ctx, arch.ID, trigger)
	}

	cred, err := s.credentials.Resolve()
	if err != nil {
		log.Printf("credential resolution warning: %v", err)
	}
	if !cred.Present() {
		return s.fallback(ctx, arch.ID, trigger)
	}

	if text, ok := s.warmLine(arch.ID, trigger); ok {
		return s.emit(ctx, arch.ID, trigger, text, SourceRemote), nil
	}

	text, err := s.generate(ctx, cred, arch, trigger)
	if err != nil {
		log.Printf("remote dialogue failed for archetype '%s' trigger '%s', falling back: %v",
			arch.ID, trigger, err)
		return s.fallback(ctx, arch.ID, trigger)
	}

	return s.emit(ctx, arch.ID, trigger, text, SourceRemote), nil
}

// Prewarm primes the remote channel for the given archetypes
func (s *service) Prewarm(ctx context.Context, archetypeIDs []string, trigger string) {
	if !s.toggle.Get() {
		return
	}
	if trigger == "" {
		trigger = content.DefaultTrigger
	}

	cred, err := s.credentials.Resolve()
	if err != nil {
		log.Printf("credential resolution warning: %v", err)
	}
	if !cred.Present() {
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, id := range archetypeIDs {
		id := id
		if _, ok := s.warmLine(id, trigger); ok {
			continue
		}
		g.Go(func() error {
			arch, err := s.content.Archetype(id)
			if err != nil {
				log.Printf("prewarm skipped unknown archetype '%s'", id)
				return nil
			}
			text, err := s.generate(ctx, cred, arch, trigger)
			if err != nil {
				log.Printf("prewarm failed for archetype '%s': %v", id, err)
				return nil
			}
			s.storeWarm(id, trigger, text)
			return nil
		})
	}

	// Workers never return errors; Wait is for completion only
	_ = g.Wait()
}

// generate calls the remote channel under the configured timeout
func (s *service) generate(ctx context.Context, cred credential.Credential, arch *content.CharacterArchetype, trigger string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.channel.Generate(ctx, cred, &GenerateRequest{
		ArchetypeID: arch.ID,
		Label:       arch.Label,
		Description: arch.Description,
		Spells:      arch.Spells,
		Trigger:     trigger,
	})
	if err != nil {
		return "", engerr.WrapWithCode(err, engerr.CodeRemoteDialogue, "remote channel failed")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", engerr.RemoteDialoguef("remote channel returned an empty line")
	}
	return text, nil
}

// fallback draws a deterministic line from the content store
func (s *service) fallback(ctx context.Context, archetypeID, trigger string) (*Line, error) {
	text, err := s.content.FallbackLine(archetypeID, trigger)
	if err != nil {
		// Load validation guarantees a line per archetype; reaching this
		// means the store was built outside Load.
		return nil, err
	}
	return s.emit(ctx, archetypeID, trigger, text, SourceFallback), nil
}

// emit stamps the line and records it in the transcript log
func (s *service) emit(ctx context.Context, archetypeID, trigger, text string, source Source) *Line {
	line := &Line{
		RequestID:   s.uuidGen.New(),
		ArchetypeID: archetypeID,
		Trigger:     trigger,
		Text:        text,
		Source:      source,
		CreatedAt:   time.Now().UTC(),
	}

	if s.transcripts != nil {
		entry := &transcripts.Entry{
			ID:          line.RequestID,
			ArchetypeID: line.ArchetypeID,
			Trigger:     line.Trigger,
			Text:        line.Text,
			Source:      string(line.Source),
			CreatedAt:   line.CreatedAt,
		}
		if err := s.transcripts.Append(ctx, entry); err != nil {
			log.Printf("transcript append failed: %v", err)
		}
	}

	return line
}

func (s *service) warmLine(archetypeID, trigger string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.warm[warmKey{archetypeID, trigger}]
	return text, ok
}

func (s *service) storeWarm(archetypeID, trigger, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warm[warmKey{archetypeID, trigger}] = text
}
