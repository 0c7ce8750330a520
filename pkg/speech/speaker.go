package speech

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// Engine is the synthesis backend. Synthesize blocks until the utterance
// finishes or the context is cancelled.
type Engine interface {
	Synthesize(ctx context.Context, text string, profile Profile) error
}

// Speaker owns the voice channel: at most one utterance is active, and
// starting a new one cancels whatever is in flight. There is no queue.
type Speaker struct {
	engine Engine
	logger logger.ILogger

	mu        sync.Mutex
	rng       *rand.Rand
	cancel    context.CancelFunc
	currentId string
	speaking  bool
}

func NewSpeaker(engine Engine, rng *rand.Rand, log logger.ILogger) *Speaker {
	return &Speaker{
		engine: engine,
		rng:    rng,
		logger: log,
	}
}

// Speak starts vocalizing text with the given voice, cancelling any
// utterance already in progress. It returns without waiting for synthesis.
func (s *Speaker) Speak(text string, voice entity.VoiceProfile) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}

	spoken := text
	if voice.Gender == entity.VoiceGenderChild {
		spoken = ChildlikeTransform(text, s.rng)
	}
	profile := ProfileFor(voice.Gender)

	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.NewString()
	s.cancel = cancel
	s.currentId = id
	s.speaking = true
	s.mu.Unlock()

	go func() {
		err := s.engine.Synthesize(ctx, spoken, profile)

		s.mu.Lock()
		if s.currentId == id {
			s.speaking = false
			s.cancel = nil
		}
		s.mu.Unlock()

		if err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Warn("speech", "utterance failed", map[string]interface{}{
				"voice": voice.Name,
				"error": err.Error(),
			})
		}
	}()
}

// Stop cancels the active utterance, if any.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.speaking = false
		s.currentId = ""
	}
}

// Speaking reports whether an utterance is in flight; the UI uses this to
// gate its affordances.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// LogEngine is the default backend when no synthesis device is attached:
// it logs the utterance and simulates playback time so the busy state stays
// observable.
type LogEngine struct {
	logger logger.ILogger
}

func NewLogEngine(log logger.ILogger) *LogEngine {
	return &LogEngine{logger: log}
}

func (e *LogEngine) Synthesize(ctx context.Context, text string, profile Profile) error {
	e.logger.Info("speech", "synthesizing utterance", map[string]interface{}{
		"rate":  profile.Rate,
		"pitch": profile.Pitch,
		"chars": len(text),
	})

	// Rough playback estimate, scaled by the profile rate.
	duration := time.Duration(float64(len(text))*55/profile.Rate) * time.Millisecond
	if duration > 30*time.Second {
		duration = 30 * time.Second
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(duration):
		return nil
	}
}
