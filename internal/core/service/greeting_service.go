package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/pkg/metrics"
	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/core/ports"
)

const helloWorld = "Hello World!"

type GreetingService struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewGreetingService(logger zerolog.Logger) *GreetingService {
	return &GreetingService{logger: logger, now: time.Now}
}

// Hello returns the static root greeting.
func (s *GreetingService) Hello() string {
	return helloWorld
}

// Greet renders a greeting in the requested language, falling back to Korean
// for unknown codes and to the guest form when name is empty.
func (s *GreetingService) Greet(name, language string) ports.Greeting {
	lang := domain.ResolveLanguage(language)

	s.logger.Debug().
		Str("name", name).
		Str("requested_language", language).
		Str("language", string(lang)).
		Msg("rendering greeting")
	metrics.GreetingsServedTotal.WithLabelValues(string(lang)).Inc()

	return ports.Greeting{
		Message:   domain.FormatGreeting(lang, name),
		Language:  lang,
		Timestamp: s.now().UTC(),
	}
}
