package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/pkg/metrics"
)

func TestGreetingService_Hello(t *testing.T) {
	assert.Equal(t, "Hello World!", NewGreetingService(zerolog.Nop()).Hello())
}

func TestGreetingService_Greet(t *testing.T) {
	svc := NewGreetingService(zerolog.Nop())
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))
	svc.now = func() time.Time { return fixed }

	tests := []struct {
		name, language string
		wantMsg        string
		wantLang       domain.Language
	}{
		{"홍길동", "en", "Hello, 홍길동!", domain.LanguageEnglish},
		{"", "ja", "こんにちは、ゲストさん！", domain.LanguageJapanese},
		{"X", "fr", "안녕하세요, X님!", domain.LanguageKorean},
		{"", "", "안녕하세요, 손님님!", domain.LanguageKorean},
	}
	for _, tt := range tests {
		g := svc.Greet(tt.name, tt.language)
		assert.Equal(t, tt.wantMsg, g.Message)
		assert.Equal(t, tt.wantLang, g.Language)
		assert.Equal(t, time.UTC, g.Timestamp.Location())
		assert.True(t, g.Timestamp.Equal(fixed))
	}
}

func TestGreetingService_Greet_CountsResolvedLanguage(t *testing.T) {
	svc := NewGreetingService(zerolog.Nop())
	before := testutil.ToFloat64(metrics.GreetingsServedTotal.WithLabelValues("ko"))

	svc.Greet("X", "fr")

	after := testutil.ToFloat64(metrics.GreetingsServedTotal.WithLabelValues("ko"))
	assert.Equal(t, before+1, after)
}
