package utils

import (
	"context"
	"testing"
	"time"

	"iconomi-ranker/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "already rounded", value: 1.25, want: 1.25},
		{name: "rounds down", value: 6.091666, want: 6.09},
		{name: "rounds up", value: 2.005001, want: 2.01},
		{name: "negative", value: -0.456, want: -0.46},
		{name: "zero", value: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.value), 1e-9)
		})
	}
}

func TestFormatMillions(t *testing.T) {
	assert.Equal(t, "0.5M", FormatMillions(500_000))
	assert.Equal(t, "2M", FormatMillions(2_000_000))
	assert.Equal(t, "1.25M", FormatMillions(1_250_000))
}

func TestContainsString(t *testing.T) {
	assert.True(t, ContainsString([]string{"a", "b"}, "b"))
	assert.False(t, ContainsString(nil, "b"))
}

func TestShouldContinue(t *testing.T) {
	log := logger.NewNop()
	ctx, cancel := context.WithCancel(context.Background())

	assert.True(t, ShouldContinue(ctx, log))
	cancel()
	assert.False(t, ShouldContinue(ctx, log))
}

func TestPrettyDate(t *testing.T) {
	date := time.Date(2026, time.October, 19, 8, 5, 0, 0, time.UTC)
	assert.Equal(t, "19 Oct 2026 - 08:05 UTC", PrettyDate(date))
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `Top\_10 \*crypto\*`, EscapeMarkdown("Top_10 *crypto*"))
}
