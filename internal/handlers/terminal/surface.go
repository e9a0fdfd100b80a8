package terminal

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/tikkle/internal/models"
	"github.com/KirkDiggler/tikkle/internal/services/messaging"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 48
	confettiRows  = 9
	earnedPill    = "[ earned! ]"
	dismissHint   = "Enter or Esc to close"
	dateLayoutOut = "2006-01-02 15:04"
)

// SurfaceConfig holds configuration for the terminal surface
type SurfaceConfig struct {
	Out io.Writer

	// Messaging supplies the popup copy; the badge title is used without it
	Messaging messaging.Service

	// Width of the card in columns
	Width int

	// Location earned dates are shown in; defaults to time.Local
	Location *time.Location

	// Rand drives the confetti; seeded from the clock when nil
	Rand *rand.Rand

	Logger *zap.Logger
}

// Surface draws badge cards and confetti on a terminal
type Surface struct {
	mu        sync.Mutex
	out       io.Writer
	messaging messaging.Service
	width     int
	location  *time.Location
	rand      *rand.Rand
	logger    *zap.Logger
}

// NewSurface creates a terminal surface
func NewSurface(cfg *SurfaceConfig) (*Surface, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Out == nil {
		return nil, ErrNilWriter
	}

	width := cfg.Width
	if width < 24 {
		width = defaultWidth
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Surface{
		out:       cfg.Out,
		messaging: cfg.Messaging,
		width:     width,
		location:  location,
		rand:      r,
		logger:    logger.Named("terminal"),
	}, nil
}

// Open draws the badge card
func (s *Surface) Open(ctx context.Context, badge *models.Badge) error {
	if badge == nil {
		return ErrNilBadge
	}

	headline, body := badge.Title, badge.Description
	if s.messaging != nil {
		msg, err := s.messaging.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{Badge: badge})
		if err != nil {
			s.logger.Debug("announcement copy unavailable", zap.Error(err))
		} else {
			headline, body = msg.Title, msg.Message
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := io.WriteString(s.out, RenderCard(badge, headline, body, s.formatDate(badge), s.width))
	return err
}

// Close clears the card
func (s *Surface) Close(_ context.Context, badge *models.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "%s\n\n", strings.Repeat("─", s.width))
	return err
}

// Celebrate draws the confetti bursts under the open card
func (s *Surface) Celebrate(_ context.Context, badge *models.Badge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := Confetti(s.rand, s.width, confettiRows)
	_, err := io.WriteString(s.out, strings.Join(rows, "\n")+"\n")
	return err
}

func (s *Surface) formatDate(badge *models.Badge) string {
	raw := badge.EarnedAtValue()
	if raw == "" {
		return ""
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(s.location).Format(dateLayoutOut)
		}
	}
	return raw
}

// RenderCard lays out a badge card inside a box of the given width
func RenderCard(badge *models.Badge, headline, body, earnedOn string, width int) string {
	inner := width - 4

	var lines []string
	lines = append(lines, headline, "")

	title := strings.TrimSpace(badge.Icon + " " + badge.Title)
	if badge.Earned {
		title = title + "  " + earnedPill
	}
	lines = append(lines, title)

	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, wrap(line, inner)...)
	}

	if earnedOn != "" {
		lines = append(lines, "", "Earned "+earnedOn)
	}
	lines = append(lines, "", dismissHint)

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width-2) + "┐\n")
	for _, line := range lines {
		b.WriteString("│ " + pad(line, inner) + " │\n")
	}
	b.WriteString("└" + strings.Repeat("─", width-2) + "┘\n")
	return b.String()
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrap breaks a line on spaces so no piece is wider than width runes
func wrap(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) > width {
			out = append(out, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(out, current)
}
