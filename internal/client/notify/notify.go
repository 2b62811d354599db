// Package notify delivers short-lived user-facing messages: the terminal
// equivalent of toast alerts.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// DefaultTTL is how long a notification stays active.
const DefaultTTL = 5 * time.Second

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Notify(level Level, message string)
}

// Discard returns a Notifier that drops everything.
func Discard() Notifier { return discard{} }

type discard struct{}

func (discard) Notify(Level, string) {}

// Notification is one delivered message.
type Notification struct {
	ID        int
	Level     Level
	Message   string
	ExpiresAt time.Time
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Console prints notifications to w as they arrive and keeps them listed in
// Active until their TTL elapses or they are dismissed.
type Console struct {
	w   io.Writer
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	items  []Notification
	nextID int
}

type Option func(*Console)

func WithTTL(ttl time.Duration) Option {
	return func(c *Console) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Console) { c.now = now }
}

func NewConsole(w io.Writer, opts ...Option) *Console {
	c := &Console{w: w, ttl: DefaultTTL, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Console) Notify(level Level, message string) {
	c.mu.Lock()
	now := c.now()
	c.pruneLocked(now)
	c.nextID++
	c.items = append(c.items, Notification{
		ID:        c.nextID,
		Level:     level,
		Message:   message,
		ExpiresAt: now.Add(c.ttl),
	})
	c.mu.Unlock()

	_, _ = fmt.Fprintln(c.w, render(level, message))
}

func render(level Level, message string) string {
	switch level {
	case LevelSuccess:
		return successStyle.Render("✔ " + message)
	case LevelError:
		return errorStyle.Render("✖ " + message)
	default:
		return infoStyle.Render("• " + message)
	}
}

// Active returns the notifications that have not yet expired, oldest first.
func (c *Console) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(c.now())
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Console) pruneLocked(now time.Time) {
	kept := c.items[:0]
	for _, n := range c.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	clear(c.items[len(kept):])
	c.items = kept
}

// Dismiss removes a notification before its TTL elapses.
func (c *Console) Dismiss(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
