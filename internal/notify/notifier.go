package notify

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront/pkg/logger"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Toast is a transient feedback message shown to one session.
type Toast struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service defines toast delivery for a session.
type Service interface {
	Notify(ctx context.Context, sessionID, message string) Toast
	Active(sessionID string) []Toast
}

// Notifier keeps live toasts per session. Each toast expires on its own timer
// and has no effect on cart state.
type Notifier struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts map[string][]Toast
	logg   *logger.Logger
	now    func() time.Time
}

// NewNotifier builds a Notifier; a non-positive ttl falls back to DefaultTTL.
func NewNotifier(ttl time.Duration, logg *logger.Logger) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		ttl:    ttl,
		toasts: map[string][]Toast{},
		logg:   logg,
		now:    time.Now,
	}
}

// AddedMessage is the confirmation shown after a plain add-to-cart.
func AddedMessage(name string) string {
	return `Berhasil menambahkan "` + name + `" ke keranjang`
}

// Notify enqueues a toast for the session and schedules its removal.
func (n *Notifier) Notify(ctx context.Context, sessionID, message string) Toast {
	now := n.now()
	toast := Toast{
		ID:        uuid.New(),
		Message:   strings.TrimSpace(message),
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}

	n.mu.Lock()
	n.toasts[sessionID] = append(n.toasts[sessionID], toast)
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() { n.expire(sessionID, toast.ID) })

	if n.logg != nil {
		n.logg.Debug(n.logg.WithField(ctx, "toast_id", toast.ID.String()), "toast.shown")
	}
	return toast
}

// Active returns the session's live toasts, oldest first.
func (n *Notifier) Active(sessionID string) []Toast {
	now := n.now()
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Toast, 0, len(n.toasts[sessionID]))
	for _, toast := range n.toasts[sessionID] {
		if now.Before(toast.ExpiresAt) {
			out = append(out, toast)
		}
	}
	return out
}

// Drop discards every toast for the session.
func (n *Notifier) Drop(sessionID string) {
	n.mu.Lock()
	delete(n.toasts, sessionID)
	n.mu.Unlock()
}

func (n *Notifier) expire(sessionID string, id uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()

	toasts := n.toasts[sessionID]
	for i, toast := range toasts {
		if toast.ID == id {
			toasts = append(toasts[:i], toasts[i+1:]...)
			break
		}
	}
	if len(toasts) == 0 {
		delete(n.toasts, sessionID)
		return
	}
	n.toasts[sessionID] = toasts
}
