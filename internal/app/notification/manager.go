// Package notification provides the fan-out of sequencer signals to subscribed surfaces.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osa030/breathbox/internal/app/sequencer"
	"github.com/osa030/breathbox/internal/domain/breath"
)

// subscription represents a subscribed surface.
type subscription struct {
	id      string
	surface sequencer.Surface
}

// Manager forwards every signal to all subscribers in subscription order.
// It implements sequencer.Surface.
type Manager struct {
	mu            sync.RWMutex
	subscriptions []*subscription
	sequenceNo    uint64
}

var (
	_ sequencer.Surface       = (*Manager)(nil)
	_ sequencer.CycleReporter = (*Manager)(nil)
)

// NewManager creates a new notification manager.
func NewManager() *Manager {
	return &Manager{
		subscriptions: make([]*subscription, 0),
	}
}

// Subscribe adds a surface and returns the subscription ID.
func (m *Manager) Subscribe(surface sequencer.Surface) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions = append(m.subscriptions, &subscription{
		id:      id,
		surface: surface,
	})
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscriptions {
		if sub.id == subscriptionID {
			m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
			return
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// SequenceNo returns the number of signals broadcast so far.
func (m *Manager) SequenceNo() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sequenceNo
}

// Close removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make([]*subscription, 0)
}

// PhaseChanged forwards a phase change.
func (m *Manager) PhaseChanged(phase breath.PhaseName) {
	m.broadcast(func(s sequencer.Surface) { s.PhaseChanged(phase) })
}

// Countdown forwards a countdown update.
func (m *Manager) Countdown(seconds int) {
	m.broadcast(func(s sequencer.Surface) { s.Countdown(seconds) })
}

// ButtonsChanged forwards control states.
func (m *Manager) ButtonsChanged(state sequencer.ButtonsState) {
	m.broadcast(func(s sequencer.Surface) { s.ButtonsChanged(state) })
}

// AnimationSync forwards an animation duration.
func (m *Manager) AnimationSync(d time.Duration) {
	m.broadcast(func(s sequencer.Surface) { s.AnimationSync(d) })
}

// Finished forwards session completion.
func (m *Manager) Finished() {
	m.broadcast(func(s sequencer.Surface) { s.Finished() })
}

// CycleStarted forwards cycle progress to subscribers that report it.
func (m *Manager) CycleStarted(cycle, total int) {
	m.broadcast(func(s sequencer.Surface) {
		if r, ok := s.(sequencer.CycleReporter); ok {
			r.CycleStarted(cycle, total)
		}
	})
}

// broadcast calls send for each subscriber without holding the lock,
// so a surface may subscribe or unsubscribe from inside a callback.
func (m *Manager) broadcast(send func(sequencer.Surface)) {
	m.mu.Lock()
	m.sequenceNo++
	subs := make([]*subscription, len(m.subscriptions))
	copy(subs, m.subscriptions)
	m.mu.Unlock()

	for _, sub := range subs {
		send(sub.surface)
	}
}
