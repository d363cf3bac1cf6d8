package domain

import (
	"fmt"
	"log/slog"
	"sync"
)

// LowStockListener is notified synchronously when a removal drops a
// title's count to or below the listener's threshold.
type LowStockListener interface {
	// Threshold is the count at or below which this listener wants to
	// be notified.
	Threshold() int
	// StockLow is called with the movie that was removed and the count
	// remaining after the removal.
	StockLow(movie *Movie, remaining int)
}

// Stock tracks the number of physical copies per movie title,
// independent of per-copy rental identity. Mutations to one title are
// serialized against each other; unrelated titles do not contend.
type Stock struct {
	mu      sync.RWMutex // guards the entries map itself
	entries map[string]*stockEntry

	lmu       sync.Mutex
	listeners []LowStockListener
}

type stockEntry struct {
	mu    sync.Mutex
	count int
}

func NewStock() *Stock {
	return &Stock{entries: make(map[string]*stockEntry)}
}

func (s *Stock) entry(title string) *stockEntry {
	s.mu.RLock()
	e, ok := s.entries[title]
	s.mu.RUnlock()
	if ok {
		return e
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[title]; ok {
		return e
	}
	e = &stockEntry{}
	s.entries[title] = e
	return e
}

// AddToStock adds one copy of the movie and returns the new count.
// Absent titles start at zero, so adding never fails.
func (s *Stock) AddToStock(movie *Movie) int {
	e := s.entry(movie.Title())
	e.mu.Lock()
	defer e.mu.Unlock()
	e.count++
	return e.count
}

// RemoveFromStock removes one copy of the movie and returns the new
// count. It fails with ErrOutOfStock when no copy is left. On success
// every listener whose threshold is at or above the new count is
// notified, in registration order, before the call returns.
func (s *Stock) RemoveFromStock(movie *Movie) (int, error) {
	e := s.entry(movie.Title())
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.count <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrOutOfStock, movie.Title())
	}
	e.count--
	s.notifyListeners(movie, e.count)
	return e.count, nil
}

// InStock returns the number of copies of the title in stock, zero for
// unknown titles.
func (s *Stock) InStock(title string) int {
	s.mu.RLock()
	e, ok := s.entries[title]
	s.mu.RUnlock()
	if !ok {
		return 0
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.count
}

// Counts returns a snapshot of copy counts per title.
func (s *Stock) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.entries))
	for title, e := range s.entries {
		e.mu.Lock()
		out[title] = e.count
		e.mu.Unlock()
	}
	return out
}

// AddLowStockListener registers a listener. Adding the same listener
// twice has no effect.
func (s *Stock) AddLowStockListener(l LowStockListener) {
	if l == nil {
		return
	}
	s.lmu.Lock()
	defer s.lmu.Unlock()
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

// RemoveLowStockListener deregisters a listener. Unknown listeners are
// ignored.
func (s *Stock) RemoveLowStockListener(l LowStockListener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// notifyListeners runs the fan-out in-line inside the removal that
// triggered it. A panicking listener is recovered and logged; the
// count mutation is never rolled back.
func (s *Stock) notifyListeners(m *Movie, remaining int) {
	s.lmu.Lock()
	snapshot := make([]LowStockListener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.lmu.Unlock()

	for _, l := range snapshot {
		if l.Threshold() >= remaining {
			notifySafely(l, m, remaining)
		}
	}
}

func notifySafely(l LowStockListener, m *Movie, remaining int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("low stock listener panicked", "title", m.Title(), "remaining", remaining, "panic", r)
		}
	}()
	l.StockLow(m, remaining)
}
