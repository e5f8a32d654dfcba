// Package store owns the persisted order list and the order ID counter.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"burger_club/internal/models"
	"burger_club/internal/storage"
)

// InitialCounter is the counter value of a fresh (or unreadable) store.
// The first assigned ID is therefore BC1001.
const InitialCounter = 1000

const orderIDFormat = "BC%04d"

// Store keeps the committed orders newest-first in memory and mirrors every
// change to the KV backend. The in-memory state is authoritative for the
// session: persistence failures are logged and otherwise ignored.
type Store struct {
	kv  storage.KV
	log *slog.Logger

	mu      sync.Mutex
	orders  []models.Order
	counter int64
}

// New loads the order list and counter from kv. Absent, corrupt or
// unreadable state degrades to an empty list and the initial counter.
func New(kv storage.KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{kv: kv, log: log}

	orders, err := s.loadOrders()
	if err != nil {
		s.log.Warn("failed to load orders, starting empty", "error", err)
		orders = nil
	}
	counter, err := s.loadCounter()
	if err != nil {
		s.log.Warn("failed to load counter, using initial value", "error", err)
		counter = InitialCounter
	}

	s.orders = orders
	s.counter = counter
	return s
}

// Orders returns the stored orders, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Append inserts order at the front and rewrites the persisted list. A
// persistence failure does not undo the in-memory insert.
func (s *Store) Append(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append([]models.Order{order}, s.orders...)

	if err := s.saveOrders(s.orders); err != nil {
		s.log.Warn("failed to persist orders", "order_id", order.OrderID, "error", err)
	}
}

// Counter returns the current counter value.
func (s *Store) Counter() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// NextOrderID advances the counter, persists it immediately and returns the
// formatted ID. The counter moves even if the order built with this ID is
// later cancelled, so assigned IDs may have gaps but are never reused.
func (s *Store) NextOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	if err := s.saveCounter(s.counter); err != nil {
		s.log.Warn("failed to persist counter", "counter", s.counter, "error", err)
	}
	return fmt.Sprintf(orderIDFormat, s.counter)
}

func (s *Store) loadOrders() ([]models.Order, error) {
	raw, ok, err := s.kv.Get(storage.OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) saveOrders(orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := s.kv.Set(storage.OrdersKey, string(raw)); err != nil {
		return fmt.Errorf("write orders: %w", err)
	}
	return nil
}

func (s *Store) loadCounter() (int64, error) {
	raw, ok, err := s.kv.Get(storage.CounterKey)
	if err != nil {
		return 0, fmt.Errorf("read counter: %w", err)
	}
	if !ok {
		return InitialCounter, nil
	}

	counter, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode counter: %w", err)
	}
	return counter, nil
}

func (s *Store) saveCounter(counter int64) error {
	if err := s.kv.Set(storage.CounterKey, strconv.FormatInt(counter, 10)); err != nil {
		return fmt.Errorf("write counter: %w", err)
	}
	return nil
}
