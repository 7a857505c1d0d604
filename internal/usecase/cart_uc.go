package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/phenrril/flexlinen/internal/clock"
	"github.com/phenrril/flexlinen/internal/domain"
)

// DefaultCartDelay is the artificial latency applied to cart mutations.
const DefaultCartDelay = 300 * time.Millisecond

const persistTimeout = 5 * time.Second

// CartStore owns the cart state and its persisted snapshot. Mutations
// flip IsLoading on at once and land after the configured delay. They
// are not queued: two calls made within one delay window both apply,
// in the order their timers fire, and the first to land clears
// IsLoading even if the second is still pending.
type CartStore struct {
	storage domain.SnapshotStore
	clock   clock.Clock
	delay   time.Duration

	mu    sync.Mutex
	state domain.CartState

	inflight sync.WaitGroup
}

type CartOption func(*CartStore)

func WithClock(c clock.Clock) CartOption {
	return func(s *CartStore) { s.clock = c }
}

func WithDelay(d time.Duration) CartOption {
	return func(s *CartStore) { s.delay = d }
}

// NewCartStore returns an empty, loading cart. Call Hydrate before
// serving it.
func NewCartStore(storage domain.SnapshotStore, opts ...CartOption) *CartStore {
	s := &CartStore{
		storage: storage,
		clock:   clock.Real(),
		delay:   DefaultCartDelay,
		state:   domain.EmptyCart(),
	}
	s.state.IsLoading = true
	for _, o := range opts {
		o(s)
	}
	return s
}

// Hydrate restores the persisted snapshot. A missing, unreadable or
// corrupt snapshot leaves an empty cart; the cause is only logged.
func (s *CartStore) Hydrate(ctx context.Context) domain.CartState {
	raw, err := s.storage.Get(ctx, domain.CartStorageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn().Err(err).Str("key", domain.CartStorageKey).Msg("read cart snapshot")
		}
		return s.dispatch(domain.SetLoading(false))
	}
	var snap domain.CartState
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Warn().Err(err).Str("key", domain.CartStorageKey).Msg("parse cart snapshot")
		return s.dispatch(domain.SetLoading(false))
	}
	snap.IsLoading = false
	st := s.dispatch(domain.HydrateCart(snap))
	log.Debug().Int("lines", len(st.Items)).Float64("total", st.Total).Msg("cart hydrated")
	return st
}

// State returns a copy of the current state.
func (s *CartStore) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ItemCount()
}

func (s *CartStore) SetSearching(v bool) domain.CartState {
	return s.dispatch(domain.SetSearching(v))
}

func (s *CartStore) AddItem(item domain.CartItem) *PendingOp {
	return s.schedule(domain.AddItem(item))
}

func (s *CartStore) RemoveItem(id string) *PendingOp {
	return s.schedule(domain.RemoveItem(id))
}

// UpdateQuantity sets a line's quantity as given. Values below 1 are
// stored unchanged; callers that want removal use RemoveItem.
func (s *CartStore) UpdateQuantity(id string, qty int) *PendingOp {
	return s.schedule(domain.UpdateQuantity(id, qty))
}

func (s *CartStore) ClearCart() *PendingOp {
	return s.schedule(domain.ClearCart())
}

func (s *CartStore) dispatch(a domain.CartAction) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.ReduceCart(s.state, a)
	return s.state.Clone()
}

func (s *CartStore) schedule(a domain.CartAction) *PendingOp {
	s.dispatch(domain.SetLoading(true))
	op := newPendingOp()
	queued := s.clock.Now()
	s.inflight.Add(1)
	s.clock.AfterFunc(s.delay, func() {
		defer s.inflight.Done()
		st, err := s.apply(a)
		log.Debug().
			Str("action", string(a.Type)).
			Dur("waited", s.clock.Now().Sub(queued)).
			Msg("cart mutation applied")
		op.finish(st, err)
	})
	return op
}

// Drain blocks until every scheduled mutation has landed, or ctx ends.
// Call it before closing the snapshot storage.
func (s *CartStore) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CartStore) apply(a domain.CartAction) (domain.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	next := domain.ReduceCart(prev, a)

	var err error
	switch a.Type {
	case domain.ActionAddItem:
		err = s.persist(next)
	case domain.ActionRemoveItem, domain.ActionUpdateQuantity:
		if _, ok := prev.Find(a.ID); ok {
			err = s.persist(next)
		}
	case domain.ActionClearCart:
		err = s.erase()
	}
	if err != nil {
		log.Error().Err(err).Str("action", string(a.Type)).Msg("persist cart")
	}

	s.state = domain.ReduceCart(next, domain.SetLoading(false))
	return s.state.Clone(), err
}

func (s *CartStore) persist(st domain.CartState) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.storage.Set(ctx, domain.CartStorageKey, b); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	return nil
}

func (s *CartStore) erase() error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.storage.Delete(ctx, domain.CartStorageKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete cart snapshot: %w", err)
	}
	return nil
}

// PendingOp is the completion signal of a scheduled cart mutation.
type PendingOp struct {
	done  chan struct{}
	state domain.CartState
	err   error
}

func newPendingOp() *PendingOp {
	return &PendingOp{done: make(chan struct{})}
}

func (p *PendingOp) finish(st domain.CartState, err error) {
	p.state = st
	p.err = err
	close(p.done)
}

// Done is closed once the mutation has been applied.
func (p *PendingOp) Done() <-chan struct{} { return p.done }

// Wait blocks until the mutation lands and returns the state right after
// it, plus any snapshot write error. Giving up through ctx does not
// cancel the mutation.
func (p *PendingOp) Wait(ctx context.Context) (domain.CartState, error) {
	select {
	case <-p.done:
		return p.state, p.err
	case <-ctx.Done():
		return domain.CartState{}, ctx.Err()
	}
}
