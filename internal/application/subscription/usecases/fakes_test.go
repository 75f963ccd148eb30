package usecases

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/subscription"
	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
)

var errStoreDown = errors.New("connection refused")

// fakeSubscriptionRepo stores copies so callers cannot mutate stored state
// without going through the repository.
type fakeSubscriptionRepo struct {
	mu      sync.Mutex
	nextID  uint
	records map[uint]subscription.ReconstructParams
	failAll error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{records: make(map[uint]subscription.ReconstructParams)}
}

func snapshot(s *subscription.Subscription) subscription.ReconstructParams {
	return subscription.ReconstructParams{
		ID:               s.ID(),
		SID:              s.SID(),
		UserID:           s.UserID(),
		Status:           s.Status(),
		StartsAt:         s.StartsAt(),
		ExpiresAt:        s.ExpiresAt(),
		WhatsAppNumber:   s.WhatsAppNumber(),
		PaymentProofURL:  s.PaymentProofURL(),
		ApprovedBy:       s.ApprovedBy(),
		ApprovedAt:       s.ApprovedAt(),
		ActivationSource: s.ActivationSource(),
		Version:          s.Version(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func restore(p subscription.ReconstructParams) *subscription.Subscription {
	s, err := subscription.ReconstructSubscription(p)
	if err != nil {
		panic(err)
	}
	return s
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	for _, rec := range r.records {
		if rec.UserID == s.UserID() && !rec.Status.IsTerminal() {
			return subscription.ErrNonTerminalExists
		}
	}
	r.nextID++
	if err := s.SetID(r.nextID); err != nil {
		return err
	}
	r.records[s.ID()] = snapshot(s)
	return nil
}

func (r *fakeSubscriptionRepo) GetBySID(_ context.Context, sid string) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, rec := range r.records {
		if rec.SID == sid {
			return restore(rec), nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) GetNonTerminalByUserID(_ context.Context, userID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	for _, rec := range r.records {
		if rec.UserID == userID && !rec.Status.IsTerminal() {
			return restore(rec), nil
		}
	}
	return nil, nil
}

func (r *fakeSubscriptionRepo) list(match func(subscription.ReconstructParams) bool) []*subscription.Subscription {
	var out []subscription.ReconstructParams
	for _, rec := range r.records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	subs := make([]*subscription.Subscription, 0, len(out))
	for _, rec := range out {
		subs = append(subs, restore(rec))
	}
	return subs
}

func (r *fakeSubscriptionRepo) ListByUserID(_ context.Context, userID uint) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	return r.list(func(p subscription.ReconstructParams) bool { return p.UserID == userID }), nil
}

func (r *fakeSubscriptionRepo) ListByStatus(_ context.Context, status vo.SubscriptionStatus) ([]*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	return r.list(func(p subscription.ReconstructParams) bool { return p.Status == status }), nil
}

func (r *fakeSubscriptionRepo) UpdateEvidence(_ context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	rec, ok := r.records[s.ID()]
	if !ok || rec.Status != vo.StatusPending {
		return nil
	}
	rec.WhatsAppNumber = s.WhatsAppNumber()
	rec.PaymentProofURL = s.PaymentProofURL()
	rec.UpdatedAt = s.UpdatedAt()
	r.records[s.ID()] = rec
	return nil
}

func (r *fakeSubscriptionRepo) TransitionFrom(_ context.Context, s *subscription.Subscription, from vo.SubscriptionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	rec, ok := r.records[s.ID()]
	if !ok || rec.Status != from {
		return false, nil
	}
	r.records[s.ID()] = snapshot(s)
	return true, nil
}

func (r *fakeSubscriptionRepo) ExpireLapsed(_ context.Context, now time.Time) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	var users []uint
	for id, rec := range r.records {
		if rec.Status == vo.StatusActive && rec.ExpiresAt != nil && !now.Before(*rec.ExpiresAt) {
			rec.Status = vo.StatusExpired
			rec.UpdatedAt = now
			r.records[id] = rec
			users = append(users, rec.UserID)
		}
	}
	return users, nil
}

// seed stores a record directly, bypassing the uniqueness check.
func (r *fakeSubscriptionRepo) seed(p subscription.ReconstructParams) *subscription.Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	if p.SID == "" {
		p.SID = "sub_seed" + string(rune('A'+p.ID))
	}
	if p.Version == 0 {
		p.Version = 1
	}
	r.records[p.ID] = p
	return restore(p)
}

func (r *fakeSubscriptionRepo) count(userID uint, status vo.SubscriptionStatus) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Status == status {
			n++
		}
	}
	return n
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeGuard struct {
	mu   sync.Mutex
	held map[string]bool
	err  error
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{held: make(map[string]bool)}
}

func (g *fakeGuard) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return false, g.err
	}
	if g.held[key] {
		return false, nil
	}
	g.held[key] = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishEntitlementChanged(ctx context.Context, event entitlement.ChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
	done chan struct{}
}

func (m *mockNotifier) NotifyPendingSubscription(ctx context.Context, notice PendingSubscriptionNotice) error {
	args := m.Called(ctx, notice)
	if m.done != nil {
		close(m.done)
	}
	return args.Error(0)
}

type staticEmails map[uint]string

func (s staticEmails) GetEmail(_ context.Context, userID uint) (string, error) {
	return s[userID], nil
}

func fixedClock(t time.Time) clock {
	return func() time.Time { return t }
}
