package usecases

import (
	"context"
	"errors"
	"sync"

	"github.com/doramashorts/backend/internal/domain/purchase"
	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/domain/video"
)

var errStoreDown = errors.New("connection refused")

type fakePurchaseRepo struct {
	mu      sync.Mutex
	nextID  uint
	records map[uint]purchase.ReconstructParams
	failAll error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{records: make(map[uint]purchase.ReconstructParams)}
}

func snapshot(p *purchase.Purchase) purchase.ReconstructParams {
	return purchase.ReconstructParams{
		ID: p.ID(), SID: p.SID(), UserID: p.UserID(), VideoID: p.VideoID(),
		Status: p.Status(), AmountCents: p.AmountCents(), PaidAt: p.PaidAt(),
		Version: p.Version(), CreatedAt: p.CreatedAt(), UpdatedAt: p.UpdatedAt(),
	}
}

func restore(rec purchase.ReconstructParams) *purchase.Purchase {
	p, err := purchase.ReconstructPurchase(rec)
	if err != nil {
		panic(err)
	}
	return p
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *purchase.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return r.failAll
	}
	r.nextID++
	_ = p.SetID(r.nextID)
	r.records[p.ID()] = snapshot(p)
	return nil
}

func (r *fakePurchaseRepo) GetBySID(_ context.Context, sid string) (*purchase.Purchase, error) {
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

func (r *fakePurchaseRepo) FindOpen(_ context.Context, userID, videoID uint) (*purchase.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return nil, r.failAll
	}
	var pending *purchase.ReconstructParams
	for _, rec := range r.records {
		if rec.UserID != userID || rec.VideoID != videoID {
			continue
		}
		if rec.Status == vo.PurchaseStatusPaid {
			return restore(rec), nil
		}
		if rec.Status == vo.PurchaseStatusPending {
			rec := rec
			pending = &rec
		}
	}
	if pending != nil {
		return restore(*pending), nil
	}
	return nil, nil
}

func (r *fakePurchaseRepo) ListByUserID(_ context.Context, userID uint) ([]*purchase.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*purchase.Purchase
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, restore(rec))
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) TransitionFrom(_ context.Context, p *purchase.Purchase, from vo.PurchaseStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll != nil {
		return false, r.failAll
	}
	rec, ok := r.records[p.ID()]
	if !ok || rec.Status != from {
		return false, nil
	}
	if p.Status().IsPaid() {
		for id, other := range r.records {
			if id != p.ID() && other.UserID == p.UserID() && other.VideoID == p.VideoID() && other.Status.IsPaid() {
				return false, purchase.ErrAlreadyPaid
			}
		}
	}
	r.records[p.ID()] = snapshot(p)
	return true, nil
}

func (r *fakePurchaseRepo) seed(rec purchase.ReconstructParams) *purchase.Purchase {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	if rec.SID == "" {
		rec.SID = "pur_seed" + string(rune('A'+rec.ID))
	}
	r.records[rec.ID] = rec
	return restore(rec)
}

func (r *fakePurchaseRepo) countPaid(userID, videoID uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if rec.UserID == userID && rec.VideoID == videoID && rec.Status.IsPaid() {
			n++
		}
	}
	return n
}

type fakeVideoRepo struct {
	videos map[string]*video.Video
	err    error
}

func (r *fakeVideoRepo) Create(context.Context, *video.Video) error { return nil }

func (r *fakeVideoRepo) GetBySID(_ context.Context, sid string) (*video.Video, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.videos[sid], nil
}

func (r *fakeVideoRepo) List(context.Context, video.ListFilter) ([]*video.Video, int64, error) {
	return nil, 0, nil
}

func (r *fakeVideoRepo) Delete(context.Context, uint) error { return nil }
