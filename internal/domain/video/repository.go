package video

import "context"

type ListFilter struct {
	OnlyActive bool
	Page       int
	PageSize   int
}

type Repository interface {
	Create(ctx context.Context, v *Video) error
	GetBySID(ctx context.Context, sid string) (*Video, error)
	// List returns videos newest first together with the total count.
	List(ctx context.Context, filter ListFilter) ([]*Video, int64, error)
	// Delete soft-deletes the video.
	Delete(ctx context.Context, id uint) error
}
