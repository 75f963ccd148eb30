package admin

import (
	"context"

	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	subUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
)

type mockListPendingUC struct {
	result []*subdto.SubscriptionDTO
	err    error
	calls  int
}

func (m *mockListPendingUC) Execute(ctx context.Context) ([]*subdto.SubscriptionDTO, error) {
	m.calls++
	return m.result, m.err
}

type mockReviewUC struct {
	result *subUsecases.ReviewResult
	err    error
	got    subUsecases.ReviewSubscriptionCommand
	calls  int
}

func (m *mockReviewUC) Execute(ctx context.Context, cmd subUsecases.ReviewSubscriptionCommand) (*subUsecases.ReviewResult, error) {
	m.got = cmd
	m.calls++
	return m.result, m.err
}

type mockCreateVideoUC struct {
	result *videoUsecases.VideoDTO
	err    error
	got    videoUsecases.CreateVideoCommand
	calls  int
}

func (m *mockCreateVideoUC) Execute(ctx context.Context, cmd videoUsecases.CreateVideoCommand) (*videoUsecases.VideoDTO, error) {
	m.got = cmd
	m.calls++
	return m.result, m.err
}

type mockDeleteVideoUC struct {
	err error
	got string
}

func (m *mockDeleteVideoUC) Execute(ctx context.Context, sid string) error {
	m.got = sid
	return m.err
}
