package service

import (
	"context"
	"errors"
	"testing"

	"community_api/internal/domain/identity/model"
	"community_api/pkg/apperr"
	"community_api/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockIdentityRepository is a mock of IdentityRepository
type MockIdentityRepository struct {
	mock.Mock
}

func (m *MockIdentityRepository) ListByIDs(ctx context.Context, ids []string) ([]model.AuthUser, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuthUser), args.Error(1)
}

func (m *MockIdentityRepository) GetByID(ctx context.Context, id string) (*model.AuthUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthUser), args.Error(1)
}

func newTestResolver(repo *MockIdentityRepository) Resolver {
	return NewResolver(repo, zap.NewNop(), metrics.NewMetricsCollector(prometheus.NewRegistry()))
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("deduplicates ids and derives identities", func(t *testing.T) {
		repo := new(MockIdentityRepository)
		r := newTestResolver(repo)

		repo.On("ListByIDs", ctx, []string{"u1", "u2"}).Return([]model.AuthUser{
			{ID: "u1", Email: "a@x.com", Metadata: model.UserMetadata{FullName: "Ann Lee"}},
			{ID: "u2", Email: "j.doe@x.com"},
		}, nil)

		got := r.Resolve(ctx, []string{"u1", "u2", "u1", ""})

		require.Len(t, got, 2)
		assert.Equal(t, "Ann", got["u1"].Username)
		assert.Equal(t, "j.doe", got["u2"].FullName)
		repo.AssertExpectations(t)
	})

	t.Run("lookup failure yields empty map", func(t *testing.T) {
		repo := new(MockIdentityRepository)
		r := newTestResolver(repo)

		repo.On("ListByIDs", ctx, []string{"u1"}).Return(nil, errors.New("timeout"))

		got := r.Resolve(ctx, []string{"u1"})

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no ids skips the lookup", func(t *testing.T) {
		repo := new(MockIdentityRepository)
		r := newTestResolver(repo)

		got := r.Resolve(ctx, []string{"", ""})

		assert.Empty(t, got)
		repo.AssertNotCalled(t, "ListByIDs", mock.Anything, mock.Anything)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIdentityRepository)
	r := newTestResolver(repo)

	repo.On("GetByID", ctx, "u1").Return(&model.AuthUser{ID: "u1", Email: "ann@x.com", Metadata: model.UserMetadata{Username: "annl"}}, nil)
	repo.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)
	repo.On("GetByID", ctx, "broken").Return(nil, errors.New("connection reset"))

	identity, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "annl", identity.Username)
	assert.Equal(t, "ann", identity.FullName)

	_, err = r.Get(ctx, "missing")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = r.Get(ctx, "broken")
	assert.True(t, apperr.IsKind(err, apperr.KindStore))
}
