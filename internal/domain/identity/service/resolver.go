package service

import (
	"context"
	"errors"

	"community_api/internal/domain/identity/model"
	"community_api/internal/domain/identity/repository"
	"community_api/pkg/apperr"
	"community_api/pkg/metrics"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolver 将内容中的用户 ID 解析为展示身份
type Resolver interface {
	// Resolve never fails: a lookup error yields an empty map and every id
	// must be treated as possibly unresolved.
	Resolve(ctx context.Context, ids []string) map[string]model.DisplayIdentity
	Get(ctx context.Context, id string) (*model.DisplayIdentity, error)
}

type resolver struct {
	repo    repository.IdentityRepository
	log     *zap.Logger
	metrics *metrics.MetricsCollector
}

func NewResolver(repo repository.IdentityRepository, log *zap.Logger, m *metrics.MetricsCollector) Resolver {
	return &resolver{repo: repo, log: log, metrics: m}
}

func (r *resolver) Resolve(ctx context.Context, ids []string) map[string]model.DisplayIdentity {
	result := make(map[string]model.DisplayIdentity)

	unique := dedupe(ids)
	if len(unique) == 0 {
		return result
	}

	users, err := r.repo.ListByIDs(ctx, unique)
	if err != nil {
		r.log.Error("Failed to resolve identities", zap.Int("count", len(unique)), zap.Error(err))
		r.metrics.RecordIdentityLookupFailure()
		return result
	}

	for _, u := range users {
		result[u.ID] = model.Derive(u)
	}
	return result
}

func (r *resolver) Get(ctx context.Context, id string) (*model.DisplayIdentity, error) {
	user, err := r.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Store("Failed to fetch user", err)
	}
	identity := model.Derive(*user)
	return &identity, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
