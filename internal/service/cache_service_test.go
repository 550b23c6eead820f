package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/aps-eligibility-api/pkg/errors"
)

type stubCacheRepo struct {
	store       map[string][]byte
	getErr      error
	invalidated []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest any) error {
	if s.getErr != nil {
		return s.getErr
	}
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.invalidated = append(s.invalidated, pattern)
	s.store = nil
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewCacheService(&stubCacheRepo{}, metrics, time.Minute, zap.NewNop(), true)
	ctx := context.Background()

	var dest map[string]int
	hit, err := svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "k", map[string]int{"aps": 30}, 0))
	hit, err = svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 30, dest["aps"])
	assert.Equal(t, 0.5, metrics.CacheHitRatio())
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, 0, nil, false)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k", 1, 0))
	assert.Empty(t, repo.store)
	var dest int
	hit, err := svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, svc.Invalidate(ctx, "*"))
	assert.Empty(t, repo.invalidated)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceBackendError(t *testing.T) {
	svc := NewCacheService(&stubCacheRepo{getErr: assert.AnError}, nil, time.Minute, zap.NewNop(), true)
	var dest int
	hit, err := svc.Get(context.Background(), "k", &dest)
	assert.False(t, hit)
	assert.ErrorIs(t, err, assert.AnError)
}
