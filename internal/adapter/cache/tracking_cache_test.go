package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port/mocks"
)

type fakeKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var link = &domain.TrackingLink{TrackingCode: "abc", ApplicationID: "app-1", OfferID: "o1", CreatorID: "cr1", DestinationURL: "https://dest.example"}

func TestResolveTrackingCode_MissThenHit(t *testing.T) {
	repo := mocks.NewMockApplicationRepository(t)
	repo.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil).Once()
	kv := newFakeKV()
	c := NewCachedApplications(repo, kv, time.Minute, discard())

	got, err := c.ResolveTrackingCode(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, link, got)

	got, err = c.ResolveTrackingCode(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, link, got)
	assert.Equal(t, 1, kv.sets)
}

func TestResolveTrackingCode_NotFoundIsNotCached(t *testing.T) {
	repo := mocks.NewMockApplicationRepository(t)
	repo.EXPECT().ResolveTrackingCode(mock.Anything, "nope").Return(nil, domain.ErrNotFound).Twice()
	kv := newFakeKV()
	c := NewCachedApplications(repo, kv, time.Minute, discard())

	for range 2 {
		_, err := c.ResolveTrackingCode(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Zero(t, kv.sets)
}

func TestResolveTrackingCode_RedisDownFallsThrough(t *testing.T) {
	repo := mocks.NewMockApplicationRepository(t)
	repo.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil)
	kv := newFakeKV()
	kv.getErr = errors.New("dial tcp: connection refused")
	kv.setErr = errors.New("dial tcp: connection refused")
	c := NewCachedApplications(repo, kv, time.Minute, discard())

	got, err := c.ResolveTrackingCode(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, "https://dest.example", got.DestinationURL)
}

func TestResolveTrackingCode_CorruptEntryIsRefreshed(t *testing.T) {
	repo := mocks.NewMockApplicationRepository(t)
	repo.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil)
	kv := newFakeKV()
	kv.data[keyPrefix+"abc"] = "{not json"
	c := NewCachedApplications(repo, kv, time.Minute, discard())

	_, err := c.ResolveTrackingCode(context.Background(), "abc")
	require.NoError(t, err)

	var cached domain.TrackingLink
	require.NoError(t, json.Unmarshal([]byte(kv.data[keyPrefix+"abc"]), &cached))
	assert.Equal(t, *link, cached)
}

func TestPassThroughLookups(t *testing.T) {
	repo := mocks.NewMockApplicationRepository(t)
	repo.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1"}, nil)
	repo.EXPECT().GetOffer(mock.Anything, "o1").Return(nil, domain.ErrNotFound)
	c := NewCachedApplications(repo, newFakeKV(), 0, discard())

	app, err := c.GetApplication(context.Background(), "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)

	_, err = c.GetOffer(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
