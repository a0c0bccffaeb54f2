package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/analytics"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
)

type stubWatchStream struct {
	mu     sync.Mutex
	sent   []*analytics.Visitorstatsresult
	closed bool
	sentCh chan struct{}
}

func newStubWatchStream() *stubWatchStream {
	return &stubWatchStream{sentCh: make(chan struct{}, 16)}
}

func (s *stubWatchStream) Send(res *analytics.Visitorstatsresult) error {
	s.mu.Lock()
	s.sent = append(s.sent, res)
	s.mu.Unlock()
	select {
	case s.sentCh <- struct{}{}:
	default:
	}
	return nil
}

func (s *stubWatchStream) SendWithContext(_ context.Context, res *analytics.Visitorstatsresult) error {
	return s.Send(res)
}

func (s *stubWatchStream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *stubWatchStream) first() *analytics.Visitorstatsresult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return nil
	}
	return s.sent[0]
}

func seedVisitorTotal(t *testing.T, db *gorm.DB, total int64) {
	t.Helper()
	require.NoError(t, db.Create(&domain.VisitorStat{TotalUsers: total}).Error)
}

func TestAnalyticsTotal(t *testing.T) {
	db := setupTestDB(t)
	seedVisitorTotal(t, db, 120)
	svc := NewAnalyticsService(db)

	res, err := svc.Total(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), res.TotalUsers)
}

func TestAnalyticsWatch(t *testing.T) {
	db := setupTestDB(t)
	seedVisitorTotal(t, db, 5)
	svc := NewAnalyticsService(db)

	ctx, cancel := context.WithCancel(context.Background())
	stream := newStubWatchStream()

	done := make(chan error, 1)
	go func() { done <- svc.Watch(ctx, stream) }()

	select {
	case <-stream.sentCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first snapshot")
	}

	// Connecting bumps the persisted total and counts as one live visitor.
	snap := stream.first()
	require.NotNil(t, snap)
	assert.Equal(t, 1, snap.LiveUsers)
	assert.Equal(t, int64(6), snap.TotalUsers)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher shutdown")
	}

	stream.mu.Lock()
	closed := stream.closed
	stream.mu.Unlock()
	assert.True(t, closed)

	svc.mu.Lock()
	live := svc.live
	svc.mu.Unlock()
	assert.Equal(t, 0, live)

	var stat domain.VisitorStat
	require.NoError(t, db.First(&stat).Error)
	assert.Equal(t, int64(6), stat.TotalUsers)
}
