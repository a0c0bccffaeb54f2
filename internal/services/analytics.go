package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/analytics"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/metrics"
)

// AnalyticsService implements the visitor analytics service. Live count
// is the number of open watch streams; the running total is persisted so
// it survives restarts. Ancillary display data only.
type AnalyticsService struct {
	db *gorm.DB

	mu       sync.Mutex
	live     int
	watchers map[chan struct{}]struct{}
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{
		db:       db,
		watchers: make(map[chan struct{}]struct{}),
	}
}

// Total implements the total visitors method
func (s *AnalyticsService) Total(ctx context.Context) (*analytics.Visitortotalresult, error) {
	total, err := s.totalUsers()
	if err != nil {
		log.Printf("[ANALYTICS] Total failed: database error: %v", err)
		return nil, fmt.Errorf("failed to read visitor stats: %w", err)
	}
	return &analytics.Visitortotalresult{TotalUsers: total}, nil
}

// Watch implements the live visitor stream. Each connection counts as one
// live visitor and bumps the persisted total; every watcher receives an
// updated snapshot whenever the counts change.
func (s *AnalyticsService) Watch(ctx context.Context, stream analytics.WatchServerStream) error {
	notify := make(chan struct{}, 1)

	s.mu.Lock()
	s.live++
	s.watchers[notify] = struct{}{}
	live := s.live
	s.mu.Unlock()

	metrics.SetLiveVisitors(live)

	if err := s.incrementTotal(); err != nil {
		log.Printf("[ANALYTICS] Watch: failed to bump total visitors: %v", err)
	}
	s.broadcast()

	log.Printf("[ANALYTICS] Watcher connected: live=%d", live)

	defer func() {
		s.mu.Lock()
		s.live--
		delete(s.watchers, notify)
		remaining := s.live
		s.mu.Unlock()
		metrics.SetLiveVisitors(remaining)
		s.broadcast()
		log.Printf("[ANALYTICS] Watcher disconnected: live=%d", remaining)
		stream.Close()
	}()

	for {
		snapshot, err := s.snapshot()
		if err != nil {
			return err
		}
		if err := stream.Send(snapshot); err != nil {
			return nil // client went away
		}

		select {
		case <-ctx.Done():
			return nil
		case <-notify:
		}
	}
}

// broadcast wakes every watcher so it re-sends a fresh snapshot.
func (s *AnalyticsService) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default: // watcher already has a pending wakeup
		}
	}
}

func (s *AnalyticsService) snapshot() (*analytics.Visitorstatsresult, error) {
	total, err := s.totalUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to read visitor stats: %w", err)
	}
	s.mu.Lock()
	live := s.live
	s.mu.Unlock()
	return &analytics.Visitorstatsresult{
		LiveUsers:  live,
		TotalUsers: total,
	}, nil
}

func (s *AnalyticsService) totalUsers() (int64, error) {
	var stat domain.VisitorStat
	if err := s.db.First(&stat).Error; err != nil {
		return 0, err
	}
	return stat.TotalUsers, nil
}

func (s *AnalyticsService) incrementTotal() error {
	return s.db.Model(&domain.VisitorStat{}).
		Where("1 = 1").
		UpdateColumn("total_users", gorm.Expr("total_users + 1")).Error
}
