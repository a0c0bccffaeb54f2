package main

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goahttp "goa.design/goa/v3/http"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	analytics "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics"
	analyticssvr "github.com/MohmedAnas/RB-WEB-sub000/gen/http/analytics/server"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/config"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/metrics"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/services"
)

// The watch endpoint upgrades the connection in place, so every wrapper
// in the middleware chain has to pass http.Hijacker through to the real
// response writer or the handshake dies with a 500.
func TestWatchUpgradesThroughMiddlewareChain(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.VisitorStat{}))
	require.NoError(t, db.Create(&domain.VisitorStat{TotalUsers: 3}).Error)

	endpoints := analytics.NewEndpoints(services.NewAnalyticsService(db))
	mux := goahttp.NewMuxer()
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	errorHandler := func(ctx context.Context, w http.ResponseWriter, err error) {}
	server := analyticssvr.New(endpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, nil, upgrader, nil)
	server.Mount(mux)

	cfg := &config.Config{
		App: config.AppConfig{Debug: true},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET"},
			AllowedHeaders: []string{"*"},
			MaxAge:         86400,
		},
	}

	// Same wrapping order as the production server.
	handler := setupSecurityHeaders(setupCORS(requestLogging(metrics.PrometheusMiddleware(mux)), cfg), cfg)

	ts := httptest.NewServer(handler)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/users/live"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "websocket handshake failed")
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var snap struct {
		LiveUsers  int   `json:"live_users"`
		TotalUsers int64 `json:"total_users"`
	}
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, 1, snap.LiveUsers)
	assert.Equal(t, int64(4), snap.TotalUsers)
}
