// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics WebSocket client streaming
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"context"
	"io"

	analytics "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics"
	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
	"github.com/gorilla/websocket"
	goahttp "goa.design/goa/v3/http"
)

// ConnConfigurer holds the websocket connection configurer functions for the
// streaming endpoints in "analytics" service.
type ConnConfigurer struct {
	WatchFn goahttp.ConnConfigureFunc
}

// WatchClientStream implements the analytics.WatchClientStream interface.
type WatchClientStream struct {
	// conn is the underlying websocket connection.
	conn *websocket.Conn
}

// NewConnConfigurer initializes the websocket connection configurer function
// with fn for all the streaming endpoints in "analytics" service.
func NewConnConfigurer(fn goahttp.ConnConfigureFunc) *ConnConfigurer {
	return &ConnConfigurer{
		WatchFn: fn,
	}
}

// Recv reads instances of "analytics.Visitorstatsresult" from the "watch"
// endpoint websocket connection.
func (s *WatchClientStream) Recv() (*analytics.Visitorstatsresult, error) {
	var (
		rv   *analytics.Visitorstatsresult
		body WatchResponseBody
		err  error
	)
	err = s.conn.ReadJSON(&body)
	if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		s.conn.Close()
		return rv, io.EOF
	}
	if err != nil {
		return rv, err
	}
	res := NewWatchVisitorstatsresultOK(&body)
	vres := &analyticsviews.Visitorstatsresult{res, "default"}
	if err := analyticsviews.ValidateVisitorstatsresult(vres); err != nil {
		return rv, goahttp.ErrValidationError("analytics", "watch", err)
	}
	return analytics.NewVisitorstatsresult(vres), nil
}

// RecvWithContext reads instances of "analytics.Visitorstatsresult" from the
// "watch" endpoint websocket connection with context.
func (s *WatchClientStream) RecvWithContext(ctx context.Context) (*analytics.Visitorstatsresult, error) {
	return s.Recv()
}
