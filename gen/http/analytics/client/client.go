// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics client HTTP transport
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Client lists the analytics service endpoint HTTP clients.
type Client struct {
	// Total Doer is the HTTP client used to make requests to the total endpoint.
	TotalDoer goahttp.Doer

	// Watch Doer is the HTTP client used to make requests to the watch endpoint.
	WatchDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme     string
	host       string
	encoder    func(*http.Request) goahttp.Encoder
	decoder    func(*http.Response) goahttp.Decoder
	dialer     goahttp.Dialer
	configurer *ConnConfigurer
}

// NewClient instantiates HTTP clients for all the analytics service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
	dialer goahttp.Dialer,
	cfn *ConnConfigurer,
) *Client {
	if cfn == nil {
		cfn = &ConnConfigurer{}
	}
	return &Client{
		TotalDoer:           doer,
		WatchDoer:           doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
		dialer:              dialer,
		configurer:          cfn,
	}
}

// Total returns an endpoint that makes HTTP requests to the analytics service
// total server.
func (c *Client) Total() goa.Endpoint {
	var (
		decodeResponse = DecodeTotalResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildTotalRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.TotalDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("analytics", "total", err)
		}
		return decodeResponse(resp)
	}
}

// Watch returns an endpoint that makes HTTP requests to the analytics service
// watch server.
func (c *Client) Watch() goa.Endpoint {
	var (
		decodeResponse = DecodeWatchResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildWatchRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		conn, resp, err := c.dialer.DialContext(ctx, req.URL.String(), req.Header)
		if err != nil {
			if resp != nil {
				return decodeResponse(resp)
			}
			return nil, goahttp.ErrRequestError("analytics", "watch", err)
		}
		if c.configurer.WatchFn != nil {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			conn = c.configurer.WatchFn(conn, cancel)
		}
		go func() {
			<-ctx.Done()
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client closing connection"),
				time.Now().Add(time.Second),
			)
			conn.Close()
		}()
		stream := &WatchClientStream{conn: conn}
		return stream, nil
	}
}
