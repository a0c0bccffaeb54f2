// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics client
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package analytics

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "analytics" service client.
type Client struct {
	TotalEndpoint goa.Endpoint
	WatchEndpoint goa.Endpoint
}

// NewClient initializes a "analytics" service client given the endpoints.
func NewClient(total, watch goa.Endpoint) *Client {
	return &Client{
		TotalEndpoint: total,
		WatchEndpoint: watch,
	}
}

// Total calls the "total" endpoint of the "analytics" service.
func (c *Client) Total(ctx context.Context) (res *Visitortotalresult, err error) {
	var ires any
	ires, err = c.TotalEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.(*Visitortotalresult), nil
}

// Watch calls the "watch" endpoint of the "analytics" service.
func (c *Client) Watch(ctx context.Context) (res WatchClientStream, err error) {
	var ires any
	ires, err = c.WatchEndpoint(ctx, nil)
	if err != nil {
		return
	}
	return ires.(WatchClientStream), nil
}
