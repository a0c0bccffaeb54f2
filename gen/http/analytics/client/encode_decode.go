// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics HTTP client encoders and decoders
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	analytics "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics"
	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
	goahttp "goa.design/goa/v3/http"
)

// BuildTotalRequest instantiates a HTTP request object with method and path
// set to call the "analytics" service "total" endpoint
func (c *Client) BuildTotalRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: TotalAnalyticsPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("analytics", "total", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeTotalResponse returns a decoder for responses returned by the
// analytics total endpoint. restoreBody controls whether the response body
// should be restored after having been read.
func DecodeTotalResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body TotalResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("analytics", "total", err)
			}
			p := NewTotalVisitortotalresultOK(&body)
			view := "default"
			vres := &analyticsviews.Visitortotalresult{Projected: p, View: view}
			if err = analyticsviews.ValidateVisitortotalresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("analytics", "total", err)
			}
			res := analytics.NewVisitortotalresult(vres)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("analytics", "total", resp.StatusCode, string(body))
		}
	}
}

// BuildWatchRequest instantiates a HTTP request object with method and path
// set to call the "analytics" service "watch" endpoint
func (c *Client) BuildWatchRequest(ctx context.Context, v any) (*http.Request, error) {
	scheme := c.scheme
	switch c.scheme {
	case "http":
		scheme = "ws"
	case "https":
		scheme = "wss"
	}
	u := &url.URL{Scheme: scheme, Host: c.host, Path: WatchAnalyticsPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("analytics", "watch", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeWatchResponse returns a decoder for responses returned by the
// analytics watch endpoint. restoreBody controls whether the response body
// should be restored after having been read.
func DecodeWatchResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
	return func(resp *http.Response) (any, error) {
		if restoreBody {
			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			resp.Body = io.NopCloser(bytes.NewBuffer(b))
			defer func() {
				resp.Body = io.NopCloser(bytes.NewBuffer(b))
			}()
		} else {
			defer resp.Body.Close()
		}
		switch resp.StatusCode {
		case http.StatusOK:
			var (
				body WatchResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("analytics", "watch", err)
			}
			p := NewWatchVisitorstatsresultOK(&body)
			view := "default"
			vres := &analyticsviews.Visitorstatsresult{Projected: p, View: view}
			if err = analyticsviews.ValidateVisitorstatsresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("analytics", "watch", err)
			}
			res := analytics.NewVisitorstatsresult(vres)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("analytics", "watch", resp.StatusCode, string(body))
		}
	}
}
