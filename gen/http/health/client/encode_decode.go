// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP client encoders and decoders
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

	health "github.com/MohmedAnas/RB-WEB-sub000/gen/health"
	healthviews "github.com/MohmedAnas/RB-WEB-sub000/gen/health/views"
	goahttp "goa.design/goa/v3/http"
)

// BuildCheckRequest instantiates a HTTP request object with method and path
// set to call the "health" service "check" endpoint
func (c *Client) BuildCheckRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: CheckHealthPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("health", "check", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// DecodeCheckResponse returns a decoder for responses returned by the health
// check endpoint. restoreBody controls whether the response body should be
// restored after having been read.
func DecodeCheckResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body CheckResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("health", "check", err)
			}
			p := NewCheckHealthresultOK(&body)
			view := "default"
			vres := &healthviews.Healthresult{Projected: p, View: view}
			if err = healthviews.ValidateHealthresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("health", "check", err)
			}
			res := health.NewHealthresult(vres)
			return res, nil
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("health", "check", resp.StatusCode, string(body))
		}
	}
}
