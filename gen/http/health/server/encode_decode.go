// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP server encoders and decoders
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"context"
	"net/http"

	healthviews "github.com/MohmedAnas/RB-WEB-sub000/gen/health/views"
	goahttp "goa.design/goa/v3/http"
)

// EncodeCheckResponse returns an encoder for responses returned by the health
// check endpoint.
func EncodeCheckResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res := v.(*healthviews.Healthresult)
		enc := encoder(ctx, w)
		body := NewCheckResponseBody(res.Projected)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}
