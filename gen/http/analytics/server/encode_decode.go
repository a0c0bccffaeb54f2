// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics HTTP server encoders and decoders
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"context"
	"net/http"

	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
	goahttp "goa.design/goa/v3/http"
)

// EncodeTotalResponse returns an encoder for responses returned by the
// analytics total endpoint.
func EncodeTotalResponse(encoder func(context.Context, http.ResponseWriter) goahttp.Encoder) func(context.Context, http.ResponseWriter, any) error {
	return func(ctx context.Context, w http.ResponseWriter, v any) error {
		res := v.(*analyticsviews.Visitortotalresult)
		enc := encoder(ctx, w)
		body := NewTotalResponseBody(res.Projected)
		w.WriteHeader(http.StatusOK)
		return enc.Encode(body)
	}
}
