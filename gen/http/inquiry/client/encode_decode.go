// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry HTTP client encoders and decoders
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	inquiry "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	inquiryviews "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry/views"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// BuildSubmitFeedbackRequest instantiates a HTTP request object with method
// and path set to call the "inquiry" service "submit_feedback" endpoint
func (c *Client) BuildSubmitFeedbackRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: SubmitFeedbackInquiryPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "submit_feedback", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeSubmitFeedbackRequest returns an encoder for requests sent to the
// inquiry submit_feedback server.
func EncodeSubmitFeedbackRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.SubmitFeedbackPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "submit_feedback", "*inquiry.SubmitFeedbackPayload", v)
		}
		body := NewSubmitFeedbackRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("inquiry", "submit_feedback", err)
		}
		return nil
	}
}

// DecodeSubmitFeedbackResponse returns a decoder for responses returned by the
// inquiry submit_feedback endpoint. restoreBody controls whether the response
// body should be restored after having been read.
// DecodeSubmitFeedbackResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - "unavailable" (type *goa.ServiceError): http.StatusServiceUnavailable
//   - error: internal error
func DecodeSubmitFeedbackResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body SubmitFeedbackResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_feedback", err)
			}
			p := NewSubmitFeedbackSubmitresultOK(&body)
			view := "default"
			vres := &inquiryviews.Submitresult{Projected: p, View: view}
			if err = inquiryviews.ValidateSubmitresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_feedback", err)
			}
			res := inquiry.NewSubmitresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body SubmitFeedbackBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_feedback", err)
			}
			err = ValidateSubmitFeedbackBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_feedback", err)
			}
			return nil, NewSubmitFeedbackBadRequest(&body)
		case http.StatusServiceUnavailable:
			var (
				body SubmitFeedbackUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_feedback", err)
			}
			err = ValidateSubmitFeedbackUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_feedback", err)
			}
			return nil, NewSubmitFeedbackUnavailable(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "submit_feedback", resp.StatusCode, string(body))
		}
	}
}

// BuildSubmitFreeTrialRequest instantiates a HTTP request object with method
// and path set to call the "inquiry" service "submit_free_trial" endpoint
func (c *Client) BuildSubmitFreeTrialRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: SubmitFreeTrialInquiryPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "submit_free_trial", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeSubmitFreeTrialRequest returns an encoder for requests sent to the
// inquiry submit_free_trial server.
func EncodeSubmitFreeTrialRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.SubmitFreeTrialPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "submit_free_trial", "*inquiry.SubmitFreeTrialPayload", v)
		}
		body := NewSubmitFreeTrialRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("inquiry", "submit_free_trial", err)
		}
		return nil
	}
}

// DecodeSubmitFreeTrialResponse returns a decoder for responses returned by
// the inquiry submit_free_trial endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeSubmitFreeTrialResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - "unavailable" (type *goa.ServiceError): http.StatusServiceUnavailable
//   - error: internal error
func DecodeSubmitFreeTrialResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body SubmitFreeTrialResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_free_trial", err)
			}
			p := NewSubmitFreeTrialSubmitresultOK(&body)
			view := "default"
			vres := &inquiryviews.Submitresult{Projected: p, View: view}
			if err = inquiryviews.ValidateSubmitresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_free_trial", err)
			}
			res := inquiry.NewSubmitresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body SubmitFreeTrialBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_free_trial", err)
			}
			err = ValidateSubmitFreeTrialBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_free_trial", err)
			}
			return nil, NewSubmitFreeTrialBadRequest(&body)
		case http.StatusServiceUnavailable:
			var (
				body SubmitFreeTrialUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "submit_free_trial", err)
			}
			err = ValidateSubmitFreeTrialUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "submit_free_trial", err)
			}
			return nil, NewSubmitFreeTrialUnavailable(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "submit_free_trial", resp.StatusCode, string(body))
		}
	}
}

// BuildListRequest instantiates a HTTP request object with method and path set
// to call the "inquiry" service "list" endpoint
func (c *Client) BuildListRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ListInquiryPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "list", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeListRequest returns an encoder for requests sent to the inquiry list
// server.
func EncodeListRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.ListInquiriesPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "list", "*inquiry.ListInquiriesPayload", v)
		}
		if p.Token != nil {
			head := *p.Token
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		return nil
	}
}

// DecodeListResponse returns a decoder for responses returned by the inquiry
// list endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeListResponse may return the following errors:
//   - "unauthorized" (type *goa.ServiceError): http.StatusUnauthorized
//   - "unavailable" (type *goa.ServiceError): http.StatusServiceUnavailable
//   - error: internal error
func DecodeListResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body ListResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "list", err)
			}
			for _, e := range body {
				if e != nil {
					if err2 := ValidateInquiryresultResponse(e); err2 != nil {
						err = goa.MergeErrors(err, err2)
					}
				}
			}
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "list", err)
			}
			res := NewListInquiryresultOK(body)
			return res, nil
		case http.StatusUnauthorized:
			var (
				body ListUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "list", err)
			}
			err = ValidateListUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "list", err)
			}
			return nil, NewListUnauthorized(&body)
		case http.StatusServiceUnavailable:
			var (
				body ListUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "list", err)
			}
			err = ValidateListUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "list", err)
			}
			return nil, NewListUnavailable(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "list", resp.StatusCode, string(body))
		}
	}
}

// BuildGetRequest instantiates a HTTP request object with method and path set
// to call the "inquiry" service "get" endpoint
func (c *Client) BuildGetRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		id int
	)
	{
		p, ok := v.(*inquiry.GetInquiryPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("inquiry", "get", "*inquiry.GetInquiryPayload", v)
		}
		id = p.ID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: GetInquiryPath(id)}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "get", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeGetRequest returns an encoder for requests sent to the inquiry get
// server.
func EncodeGetRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.GetInquiryPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "get", "*inquiry.GetInquiryPayload", v)
		}
		if p.Token != nil {
			head := *p.Token
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		return nil
	}
}

// DecodeGetResponse returns a decoder for responses returned by the inquiry
// get endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeGetResponse may return the following errors:
//   - "not_found" (type *goa.ServiceError): http.StatusNotFound
//   - "unauthorized" (type *goa.ServiceError): http.StatusUnauthorized
//   - error: internal error
func DecodeGetResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body GetResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "get", err)
			}
			p := NewGetInquiryresultOK(&body)
			view := "default"
			vres := &inquiryviews.Inquiryresult{Projected: p, View: view}
			if err = inquiryviews.ValidateInquiryresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "get", err)
			}
			res := inquiry.NewInquiryresult(vres)
			return res, nil
		case http.StatusNotFound:
			var (
				body GetNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "get", err)
			}
			err = ValidateGetNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "get", err)
			}
			return nil, NewGetNotFound(&body)
		case http.StatusUnauthorized:
			var (
				body GetUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "get", err)
			}
			err = ValidateGetUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "get", err)
			}
			return nil, NewGetUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "get", resp.StatusCode, string(body))
		}
	}
}

// BuildUpdateRequest instantiates a HTTP request object with method and path
// set to call the "inquiry" service "update" endpoint
func (c *Client) BuildUpdateRequest(ctx context.Context, v any) (*http.Request, error) {
	var (
		id int
	)
	{
		p, ok := v.(*inquiry.UpdateInquiryPayload)
		if !ok {
			return nil, goahttp.ErrInvalidType("inquiry", "update", "*inquiry.UpdateInquiryPayload", v)
		}
		id = p.ID
	}
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: UpdateInquiryPath(id)}
	req, err := http.NewRequest("PUT", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "update", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeUpdateRequest returns an encoder for requests sent to the inquiry
// update server.
func EncodeUpdateRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.UpdateInquiryPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "update", "*inquiry.UpdateInquiryPayload", v)
		}
		if p.Token != nil {
			head := *p.Token
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		body := NewUpdateRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("inquiry", "update", err)
		}
		return nil
	}
}

// DecodeUpdateResponse returns a decoder for responses returned by the inquiry
// update endpoint. restoreBody controls whether the response body should be
// restored after having been read.
// DecodeUpdateResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - "not_found" (type *goa.ServiceError): http.StatusNotFound
//   - "unauthorized" (type *goa.ServiceError): http.StatusUnauthorized
//   - error: internal error
func DecodeUpdateResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body UpdateResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "update", err)
			}
			p := NewUpdateInquiryresultOK(&body)
			view := "default"
			vres := &inquiryviews.Inquiryresult{Projected: p, View: view}
			if err = inquiryviews.ValidateInquiryresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "update", err)
			}
			res := inquiry.NewInquiryresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body UpdateBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "update", err)
			}
			err = ValidateUpdateBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "update", err)
			}
			return nil, NewUpdateBadRequest(&body)
		case http.StatusNotFound:
			var (
				body UpdateNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "update", err)
			}
			err = ValidateUpdateNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "update", err)
			}
			return nil, NewUpdateNotFound(&body)
		case http.StatusUnauthorized:
			var (
				body UpdateUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "update", err)
			}
			err = ValidateUpdateUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "update", err)
			}
			return nil, NewUpdateUnauthorized(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "update", resp.StatusCode, string(body))
		}
	}
}

// BuildDashboardRequest instantiates a HTTP request object with method and
// path set to call the "inquiry" service "dashboard" endpoint
func (c *Client) BuildDashboardRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: DashboardInquiryPath()}
	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "dashboard", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeDashboardRequest returns an encoder for requests sent to the inquiry
// dashboard server.
func EncodeDashboardRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.DashboardPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "dashboard", "*inquiry.DashboardPayload", v)
		}
		if p.Token != nil {
			head := *p.Token
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		values := req.URL.Query()
		values.Add("enquiry_type", p.EnquiryType)
		values.Add("period", p.Period)
		if p.StartDate != nil {
			values.Add("start_date", *p.StartDate)
		}
		if p.EndDate != nil {
			values.Add("end_date", *p.EndDate)
		}
		values.Add("sort", p.Sort)
		values.Add("include_hidden", fmt.Sprintf("%v", p.IncludeHidden))
		req.URL.RawQuery = values.Encode()
		return nil
	}
}

// DecodeDashboardResponse returns a decoder for responses returned by the
// inquiry dashboard endpoint. restoreBody controls whether the response body
// should be restored after having been read.
// DecodeDashboardResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - "unauthorized" (type *goa.ServiceError): http.StatusUnauthorized
//   - "unavailable" (type *goa.ServiceError): http.StatusServiceUnavailable
//   - error: internal error
func DecodeDashboardResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body DashboardResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "dashboard", err)
			}
			for _, e := range body {
				if e != nil {
					if err2 := ValidateInquiryresultResponse(e); err2 != nil {
						err = goa.MergeErrors(err, err2)
					}
				}
			}
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "dashboard", err)
			}
			res := NewDashboardInquiryresultOK(body)
			return res, nil
		case http.StatusBadRequest:
			var (
				body DashboardBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "dashboard", err)
			}
			err = ValidateDashboardBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "dashboard", err)
			}
			return nil, NewDashboardBadRequest(&body)
		case http.StatusUnauthorized:
			var (
				body DashboardUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "dashboard", err)
			}
			err = ValidateDashboardUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "dashboard", err)
			}
			return nil, NewDashboardUnauthorized(&body)
		case http.StatusServiceUnavailable:
			var (
				body DashboardUnavailableResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "dashboard", err)
			}
			err = ValidateDashboardUnavailableResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "dashboard", err)
			}
			return nil, NewDashboardUnavailable(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "dashboard", resp.StatusCode, string(body))
		}
	}
}

// BuildScheduleMeetingRequest instantiates a HTTP request object with method
// and path set to call the "inquiry" service "schedule_meeting" endpoint
func (c *Client) BuildScheduleMeetingRequest(ctx context.Context, v any) (*http.Request, error) {
	u := &url.URL{Scheme: c.scheme, Host: c.host, Path: ScheduleMeetingInquiryPath()}
	req, err := http.NewRequest("POST", u.String(), nil)
	if err != nil {
		return nil, goahttp.ErrInvalidURL("inquiry", "schedule_meeting", u.String(), err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	return req, nil
}

// EncodeScheduleMeetingRequest returns an encoder for requests sent to the
// inquiry schedule_meeting server.
func EncodeScheduleMeetingRequest(encoder func(*http.Request) goahttp.Encoder) func(*http.Request, any) error {
	return func(req *http.Request, v any) error {
		p, ok := v.(*inquiry.ScheduleMeetingPayload)
		if !ok {
			return goahttp.ErrInvalidType("inquiry", "schedule_meeting", "*inquiry.ScheduleMeetingPayload", v)
		}
		if p.Token != nil {
			head := *p.Token
			if !strings.Contains(head, " ") {
				req.Header.Set("Authorization", "Bearer "+head)
			} else {
				req.Header.Set("Authorization", head)
			}
		}
		body := NewScheduleMeetingRequestBody(p)
		if err := encoder(req).Encode(&body); err != nil {
			return goahttp.ErrEncodingError("inquiry", "schedule_meeting", err)
		}
		return nil
	}
}

// DecodeScheduleMeetingResponse returns a decoder for responses returned by
// the inquiry schedule_meeting endpoint. restoreBody controls whether the
// response body should be restored after having been read.
// DecodeScheduleMeetingResponse may return the following errors:
//   - "bad_request" (type *goa.ServiceError): http.StatusBadRequest
//   - "not_found" (type *goa.ServiceError): http.StatusNotFound
//   - "unauthorized" (type *goa.ServiceError): http.StatusUnauthorized
//   - "mail_failure" (type *inquiry.MailFailure): http.StatusBadGateway
//   - error: internal error
func DecodeScheduleMeetingResponse(decoder func(*http.Response) goahttp.Decoder, restoreBody bool) func(*http.Response) (any, error) {
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
				body ScheduleMeetingResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "schedule_meeting", err)
			}
			p := NewScheduleMeetingMessageresultOK(&body)
			view := "default"
			vres := &inquiryviews.Messageresult{Projected: p, View: view}
			if err = inquiryviews.ValidateMessageresult(vres); err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "schedule_meeting", err)
			}
			res := inquiry.NewMessageresult(vres)
			return res, nil
		case http.StatusBadRequest:
			var (
				body ScheduleMeetingBadRequestResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "schedule_meeting", err)
			}
			err = ValidateScheduleMeetingBadRequestResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "schedule_meeting", err)
			}
			return nil, NewScheduleMeetingBadRequest(&body)
		case http.StatusNotFound:
			var (
				body ScheduleMeetingNotFoundResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "schedule_meeting", err)
			}
			err = ValidateScheduleMeetingNotFoundResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "schedule_meeting", err)
			}
			return nil, NewScheduleMeetingNotFound(&body)
		case http.StatusUnauthorized:
			var (
				body ScheduleMeetingUnauthorizedResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "schedule_meeting", err)
			}
			err = ValidateScheduleMeetingUnauthorizedResponseBody(&body)
			if err != nil {
				return nil, goahttp.ErrValidationError("inquiry", "schedule_meeting", err)
			}
			return nil, NewScheduleMeetingUnauthorized(&body)
		case http.StatusBadGateway:
			var (
				body ScheduleMeetingMailFailureResponseBody
				err  error
			)
			err = decoder(resp).Decode(&body)
			if err != nil {
				return nil, goahttp.ErrDecodingError("inquiry", "schedule_meeting", err)
			}
			return nil, NewScheduleMeetingMailFailure(&body)
		default:
			body, _ := io.ReadAll(resp.Body)
			return nil, goahttp.ErrInvalidResponse("inquiry", "schedule_meeting", resp.StatusCode, string(body))
		}
	}
}

// unmarshalInquiryresultResponseToInquiryInquiryresult builds a value of type
// *inquiry.Inquiryresult from a value of type *InquiryresultResponse.
func unmarshalInquiryresultResponseToInquiryInquiryresult(v *InquiryresultResponse) *inquiry.Inquiryresult {
	res := &inquiry.Inquiryresult{
		ID:             *v.ID,
		EnquiryType:    *v.EnquiryType,
		Name:           v.Name,
		Phone:          v.Phone,
		Email:          v.Email,
		Description:    v.Description,
		Status:         *v.Status,
		Disposition:    v.Disposition,
		AssignedTo:     v.AssignedTo,
		Priority:       *v.Priority,
		ResolutionTime: v.ResolutionTime,
		SubmittedAt:    *v.SubmittedAt,
		ResolvedAt:     v.ResolvedAt,
		UpdatedAt:      v.UpdatedAt,
	}

	return res
}
