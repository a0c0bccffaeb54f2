// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry HTTP client CLI support package
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	inquiry "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	goa "goa.design/goa/v3/pkg"
)

// BuildSubmitFeedbackPayload builds the payload for the inquiry
// submit_feedback endpoint from CLI flags.
func BuildSubmitFeedbackPayload(inquirySubmitFeedbackBody string) (*inquiry.SubmitFeedbackPayload, error) {
	var err error
	var body SubmitFeedbackRequestBody
	{
		err = json.Unmarshal([]byte(inquirySubmitFeedbackBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"description\": \"al\",\n      \"email\": \"Ut dignissimos.\",\n      \"enquiry_type\": \"Demo\",\n      \"name\": \"Suresh Traders\",\n      \"phone\": \"Voluptas laboriosam nulla est aut.\"\n   }'")
		}
		if !(body.EnquiryType == "Query" || body.EnquiryType == "Demo" || body.EnquiryType == "Renewal") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.enquiry_type", body.EnquiryType, []any{"Query", "Demo", "Renewal"}))
		}
		if utf8.RuneCountInString(body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 2, true))
		}
		if utf8.RuneCountInString(body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 100, false))
		}
		if utf8.RuneCountInString(body.Description) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", body.Description, utf8.RuneCountInString(body.Description), 1, true))
		}
		if utf8.RuneCountInString(body.Description) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", body.Description, utf8.RuneCountInString(body.Description), 5000, false))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &inquiry.SubmitFeedbackPayload{
		EnquiryType: body.EnquiryType,
		Name:        body.Name,
		Phone:       body.Phone,
		Email:       body.Email,
		Description: body.Description,
	}
	{
		var zero string
		if v.EnquiryType == zero {
			v.EnquiryType = "Query"
		}
	}

	return v, nil
}

// BuildSubmitFreeTrialPayload builds the payload for the inquiry
// submit_free_trial endpoint from CLI flags.
func BuildSubmitFreeTrialPayload(inquirySubmitFreeTrialBody string) (*inquiry.SubmitFreeTrialPayload, error) {
	var err error
	var body SubmitFreeTrialRequestBody
	{
		err = json.Unmarshal([]byte(inquirySubmitFreeTrialBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"city\": \"Quia illo ipsa.\",\n      \"email\": \"Aliquam delectus perspiciatis beatae distinctio.\",\n      \"name\": \"Adipisci dignissimos magni.\",\n      \"phone\": \"Rerum nam nihil asperiores architecto.\",\n      \"query\": \"Repudiandae eum fugit neque sed.\"\n   }'")
		}
	}
	v := &inquiry.SubmitFreeTrialPayload{
		Name:  body.Name,
		Phone: body.Phone,
		Email: body.Email,
		City:  body.City,
		Query: body.Query,
	}

	return v, nil
}

// BuildListPayload builds the payload for the inquiry list endpoint from CLI
// flags.
func BuildListPayload(inquiryListToken string) (*inquiry.ListInquiriesPayload, error) {
	var token *string
	{
		if inquiryListToken != "" {
			token = &inquiryListToken
		}
	}
	v := &inquiry.ListInquiriesPayload{}
	v.Token = token

	return v, nil
}

// BuildGetPayload builds the payload for the inquiry get endpoint from CLI
// flags.
func BuildGetPayload(inquiryGetID string, inquiryGetToken string) (*inquiry.GetInquiryPayload, error) {
	var err error
	var id int
	{
		var v int64
		v, err = strconv.ParseInt(inquiryGetID, 10, strconv.IntSize)
		id = int(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for id, must be INT")
		}
	}
	var token *string
	{
		if inquiryGetToken != "" {
			token = &inquiryGetToken
		}
	}
	v := &inquiry.GetInquiryPayload{}
	v.ID = id
	v.Token = token

	return v, nil
}

// BuildUpdatePayload builds the payload for the inquiry update endpoint from
// CLI flags.
func BuildUpdatePayload(inquiryUpdateBody string, inquiryUpdateID string, inquiryUpdateToken string) (*inquiry.UpdateInquiryPayload, error) {
	var err error
	var body UpdateRequestBody
	{
		err = json.Unmarshal([]byte(inquiryUpdateBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"assigned_to\": \"Natus quia.\",\n      \"disposition\": \"Quod reiciendis qui quaerat rerum et aut.\",\n      \"resolved_at\": \"Ea numquam maxime quidem.\",\n      \"status\": \"Schedule\"\n   }'")
		}
		if body.Status != nil {
			if !(*body.Status == "Pending" || *body.Status == "In Progress" || *body.Status == "Completed" || *body.Status == "Schedule" || *body.Status == "Dropped") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"Pending", "In Progress", "Completed", "Schedule", "Dropped"}))
			}
		}
		if err != nil {
			return nil, err
		}
	}
	var id int
	{
		var v int64
		v, err = strconv.ParseInt(inquiryUpdateID, 10, strconv.IntSize)
		id = int(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for id, must be INT")
		}
	}
	var token *string
	{
		if inquiryUpdateToken != "" {
			token = &inquiryUpdateToken
		}
	}
	v := &inquiry.UpdateInquiryPayload{
		Status:      body.Status,
		Disposition: body.Disposition,
		AssignedTo:  body.AssignedTo,
		ResolvedAt:  body.ResolvedAt,
	}
	v.ID = id
	v.Token = token

	return v, nil
}

// BuildDashboardPayload builds the payload for the inquiry dashboard endpoint
// from CLI flags.
func BuildDashboardPayload(inquiryDashboardEnquiryType string, inquiryDashboardPeriod string, inquiryDashboardStartDate string, inquiryDashboardEndDate string, inquiryDashboardSort string, inquiryDashboardIncludeHidden string, inquiryDashboardToken string) (*inquiry.DashboardPayload, error) {
	var err error
	var enquiryType string
	{
		if inquiryDashboardEnquiryType != "" {
			enquiryType = inquiryDashboardEnquiryType
			if !(enquiryType == "All" || enquiryType == "Query" || enquiryType == "Demo" || enquiryType == "Renewal") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("enquiry_type", enquiryType, []any{"All", "Query", "Demo", "Renewal"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var period string
	{
		if inquiryDashboardPeriod != "" {
			period = inquiryDashboardPeriod
			if !(period == "all" || period == "today" || period == "last_month" || period == "last_6_months" || period == "last_year" || period == "custom") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("period", period, []any{"all", "today", "last_month", "last_6_months", "last_year", "custom"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var startDate *string
	{
		if inquiryDashboardStartDate != "" {
			startDate = &inquiryDashboardStartDate
		}
	}
	var endDate *string
	{
		if inquiryDashboardEndDate != "" {
			endDate = &inquiryDashboardEndDate
		}
	}
	var sort string
	{
		if inquiryDashboardSort != "" {
			sort = inquiryDashboardSort
			if !(sort == "asc" || sort == "desc") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("sort", sort, []any{"asc", "desc"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var includeHidden bool
	{
		if inquiryDashboardIncludeHidden != "" {
			includeHidden, err = strconv.ParseBool(inquiryDashboardIncludeHidden)
			if err != nil {
				return nil, fmt.Errorf("invalid value for includeHidden, must be BOOL")
			}
		}
	}
	var token *string
	{
		if inquiryDashboardToken != "" {
			token = &inquiryDashboardToken
		}
	}
	v := &inquiry.DashboardPayload{}
	v.EnquiryType = enquiryType
	v.Period = period
	v.StartDate = startDate
	v.EndDate = endDate
	v.Sort = sort
	v.IncludeHidden = includeHidden
	v.Token = token

	return v, nil
}

// BuildScheduleMeetingPayload builds the payload for the inquiry
// schedule_meeting endpoint from CLI flags.
func BuildScheduleMeetingPayload(inquiryScheduleMeetingBody string, inquiryScheduleMeetingToken string) (*inquiry.ScheduleMeetingPayload, error) {
	var err error
	var body ScheduleMeetingRequestBody
	{
		err = json.Unmarshal([]byte(inquiryScheduleMeetingBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"customer_name\": \"Ut quisquam illum error nihil cumque.\",\n      \"inquiry_id\": 8960625032909542965,\n      \"schedule_date\": \"2025-03-14 11:00 AM\",\n      \"schedule_desc\": \"Atque et expedita atque eius et.\",\n      \"scheduled_by\": \"Velit nesciunt consequatur rerum ratione.\",\n      \"to\": \"ervin_reinger@wintheiser.biz\"\n   }'")
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.to", body.To, goa.FormatEmail))
		if err != nil {
			return nil, err
		}
	}
	var token *string
	{
		if inquiryScheduleMeetingToken != "" {
			token = &inquiryScheduleMeetingToken
		}
	}
	v := &inquiry.ScheduleMeetingPayload{
		InquiryID:    body.InquiryID,
		To:           body.To,
		ScheduleDate: body.ScheduleDate,
		ScheduleDesc: body.ScheduleDesc,
		ScheduledBy:  body.ScheduledBy,
		CustomerName: body.CustomerName,
	}
	v.Token = token

	return v, nil
}
