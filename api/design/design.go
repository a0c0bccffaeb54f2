package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("rbinfotech", func() {
	Title("RB Infotech API")
	Description("Backend API for RB Infotech - accounting software reseller website and inquiry dashboard")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Common error types
var Unauthorized = Type("Unauthorized", func() {
	Description("Unauthorized access")
	Attribute("message", String, "Error message", func() {
		Example("Unauthorized")
	})
})

var NotFound = Type("NotFound", func() {
	Description("Resource not found")
	Attribute("message", String, "Error message", func() {
		Example("Inquiry not found")
	})
})

var BadRequest = Type("BadRequest", func() {
	Description("Bad request")
	Attribute("message", String, "Error message", func() {
		Example("Invalid request")
	})
})

var StoreUnavailable = Type("StoreUnavailable", func() {
	Description("Database unreachable")
	Attribute("message", String, "Error message", func() {
		Example("Store unavailable, please retry")
	})
})

var MailFailure = Type("MailFailure", func() {
	Description("Notification email could not be delivered")
	Attribute("message", String, "Error message", func() {
		Example("Failed to send meeting confirmation email")
	})
})

// JWT Security
var JWTAuth = JWTSecurity("jwt", func() {
	Description("JWT authentication")
	Scope("admin", "Admin access")
	Scope("staff", "Staff access")
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("RB Infotech API")
	})
})

// Inquiry service: public submission forms plus the staff dashboard API.
var _ = Service("inquiry", func() {
	Description("Customer inquiry intake and dashboard service")
	Error("bad_request", BadRequest)
	Error("not_found", NotFound)
	Error("unauthorized", Unauthorized)
	Error("unavailable", StoreUnavailable)

	Method("submit_feedback", func() {
		Description("Submit a feedback / product query form")
		Payload(SubmitFeedbackPayload)
		Result(SubmitResult)
		Error("bad_request")
		Error("unavailable")
		HTTP(func() {
			POST("/api/feedback")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("submit_free_trial", func() {
		Description("Submit a free-trial request form")
		Payload(SubmitFreeTrialPayload)
		Result(SubmitResult)
		Error("bad_request")
		Error("unavailable")
		HTTP(func() {
			POST("/api/free-trial")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("list", func() {
		Description("List all inquiries (Staff/Admin only). Unfiltered and unpaginated; ordering is not guaranteed.")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ListInquiriesPayload)
		Result(ArrayOf(InquiryResult))
		Error("unauthorized")
		Error("unavailable")
		HTTP(func() {
			GET("/api/inquiries")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("get", func() {
		Description("Get a single inquiry by ID (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(GetInquiryPayload)
		Result(InquiryResult)
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			GET("/api/inquiries/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("update", func() {
		Description("Update status, disposition and assignment of an inquiry (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(UpdateInquiryPayload)
		Result(InquiryResult)
		Error("bad_request")
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			PUT("/api/inquiries/{id}")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("dashboard", func() {
		Description("Filtered and sorted dashboard view of inquiries (Staff/Admin only)")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(DashboardPayload)
		Result(ArrayOf(InquiryResult))
		Error("bad_request")
		Error("unauthorized")
		Error("unavailable")
		HTTP(func() {
			GET("/api/inquiries/dashboard")
			Param("enquiry_type")
			Param("period")
			Param("start_date")
			Param("end_date")
			Param("sort")
			Param("include_hidden")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("unauthorized", StatusUnauthorized)
			Response("unavailable", StatusServiceUnavailable)
		})
	})

	Method("schedule_meeting", func() {
		Description("Send a meeting confirmation email to a customer (Staff/Admin only). Does not modify the inquiry.")
		Security(JWTAuth, func() {
			Scope("staff")
		})
		Payload(ScheduleMeetingPayload)
		Result(MessageResult)
		Error("bad_request")
		Error("not_found")
		Error("unauthorized")
		Error("mail_failure", MailFailure)
		HTTP(func() {
			POST("/api/schedule-meeting")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
			Response("mail_failure", StatusBadGateway)
		})
	})
})

var InquiryResult = ResultType("InquiryResult", func() {
	Attribute("id", Int, "Inquiry ID")
	Attribute("enquiry_type", String, "Enquiry type (Query, Demo, Renewal)")
	Attribute("name", String, "Customer name")
	Attribute("phone", String, "Phone number")
	Attribute("email", String, "Email address")
	Attribute("description", String, "Inquiry description")
	Attribute("status", String, "Status (Pending, In Progress, Completed, Schedule, Dropped)")
	Attribute("disposition", String, "Drop disposition, set only while status is Dropped")
	Attribute("assigned_to", String, "Assigned employee")
	Attribute("priority", String, "Derived priority (Hot, Recent, Cold, Old)")
	Attribute("resolution_time", String, "Human-readable time to resolution, Completed inquiries only")
	Attribute("submitted_at", String, "Submission timestamp")
	Attribute("resolved_at", String, "Resolution timestamp, Completed inquiries only")
	Attribute("updated_at", String, "Last update timestamp")
	Required("id", "enquiry_type", "status", "priority", "submitted_at")
})

var SubmitFeedbackPayload = Type("SubmitFeedbackPayload", func() {
	Attribute("enquiry_type", String, "Enquiry type", func() {
		Enum("Query", "Demo", "Renewal")
		Default("Query")
	})
	Attribute("name", String, "Customer name", func() {
		MinLength(2)
		MaxLength(100)
		Example("Suresh Traders")
	})
	Attribute("phone", String, "Phone number")
	Attribute("email", String, "Email address")
	Attribute("description", String, "What the customer is looking for", func() {
		MinLength(1)
		MaxLength(5000)
	})
	Required("name", "description")
})

var SubmitFreeTrialPayload = Type("SubmitFreeTrialPayload", func() {
	Attribute("name", String, "Customer name")
	Attribute("phone", String, "Phone number")
	Attribute("email", String, "Email address")
	Attribute("city", String, "Customer city")
	Attribute("query", String, "Additional notes")
})

var SubmitResult = ResultType("SubmitResult", func() {
	Attribute("id", Int, "Inquiry ID")
	Attribute("message", String, "Confirmation message")
	Required("id", "message")
})

var MessageResult = ResultType("MessageResult", func() {
	Attribute("message", String, "Confirmation message")
	Required("message")
})

var ListInquiriesPayload = Type("ListInquiriesPayload", func() {
	Token("token", String, "JWT token")
})

var GetInquiryPayload = Type("GetInquiryPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", Int, "Inquiry ID")
	Required("id")
})

var UpdateInquiryPayload = Type("UpdateInquiryPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", Int, "Inquiry ID")
	Attribute("status", String, "New status", func() {
		Enum("Pending", "In Progress", "Completed", "Schedule", "Dropped")
	})
	Attribute("disposition", String, "Drop disposition, accepted only when the resulting status is Dropped")
	Attribute("assigned_to", String, "Employee to assign; empty string unassigns")
	Attribute("resolved_at", String, "Explicit resolution timestamp (RFC3339); honored only with status Completed")
	Required("id")
})

var DashboardPayload = Type("DashboardPayload", func() {
	Token("token", String, "JWT token")
	Attribute("enquiry_type", String, "Enquiry type filter", func() {
		Enum("All", "Query", "Demo", "Renewal")
		Default("All")
	})
	Attribute("period", String, "Date range preset applied to submission time", func() {
		Enum("all", "today", "last_month", "last_6_months", "last_year", "custom")
		Default("all")
	})
	Attribute("start_date", String, "Custom range start (YYYY-MM-DD, inclusive)")
	Attribute("end_date", String, "Custom range end (YYYY-MM-DD, inclusive)")
	Attribute("sort", String, "Sort by submission time", func() {
		Enum("asc", "desc")
		Default("desc")
	})
	Attribute("include_hidden", Boolean, "Include closed inquiries older than the visibility window", func() {
		Default(false)
	})
})

var ScheduleMeetingPayload = Type("ScheduleMeetingPayload", func() {
	Token("token", String, "JWT token")
	Attribute("inquiry_id", Int, "Inquiry the meeting concerns")
	Attribute("to", String, "Recipient email address", func() {
		Format(FormatEmail)
	})
	Attribute("schedule_date", String, "Meeting date/time as shown to the customer", func() {
		Example("2025-03-14 11:00 AM")
	})
	Attribute("schedule_desc", String, "Meeting agenda")
	Attribute("scheduled_by", String, "Employee scheduling the meeting")
	Attribute("customer_name", String, "Customer name for the greeting")
	Required("inquiry_id", "to", "schedule_date", "scheduled_by")
})

// Authentication service
var _ = Service("auth", func() {
	Description("Authentication and operator account service")
	Error("unauthorized", Unauthorized)
	Error("not_found", NotFound)
	Error("bad_request", BadRequest)

	Method("login", func() {
		Description("Authenticate an operator and return a JWT token")
		Payload(LoginPayload)
		Result(LoginResult)
		Error("unauthorized")
		HTTP(func() {
			POST("/api/auth/login")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("logout", func() {
		Description("Logout operator")
		Security(JWTAuth)
		Payload(LogoutPayload)
		Result(LogoutResult)
		HTTP(func() {
			POST("/api/auth/logout")
			Response(StatusOK)
		})
	})

	Method("me", func() {
		Description("Get current operator information")
		Security(JWTAuth)
		Payload(MePayload)
		Result(UserResult)
		Error("unauthorized")
		HTTP(func() {
			GET("/api/auth/me")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("create_user", func() {
		Description("Create a new operator account (Admin only)")
		Security(JWTAuth, func() {
			Scope("admin")
		})
		Payload(CreateUserPayload)
		Result(UserResult)
		Error("bad_request")
		Error("unauthorized")
		HTTP(func() {
			POST("/api/auth/users")
			Response(StatusCreated)
			Response("bad_request", StatusBadRequest)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("list_users", func() {
		Description("List all operator accounts (Admin only)")
		Security(JWTAuth, func() {
			Scope("admin")
		})
		Payload(ListUsersPayload)
		Result(ArrayOf(UserResult))
		Error("unauthorized")
		HTTP(func() {
			GET("/api/auth/users")
			Param("skip")
			Param("limit")
			Response(StatusOK)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("get_user", func() {
		Description("Get operator account by ID (Admin only)")
		Security(JWTAuth, func() {
			Scope("admin")
		})
		Payload(GetUserPayload)
		Result(UserResult)
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			GET("/api/auth/users/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("update_user", func() {
		Description("Update operator account (Admin only)")
		Security(JWTAuth, func() {
			Scope("admin")
		})
		Payload(UpdateUserPayload)
		Result(UserResult)
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			PUT("/api/auth/users/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})

	Method("delete_user", func() {
		Description("Delete operator account (Admin only)")
		Security(JWTAuth, func() {
			Scope("admin")
		})
		Payload(DeleteUserPayload)
		Error("not_found")
		Error("unauthorized")
		HTTP(func() {
			DELETE("/api/auth/users/{id}")
			Response(StatusNoContent)
			Response("not_found", StatusNotFound)
			Response("unauthorized", StatusUnauthorized)
		})
	})
})

// Authentication payloads and results
var LoginPayload = Type("LoginPayload", func() {
	Attribute("username", String, "Username", func() {
		MinLength(1)
		Example("admin")
	})
	Attribute("password", String, "Password", func() {
		MinLength(1)
		Example("password")
	})
	Required("username", "password")
})

var LoginResult = ResultType("LoginResult", func() {
	Attribute("access_token", String, "JWT access token")
	Attribute("token_type", String, "Token type", func() {
		Default("bearer")
		Example("bearer")
	})
	Required("access_token", "token_type")
})

var LogoutPayload = Type("LogoutPayload", func() {
	Token("token", String, "JWT token")
})

var MePayload = Type("MePayload", func() {
	Token("token", String, "JWT token")
})

var LogoutResult = ResultType("LogoutResult", func() {
	Attribute("message", String, "Logout message", func() {
		Example("Successfully logged out")
	})
})

var UserResult = ResultType("UserResult", func() {
	Attribute("id", Int, "User ID")
	Attribute("username", String, "Username")
	Attribute("email", String, "Email address")
	Attribute("full_name", String, "Full name")
	Attribute("is_active", Boolean, "Is user active")
	Attribute("is_admin", Boolean, "Is user admin")
	Attribute("is_staff", Boolean, "Is user staff")
	Attribute("created_at", String, "Creation timestamp")
	Attribute("updated_at", String, "Update timestamp")
	Attribute("last_login", String, "Last login timestamp")
	Required("id", "username", "email", "is_active", "is_admin", "is_staff", "created_at")
})

var CreateUserPayload = Type("CreateUserPayload", func() {
	Token("token", String, "JWT token")
	Attribute("username", String, "Username", func() {
		MinLength(1)
		Example("newuser")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		Example("user@example.com")
	})
	Attribute("password", String, "Password", func() {
		MinLength(6)
		Example("password123")
	})
	Attribute("full_name", String, "Full name")
	Attribute("is_active", Boolean, "Is user active", func() {
		Default(true)
	})
	Attribute("is_admin", Boolean, "Is user admin", func() {
		Default(false)
	})
	Attribute("is_staff", Boolean, "Is user staff", func() {
		Default(false)
	})
	Required("username", "email", "password")
})

var ListUsersPayload = Type("ListUsersPayload", func() {
	Token("token", String, "JWT token")
	Attribute("skip", Int, "Skip records", func() {
		Default(0)
		Minimum(0)
	})
	Attribute("limit", Int, "Limit records", func() {
		Default(100)
		Minimum(1)
		Maximum(500)
	})
})

var GetUserPayload = Type("GetUserPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", Int, "User ID")
	Required("id")
})

var UpdateUserPayload = Type("UpdateUserPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", Int, "User ID")
	Attribute("username", String, "Username")
	Attribute("email", String, "Email address")
	Attribute("full_name", String, "Full name")
	Attribute("is_active", Boolean, "Is user active")
	Attribute("is_admin", Boolean, "Is user admin")
	Attribute("is_staff", Boolean, "Is user staff")
	Attribute("password", String, "Password")
	Required("id")
})

var DeleteUserPayload = Type("DeleteUserPayload", func() {
	Token("token", String, "JWT token")
	Attribute("id", Int, "User ID")
	Required("id")
})

// Visitor analytics service
var _ = Service("analytics", func() {
	Description("Website visitor analytics service")

	Method("total", func() {
		Description("Get the running total of website visitors")
		Result(VisitorTotalResult)
		HTTP(func() {
			GET("/users/total")
			Response(StatusOK)
		})
	})

	Method("watch", func() {
		Description("Stream live and total visitor counts over a WebSocket")
		StreamingResult(VisitorStatsResult)
		HTTP(func() {
			GET("/users/live")
			Response(StatusOK)
		})
	})
})

var VisitorTotalResult = ResultType("VisitorTotalResult", func() {
	Attribute("total_users", Int64, "Total visitors to date")
	Required("total_users")
})

var VisitorStatsResult = ResultType("VisitorStatsResult", func() {
	Attribute("live_users", Int, "Currently connected visitors")
	Attribute("total_users", Int64, "Total visitors to date")
	Required("live_users", "total_users")
})
