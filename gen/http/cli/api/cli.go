// Code generated by goa v3.23.1, DO NOT EDIT.
//
// api HTTP client CLI support package
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package cli

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	analyticsc "github.com/MohmedAnas/RB-WEB-sub000/gen/http/analytics/client"
	authc "github.com/MohmedAnas/RB-WEB-sub000/gen/http/auth/client"
	healthc "github.com/MohmedAnas/RB-WEB-sub000/gen/http/health/client"
	inquiryc "github.com/MohmedAnas/RB-WEB-sub000/gen/http/inquiry/client"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// UsageCommands returns the set of commands and sub-commands using the format
//
//	command (subcommand1|subcommand2|...)
func UsageCommands() []string {
	return []string{
		"health check",
		"inquiry (submit-feedback|submit-free-trial|list|get|update|dashboard|schedule-meeting)",
		"auth (login|logout|me|create-user|list-users|get-user|update-user|delete-user)",
		"analytics (total|watch)",
	}
}

// UsageExamples produces an example of a valid invocation of the CLI tool.
func UsageExamples() string {
	return os.Args[0] + " " + "health check" + "\n" +
		os.Args[0] + " " + "inquiry submit-feedback --body '{\n      \"description\": \"al\",\n      \"email\": \"Ut dignissimos.\",\n      \"enquiry_type\": \"Demo\",\n      \"name\": \"Suresh Traders\",\n      \"phone\": \"Voluptas laboriosam nulla est aut.\"\n   }'" + "\n" +
		os.Args[0] + " " + "auth login --body '{\n      \"password\": \"password\",\n      \"username\": \"admin\"\n   }'" + "\n" +
		os.Args[0] + " " + "analytics total" + "\n" +
		""
}

// ParseEndpoint returns the endpoint and payload as specified on the command
// line.
func ParseEndpoint(
	scheme, host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restore bool,
	dialer goahttp.Dialer,
	analyticsConfigurer *analyticsc.ConnConfigurer,
) (goa.Endpoint, any, error) {
	var (
		healthFlags = flag.NewFlagSet("health", flag.ContinueOnError)

		healthCheckFlags = flag.NewFlagSet("check", flag.ExitOnError)

		inquiryFlags = flag.NewFlagSet("inquiry", flag.ContinueOnError)

		inquirySubmitFeedbackFlags    = flag.NewFlagSet("submit-feedback", flag.ExitOnError)
		inquirySubmitFeedbackBodyFlag = inquirySubmitFeedbackFlags.String("body", "REQUIRED", "")

		inquirySubmitFreeTrialFlags    = flag.NewFlagSet("submit-free-trial", flag.ExitOnError)
		inquirySubmitFreeTrialBodyFlag = inquirySubmitFreeTrialFlags.String("body", "REQUIRED", "")

		inquiryListFlags     = flag.NewFlagSet("list", flag.ExitOnError)
		inquiryListTokenFlag = inquiryListFlags.String("token", "", "")

		inquiryGetFlags     = flag.NewFlagSet("get", flag.ExitOnError)
		inquiryGetIDFlag    = inquiryGetFlags.String("id", "REQUIRED", "Inquiry ID")
		inquiryGetTokenFlag = inquiryGetFlags.String("token", "", "")

		inquiryUpdateFlags     = flag.NewFlagSet("update", flag.ExitOnError)
		inquiryUpdateBodyFlag  = inquiryUpdateFlags.String("body", "REQUIRED", "")
		inquiryUpdateIDFlag    = inquiryUpdateFlags.String("id", "REQUIRED", "Inquiry ID")
		inquiryUpdateTokenFlag = inquiryUpdateFlags.String("token", "", "")

		inquiryDashboardFlags             = flag.NewFlagSet("dashboard", flag.ExitOnError)
		inquiryDashboardEnquiryTypeFlag   = inquiryDashboardFlags.String("enquiry-type", "All", "")
		inquiryDashboardPeriodFlag        = inquiryDashboardFlags.String("period", "all", "")
		inquiryDashboardStartDateFlag     = inquiryDashboardFlags.String("start-date", "", "")
		inquiryDashboardEndDateFlag       = inquiryDashboardFlags.String("end-date", "", "")
		inquiryDashboardSortFlag          = inquiryDashboardFlags.String("sort", "desc", "")
		inquiryDashboardIncludeHiddenFlag = inquiryDashboardFlags.String("include-hidden", "", "")
		inquiryDashboardTokenFlag         = inquiryDashboardFlags.String("token", "", "")

		inquiryScheduleMeetingFlags     = flag.NewFlagSet("schedule-meeting", flag.ExitOnError)
		inquiryScheduleMeetingBodyFlag  = inquiryScheduleMeetingFlags.String("body", "REQUIRED", "")
		inquiryScheduleMeetingTokenFlag = inquiryScheduleMeetingFlags.String("token", "", "")

		authFlags = flag.NewFlagSet("auth", flag.ContinueOnError)

		authLoginFlags    = flag.NewFlagSet("login", flag.ExitOnError)
		authLoginBodyFlag = authLoginFlags.String("body", "REQUIRED", "")

		authLogoutFlags     = flag.NewFlagSet("logout", flag.ExitOnError)
		authLogoutTokenFlag = authLogoutFlags.String("token", "", "")

		authMeFlags     = flag.NewFlagSet("me", flag.ExitOnError)
		authMeTokenFlag = authMeFlags.String("token", "", "")

		authCreateUserFlags     = flag.NewFlagSet("create-user", flag.ExitOnError)
		authCreateUserBodyFlag  = authCreateUserFlags.String("body", "REQUIRED", "")
		authCreateUserTokenFlag = authCreateUserFlags.String("token", "", "")

		authListUsersFlags     = flag.NewFlagSet("list-users", flag.ExitOnError)
		authListUsersSkipFlag  = authListUsersFlags.String("skip", "", "")
		authListUsersLimitFlag = authListUsersFlags.String("limit", "100", "")
		authListUsersTokenFlag = authListUsersFlags.String("token", "", "")

		authGetUserFlags     = flag.NewFlagSet("get-user", flag.ExitOnError)
		authGetUserIDFlag    = authGetUserFlags.String("id", "REQUIRED", "User ID")
		authGetUserTokenFlag = authGetUserFlags.String("token", "", "")

		authUpdateUserFlags     = flag.NewFlagSet("update-user", flag.ExitOnError)
		authUpdateUserBodyFlag  = authUpdateUserFlags.String("body", "REQUIRED", "")
		authUpdateUserIDFlag    = authUpdateUserFlags.String("id", "REQUIRED", "User ID")
		authUpdateUserTokenFlag = authUpdateUserFlags.String("token", "", "")

		authDeleteUserFlags     = flag.NewFlagSet("delete-user", flag.ExitOnError)
		authDeleteUserIDFlag    = authDeleteUserFlags.String("id", "REQUIRED", "User ID")
		authDeleteUserTokenFlag = authDeleteUserFlags.String("token", "", "")

		analyticsFlags = flag.NewFlagSet("analytics", flag.ContinueOnError)

		analyticsTotalFlags = flag.NewFlagSet("total", flag.ExitOnError)

		analyticsWatchFlags = flag.NewFlagSet("watch", flag.ExitOnError)
	)
	healthFlags.Usage = healthUsage
	healthCheckFlags.Usage = healthCheckUsage

	inquiryFlags.Usage = inquiryUsage
	inquirySubmitFeedbackFlags.Usage = inquirySubmitFeedbackUsage
	inquirySubmitFreeTrialFlags.Usage = inquirySubmitFreeTrialUsage
	inquiryListFlags.Usage = inquiryListUsage
	inquiryGetFlags.Usage = inquiryGetUsage
	inquiryUpdateFlags.Usage = inquiryUpdateUsage
	inquiryDashboardFlags.Usage = inquiryDashboardUsage
	inquiryScheduleMeetingFlags.Usage = inquiryScheduleMeetingUsage

	authFlags.Usage = authUsage
	authLoginFlags.Usage = authLoginUsage
	authLogoutFlags.Usage = authLogoutUsage
	authMeFlags.Usage = authMeUsage
	authCreateUserFlags.Usage = authCreateUserUsage
	authListUsersFlags.Usage = authListUsersUsage
	authGetUserFlags.Usage = authGetUserUsage
	authUpdateUserFlags.Usage = authUpdateUserUsage
	authDeleteUserFlags.Usage = authDeleteUserUsage

	analyticsFlags.Usage = analyticsUsage
	analyticsTotalFlags.Usage = analyticsTotalUsage
	analyticsWatchFlags.Usage = analyticsWatchUsage

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	if flag.NArg() < 2 { // two non flag args are required: SERVICE and ENDPOINT (aka COMMAND)
		return nil, nil, fmt.Errorf("not enough arguments")
	}

	var (
		svcn string
		svcf *flag.FlagSet
	)
	{
		svcn = flag.Arg(0)
		switch svcn {
		case "health":
			svcf = healthFlags
		case "inquiry":
			svcf = inquiryFlags
		case "auth":
			svcf = authFlags
		case "analytics":
			svcf = analyticsFlags
		default:
			return nil, nil, fmt.Errorf("unknown service %q", svcn)
		}
	}
	if err := svcf.Parse(flag.Args()[1:]); err != nil {
		return nil, nil, err
	}

	var (
		epn string
		epf *flag.FlagSet
	)
	{
		epn = svcf.Arg(0)
		switch svcn {
		case "health":
			switch epn {
			case "check":
				epf = healthCheckFlags

			}

		case "inquiry":
			switch epn {
			case "submit-feedback":
				epf = inquirySubmitFeedbackFlags

			case "submit-free-trial":
				epf = inquirySubmitFreeTrialFlags

			case "list":
				epf = inquiryListFlags

			case "get":
				epf = inquiryGetFlags

			case "update":
				epf = inquiryUpdateFlags

			case "dashboard":
				epf = inquiryDashboardFlags

			case "schedule-meeting":
				epf = inquiryScheduleMeetingFlags

			}

		case "auth":
			switch epn {
			case "login":
				epf = authLoginFlags

			case "logout":
				epf = authLogoutFlags

			case "me":
				epf = authMeFlags

			case "create-user":
				epf = authCreateUserFlags

			case "list-users":
				epf = authListUsersFlags

			case "get-user":
				epf = authGetUserFlags

			case "update-user":
				epf = authUpdateUserFlags

			case "delete-user":
				epf = authDeleteUserFlags

			}

		case "analytics":
			switch epn {
			case "total":
				epf = analyticsTotalFlags

			case "watch":
				epf = analyticsWatchFlags

			}

		}
	}
	if epf == nil {
		return nil, nil, fmt.Errorf("unknown %q endpoint %q", svcn, epn)
	}

	// Parse endpoint flags if any
	if svcf.NArg() > 1 {
		if err := epf.Parse(svcf.Args()[1:]); err != nil {
			return nil, nil, err
		}
	}

	var (
		data     any
		endpoint goa.Endpoint
		err      error
	)
	{
		switch svcn {
		case "health":
			c := healthc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "check":
				endpoint = c.Check()
			}
		case "inquiry":
			c := inquiryc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "submit-feedback":
				endpoint = c.SubmitFeedback()
				data, err = inquiryc.BuildSubmitFeedbackPayload(*inquirySubmitFeedbackBodyFlag)
			case "submit-free-trial":
				endpoint = c.SubmitFreeTrial()
				data, err = inquiryc.BuildSubmitFreeTrialPayload(*inquirySubmitFreeTrialBodyFlag)
			case "list":
				endpoint = c.List()
				data, err = inquiryc.BuildListPayload(*inquiryListTokenFlag)
			case "get":
				endpoint = c.Get()
				data, err = inquiryc.BuildGetPayload(*inquiryGetIDFlag, *inquiryGetTokenFlag)
			case "update":
				endpoint = c.Update()
				data, err = inquiryc.BuildUpdatePayload(*inquiryUpdateBodyFlag, *inquiryUpdateIDFlag, *inquiryUpdateTokenFlag)
			case "dashboard":
				endpoint = c.Dashboard()
				data, err = inquiryc.BuildDashboardPayload(*inquiryDashboardEnquiryTypeFlag, *inquiryDashboardPeriodFlag, *inquiryDashboardStartDateFlag, *inquiryDashboardEndDateFlag, *inquiryDashboardSortFlag, *inquiryDashboardIncludeHiddenFlag, *inquiryDashboardTokenFlag)
			case "schedule-meeting":
				endpoint = c.ScheduleMeeting()
				data, err = inquiryc.BuildScheduleMeetingPayload(*inquiryScheduleMeetingBodyFlag, *inquiryScheduleMeetingTokenFlag)
			}
		case "auth":
			c := authc.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "login":
				endpoint = c.Login()
				data, err = authc.BuildLoginPayload(*authLoginBodyFlag)
			case "logout":
				endpoint = c.Logout()
				data, err = authc.BuildLogoutPayload(*authLogoutTokenFlag)
			case "me":
				endpoint = c.Me()
				data, err = authc.BuildMePayload(*authMeTokenFlag)
			case "create-user":
				endpoint = c.CreateUser()
				data, err = authc.BuildCreateUserPayload(*authCreateUserBodyFlag, *authCreateUserTokenFlag)
			case "list-users":
				endpoint = c.ListUsers()
				data, err = authc.BuildListUsersPayload(*authListUsersSkipFlag, *authListUsersLimitFlag, *authListUsersTokenFlag)
			case "get-user":
				endpoint = c.GetUser()
				data, err = authc.BuildGetUserPayload(*authGetUserIDFlag, *authGetUserTokenFlag)
			case "update-user":
				endpoint = c.UpdateUser()
				data, err = authc.BuildUpdateUserPayload(*authUpdateUserBodyFlag, *authUpdateUserIDFlag, *authUpdateUserTokenFlag)
			case "delete-user":
				endpoint = c.DeleteUser()
				data, err = authc.BuildDeleteUserPayload(*authDeleteUserIDFlag, *authDeleteUserTokenFlag)
			}
		case "analytics":
			c := analyticsc.NewClient(scheme, host, doer, enc, dec, restore, dialer, analyticsConfigurer)
			switch epn {
			case "total":
				endpoint = c.Total()
			case "watch":
				endpoint = c.Watch()
			}
		}
	}
	if err != nil {
		return nil, nil, err
	}

	return endpoint, data, nil
}

// healthUsage displays the usage of the health command and its subcommands.
func healthUsage() {
	fmt.Fprintln(os.Stderr, `Health check service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] health COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    check: Check implements check.`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s health COMMAND --help\n", os.Args[0])
}
func healthCheckUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] health check", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Check implements check.`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "health check")
}

// inquiryUsage displays the usage of the inquiry command and its subcommands.
func inquiryUsage() {
	fmt.Fprintln(os.Stderr, `Customer inquiry intake and dashboard service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] inquiry COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    submit-feedback: Submit a feedback / product query form`)
	fmt.Fprintln(os.Stderr, `    submit-free-trial: Submit a free-trial request form`)
	fmt.Fprintln(os.Stderr, `    list: List all inquiries (Staff/Admin only). Unfiltered and unpaginated; ordering is not guaranteed.`)
	fmt.Fprintln(os.Stderr, `    get: Get a single inquiry by ID (Staff/Admin only)`)
	fmt.Fprintln(os.Stderr, `    update: Update status, disposition and assignment of an inquiry (Staff/Admin only)`)
	fmt.Fprintln(os.Stderr, `    dashboard: Filtered and sorted dashboard view of inquiries (Staff/Admin only)`)
	fmt.Fprintln(os.Stderr, `    schedule-meeting: Send a meeting confirmation email to a customer (Staff/Admin only). Does not modify the inquiry.`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s inquiry COMMAND --help\n", os.Args[0])
}
func inquirySubmitFeedbackUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry submit-feedback", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Submit a feedback / product query form`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry submit-feedback --body '{\n      \"description\": \"al\",\n      \"email\": \"Ut dignissimos.\",\n      \"enquiry_type\": \"Demo\",\n      \"name\": \"Suresh Traders\",\n      \"phone\": \"Voluptas laboriosam nulla est aut.\"\n   }'")
}

func inquirySubmitFreeTrialUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry submit-free-trial", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Submit a free-trial request form`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry submit-free-trial --body '{\n      \"city\": \"Quia illo ipsa.\",\n      \"email\": \"Aliquam delectus perspiciatis beatae distinctio.\",\n      \"name\": \"Adipisci dignissimos magni.\",\n      \"phone\": \"Rerum nam nihil asperiores architecto.\",\n      \"query\": \"Repudiandae eum fugit neque sed.\"\n   }'")
}

func inquiryListUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry list", os.Args[0])
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List all inquiries (Staff/Admin only). Unfiltered and unpaginated; ordering is not guaranteed.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry list --token \"Et expedita ipsum sunt expedita.\"")
}

func inquiryGetUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry get", os.Args[0])
	fmt.Fprint(os.Stderr, " -id INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get a single inquiry by ID (Staff/Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id INT: Inquiry ID`)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry get --id 3158321259022260417 --token \"Adipisci voluptatibus.\"")
}

func inquiryUpdateUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry update", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -id INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Update status, disposition and assignment of an inquiry (Staff/Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -id INT: Inquiry ID`)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry update --body '{\n      \"assigned_to\": \"Natus quia.\",\n      \"disposition\": \"Quod reiciendis qui quaerat rerum et aut.\",\n      \"resolved_at\": \"Ea numquam maxime quidem.\",\n      \"status\": \"Schedule\"\n   }' --id 4029893281166623599 --token \"Veritatis eum voluptatem magnam vitae molestiae.\"")
}

func inquiryDashboardUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry dashboard", os.Args[0])
	fmt.Fprint(os.Stderr, " -enquiry-type STRING")
	fmt.Fprint(os.Stderr, " -period STRING")
	fmt.Fprint(os.Stderr, " -start-date STRING")
	fmt.Fprint(os.Stderr, " -end-date STRING")
	fmt.Fprint(os.Stderr, " -sort STRING")
	fmt.Fprint(os.Stderr, " -include-hidden BOOL")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Filtered and sorted dashboard view of inquiries (Staff/Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -enquiry-type STRING: `)
	fmt.Fprintln(os.Stderr, `    -period STRING: `)
	fmt.Fprintln(os.Stderr, `    -start-date STRING: `)
	fmt.Fprintln(os.Stderr, `    -end-date STRING: `)
	fmt.Fprintln(os.Stderr, `    -sort STRING: `)
	fmt.Fprintln(os.Stderr, `    -include-hidden BOOL: `)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry dashboard --enquiry-type \"Renewal\" --period \"last_year\" --start-date \"Similique hic odit ut id sint.\" --end-date \"Dolores totam sint aliquid.\" --sort \"desc\" --include-hidden false --token \"Eos voluptatibus accusantium.\"")
}

func inquiryScheduleMeetingUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] inquiry schedule-meeting", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Send a meeting confirmation email to a customer (Staff/Admin only). Does not modify the inquiry.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "inquiry schedule-meeting --body '{\n      \"customer_name\": \"Ut quisquam illum error nihil cumque.\",\n      \"inquiry_id\": 8960625032909542965,\n      \"schedule_date\": \"2025-03-14 11:00 AM\",\n      \"schedule_desc\": \"Atque et expedita atque eius et.\",\n      \"scheduled_by\": \"Velit nesciunt consequatur rerum ratione.\",\n      \"to\": \"ervin_reinger@wintheiser.biz\"\n   }' --token \"Sit magnam quia enim veniam.\"")
}

// authUsage displays the usage of the auth command and its subcommands.
func authUsage() {
	fmt.Fprintln(os.Stderr, `Authentication and operator account service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] auth COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    login: Authenticate an operator and return a JWT token`)
	fmt.Fprintln(os.Stderr, `    logout: Logout operator`)
	fmt.Fprintln(os.Stderr, `    me: Get current operator information`)
	fmt.Fprintln(os.Stderr, `    create-user: Create a new operator account (Admin only)`)
	fmt.Fprintln(os.Stderr, `    list-users: List all operator accounts (Admin only)`)
	fmt.Fprintln(os.Stderr, `    get-user: Get operator account by ID (Admin only)`)
	fmt.Fprintln(os.Stderr, `    update-user: Update operator account (Admin only)`)
	fmt.Fprintln(os.Stderr, `    delete-user: Delete operator account (Admin only)`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s auth COMMAND --help\n", os.Args[0])
}
func authLoginUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth login", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Authenticate an operator and return a JWT token`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth login --body '{\n      \"password\": \"password\",\n      \"username\": \"admin\"\n   }'")
}

func authLogoutUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth logout", os.Args[0])
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Logout operator`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth logout --token \"Aut possimus aspernatur blanditiis id ullam labore.\"")
}

func authMeUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth me", os.Args[0])
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get current operator information`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth me --token \"Reprehenderit molestias.\"")
}

func authCreateUserUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth create-user", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Create a new operator account (Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth create-user --body '{\n      \"email\": \"user@example.com\",\n      \"full_name\": \"Voluptatem quis est et esse deleniti.\",\n      \"is_active\": false,\n      \"is_admin\": false,\n      \"is_staff\": true,\n      \"password\": \"password123\",\n      \"username\": \"newuser\"\n   }' --token \"Labore sunt.\"")
}

func authListUsersUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth list-users", os.Args[0])
	fmt.Fprint(os.Stderr, " -skip INT")
	fmt.Fprint(os.Stderr, " -limit INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List all operator accounts (Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -skip INT: `)
	fmt.Fprintln(os.Stderr, `    -limit INT: `)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth list-users --skip 6026210584556158428 --limit 436 --token \"Quis et delectus eveniet qui molestias quia.\"")
}

func authGetUserUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth get-user", os.Args[0])
	fmt.Fprint(os.Stderr, " -id INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get operator account by ID (Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id INT: User ID`)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth get-user --id 1517706828654340079 --token \"Error dicta est.\"")
}

func authUpdateUserUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth update-user", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -id INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Update operator account (Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -id INT: User ID`)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth update-user --body '{\n      \"email\": \"Mollitia debitis soluta error nisi eos laborum.\",\n      \"full_name\": \"Rem ipsa dolorem et autem placeat.\",\n      \"is_active\": false,\n      \"is_admin\": false,\n      \"is_staff\": false,\n      \"password\": \"Necessitatibus maxime.\",\n      \"username\": \"Maxime accusantium ut dolorum.\"\n   }' --id 1591216707222018921 --token \"Eum rerum repellat nisi consequatur.\"")
}

func authDeleteUserUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] auth delete-user", os.Args[0])
	fmt.Fprint(os.Stderr, " -id INT")
	fmt.Fprint(os.Stderr, " -token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Delete operator account (Admin only)`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -id INT: User ID`)
	fmt.Fprintln(os.Stderr, `    -token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "auth delete-user --id 5096029568286818579 --token \"Explicabo repellat molestias repellendus.\"")
}

// analyticsUsage displays the usage of the analytics command and its
// subcommands.
func analyticsUsage() {
	fmt.Fprintln(os.Stderr, `Website visitor analytics service`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] analytics COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    total: Get the running total of website visitors`)
	fmt.Fprintln(os.Stderr, `    watch: Stream live and total visitor counts over a WebSocket`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s analytics COMMAND --help\n", os.Args[0])
}
func analyticsTotalUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] analytics total", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get the running total of website visitors`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "analytics total")
}

func analyticsWatchUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] analytics watch", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Stream live and total visitor counts over a WebSocket`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "analytics watch")
}
