// Package endpoints maps logical LMS API endpoint names to absolute URLs.
//
// Names are either flat ("COURSES") or two-level dotted ("AUTH.LOGIN").
// Typed callers should use the Endpoint constants with (*Resolver).URL;
// Resolve accepts free-form names and literal paths.
package endpoints

// Endpoint is a logical API endpoint name.
type Endpoint string

const (
	AuthRegister           Endpoint = "AUTH.REGISTER"
	AuthLogin              Endpoint = "AUTH.LOGIN"
	AuthVerifyLogin        Endpoint = "AUTH.VERIFY_LOGIN"
	AuthVerifyRegistration Endpoint = "AUTH.VERIFY_REGISTRATION"
	AuthResendOTP          Endpoint = "AUTH.RESEND_OTP"
	AuthAdminLogin         Endpoint = "AUTH.ADMIN_LOGIN"
	AuthMe                 Endpoint = "AUTH.ME"

	Courses                    Endpoint = "COURSES"
	Users                      Endpoint = "USERS"
	Enrollments                Endpoint = "ENROLLMENTS"
	EnrollmentsPendingApproval Endpoint = "ENROLLMENTS_PENDING_APPROVAL"
	EnrollmentsCompleted       Endpoint = "ENROLLMENTS_COMPLETED"
	EnrollmentsMyEnrollments   Endpoint = "ENROLLMENTS_MY_ENROLLMENTS"
	Departments                Endpoint = "DEPARTMENTS"
	Upload                     Endpoint = "UPLOAD"
	Assets                     Endpoint = "ASSETS"
	Lessons                    Endpoint = "LESSONS"
	Test                       Endpoint = "TEST"
)

// APIPrefix is the path prefix shared by every API route.
const APIPrefix = "/api/"

// group is a second-level table such as AUTH.
type group map[string]string

// table holds flat entries (string) and groups. It is never mutated after init.
var table = map[string]any{
	"AUTH": group{
		"REGISTER":            "/api/auth/register",
		"LOGIN":               "/api/auth/login",
		"VERIFY_LOGIN":        "/api/auth/verify-login",
		"VERIFY_REGISTRATION": "/api/auth/verify-registration",
		"RESEND_OTP":          "/api/auth/resend-otp",
		"ADMIN_LOGIN":         "/api/auth/admin-login",
		"ME":                  "/api/auth/me",
	},
	"COURSES":                      "/api/courses",
	"USERS":                        "/api/users",
	"ENROLLMENTS":                  "/api/enrollments",
	"ENROLLMENTS_PENDING_APPROVAL": "/api/enrollments/pending-approval",
	"ENROLLMENTS_COMPLETED":        "/api/enrollments/completed",
	"ENROLLMENTS_MY_ENROLLMENTS":   "/api/enrollments/my-enrollments",
	"DEPARTMENTS":                  "/api/departments",
	"UPLOAD":                       "/api/upload",
	"ASSETS":                       "/api/assets",
	"LESSONS":                      "/api/lessons",
	"TEST":                         "/api/test",
}

// All lists every typed endpoint.
func All() []Endpoint {
	return []Endpoint{
		AuthRegister, AuthLogin, AuthVerifyLogin, AuthVerifyRegistration, AuthResendOTP,
		AuthAdminLogin, AuthMe,
		Courses, Users, Enrollments, EnrollmentsPendingApproval, EnrollmentsCompleted,
		EnrollmentsMyEnrollments, Departments, Upload, Assets, Lessons, Test,
	}
}
