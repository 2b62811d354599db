package endpoints

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver("https://lms.example.com/")
	require.NoError(t, err)
	return r
}

func TestNewResolver_ValidatesBase(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		wantErr bool
	}{
		{"https", "https://lms.example.com", false},
		{"http with port", "http://localhost:5000", false},
		{"trailing slash", "http://localhost:5000/", false},
		{"no scheme", "localhost:5000", true},
		{"ftp", "ftp://lms.example.com", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolver(tt.base)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	r := newResolver(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"flat key", "COURSES", "https://lms.example.com/api/courses"},
		{"dotted key", "AUTH.LOGIN", "https://lms.example.com/api/auth/login"},
		{"dotted me", "AUTH.ME", "https://lms.example.com/api/auth/me"},
		{"literal api path", "/api/enrollments/123/approve", "https://lms.example.com/api/enrollments/123/approve"},
		{"literal path with dot", "/api/assets/logo.png", "https://lms.example.com/api/assets/logo.png"},
		{"other suffix verbatim", "/health", "https://lms.example.com/health"},
		{"unknown flat key verbatim", "NOPE", "https://lms.example.comNOPE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnknownDottedKeyFails(t *testing.T) {
	r := newResolver(t)

	for _, name := range []string{"AUTH.NOPE", "NOPE.LOGIN", "COURSES.LIST", "AUTH.LOGIN.EXTRA"} {
		t.Run(name, func(t *testing.T) {
			got, err := r.Resolve(name)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, ErrEndpointNotFound))

			var nf *NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, name, nf.Name)
		})
	}
}

func TestResolve_GroupNameIsNotAnEndpoint(t *testing.T) {
	r := newResolver(t)
	_, err := r.Resolve("AUTH")
	require.ErrorIs(t, err, ErrEndpointNotFound)
}

func TestResolve_Idempotent(t *testing.T) {
	r := newResolver(t)
	first, err := r.Resolve("AUTH.LOGIN")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.Resolve("AUTH.LOGIN")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestURL_AllTypedEndpointsResolve(t *testing.T) {
	r := newResolver(t)
	for _, ep := range All() {
		u, err := r.URL(ep)
		require.NoError(t, err, ep)
		assert.Contains(t, u, "https://lms.example.com/api/")
	}
}

func TestURL_AppendsEscapedSegments(t *testing.T) {
	r := newResolver(t)
	u, err := r.URL(Users, "7", "password")
	require.NoError(t, err)
	assert.Equal(t, "https://lms.example.com/api/users/7/password", u)

	u, err = r.URL(Users, "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "https://lms.example.com/api/users/a%20b%2Fc", u)
}
