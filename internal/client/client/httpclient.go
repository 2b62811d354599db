package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/lmsclient/internal/client/endpoints"
	"github.com/dmitrijs2005/lmsclient/internal/client/models"
	"github.com/dmitrijs2005/lmsclient/internal/common"
	"github.com/dmitrijs2005/lmsclient/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 1 << 20

// HTTPClient talks to the LMS REST API. It implements both Requester and Client.
type HTTPClient struct {
	resolver   *endpoints.Resolver
	httpClient *http.Client
	timeout    time.Duration
	log        logging.Logger
	requestID  func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTimeout bounds every request. Zero disables the client-side deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client resolving endpoints against resolver.
func NewHTTPClient(resolver *endpoints.Resolver, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		resolver:   resolver,
		httpClient: &http.Client{},
		timeout:    15 * time.Second,
		log:        logging.Discard(),
		requestID:  uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Do sends one JSON request and decodes a 2xx body into out.
func (c *HTTPClient) Do(ctx context.Context, method, url string, body any, token string, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case secretBody:
		reqBody = bytes.NewReader(b)
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	reqID := c.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", url, "request_id", reqID, "error", err)
		return transportError(ctx, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.log.Debug(ctx, "request done",
		"method", method, "url", url, "status", resp.StatusCode,
		"request_id", reqID, "took", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func transportError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return &HTTPError{Kind: KindTimeout, Err: err}
	}
	return &HTTPError{Kind: KindNetwork, Err: err}
}

func statusError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &HTTPError{Status: resp.StatusCode, Kind: KindStatus}
	}
	var apiErr struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &apiErr) == nil {
		switch {
		case apiErr.Message != "":
			return &HTTPError{Status: resp.StatusCode, Message: apiErr.Message, Kind: KindStatus}
		case apiErr.Error != "":
			return &HTTPError{Status: resp.StatusCode, Message: apiErr.Error, Kind: KindStatus}
		}
	}
	return &HTTPError{Status: resp.StatusCode, Kind: KindStatus}
}

func (c *HTTPClient) call(ctx context.Context, method string, ep endpoints.Endpoint, segments []string, body any, token string, out any) error {
	url, err := c.resolver.URL(ep, segments...)
	if err != nil {
		return err
	}
	return c.Do(ctx, method, url, body, token, out)
}

func (c *HTTPClient) RequestRegistrationCode(ctx context.Context, profile models.RegistrationProfile) error {
	if err := c.call(ctx, http.MethodPost, endpoints.AuthRegister, nil, profile, "", nil); err != nil {
		return fmt.Errorf("client.RequestRegistrationCode: %w", err)
	}
	return nil
}

type verifyRegistrationRequest struct {
	models.RegistrationProfile
	OTP string `json:"otp"`
}

func (c *HTTPClient) VerifyRegistration(ctx context.Context, profile models.RegistrationProfile, otp string) (*models.AuthResult, error) {
	var res models.AuthResult
	req := verifyRegistrationRequest{RegistrationProfile: profile, OTP: otp}
	if err := c.call(ctx, http.MethodPost, endpoints.AuthVerifyRegistration, nil, req, "", &res); err != nil {
		return nil, fmt.Errorf("client.VerifyRegistration: %w", err)
	}
	if _, ok := res.Session(); !ok {
		return nil, fmt.Errorf("client.VerifyRegistration: %w", ErrBadResponse)
	}
	return &res, nil
}

func (c *HTTPClient) RequestLoginCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := c.call(ctx, http.MethodPost, endpoints.AuthLogin, nil, body, "", nil); err != nil {
		return fmt.Errorf("client.RequestLoginCode: %w", err)
	}
	return nil
}

func (c *HTTPClient) VerifyLogin(ctx context.Context, email, otp string) (*models.AuthResult, error) {
	var res models.AuthResult
	body := map[string]string{"email": email, "otp": otp}
	if err := c.call(ctx, http.MethodPost, endpoints.AuthVerifyLogin, nil, body, "", &res); err != nil {
		return nil, fmt.Errorf("client.VerifyLogin: %w", err)
	}
	if _, ok := res.Session(); !ok {
		return nil, fmt.Errorf("client.VerifyLogin: %w", ErrBadResponse)
	}
	return &res, nil
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string, purpose models.Purpose) error {
	body := map[string]string{"email": email, "purpose": string(purpose)}
	if err := c.call(ctx, http.MethodPost, endpoints.AuthResendOTP, nil, body, "", nil); err != nil {
		return fmt.Errorf("client.ResendOTP: %w", err)
	}
	return nil
}

func (c *HTTPClient) AdminLogin(ctx context.Context, email string, password []byte) (*models.AuthResult, error) {
	var res models.AuthResult
	body := newSecretBody(
		secretField{"email", []byte(email)},
		secretField{"password", password},
	)
	defer body.wipe()
	if err := c.call(ctx, http.MethodPost, endpoints.AuthAdminLogin, nil, body, "", &res); err != nil {
		return nil, fmt.Errorf("client.AdminLogin: %w", err)
	}
	if _, ok := res.Session(); !ok {
		return nil, fmt.Errorf("client.AdminLogin: %w", ErrBadResponse)
	}
	return &res, nil
}

func (c *HTTPClient) Departments(ctx context.Context) ([]models.Department, error) {
	var deps []models.Department
	if err := c.call(ctx, http.MethodGet, endpoints.Departments, nil, nil, "", &deps); err != nil {
		return nil, fmt.Errorf("client.Departments: %w", err)
	}
	return deps, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodGet, endpoints.AuthMe, nil, nil, token, &raw); err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	u, err := decodeUser(raw)
	if err != nil {
		return nil, fmt.Errorf("client.Me: %w", err)
	}
	return u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, id models.UserID, upd models.ProfileUpdate) (*models.User, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodPut, endpoints.Users, []string{string(id)}, upd, token, &raw); err != nil {
		return nil, fmt.Errorf("client.UpdateUser: %w", err)
	}
	u, err := decodeUser(raw)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateUser: %w", err)
	}
	return u, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, token string, id models.UserID, current, next []byte) error {
	body := newSecretBody(
		secretField{"currentPassword", current},
		secretField{"newPassword", next},
	)
	defer body.wipe()
	if err := c.call(ctx, http.MethodPut, endpoints.Users, []string{string(id), "password"}, body, token, nil); err != nil {
		return fmt.Errorf("client.ChangePassword: %w", err)
	}
	return nil
}

// decodeUser accepts either a bare user object or one wrapped as {"user": {...}}.
func decodeUser(raw json.RawMessage) (*models.User, error) {
	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if u.ID == "" {
		return nil, ErrBadResponse
	}
	return &u, nil
}
