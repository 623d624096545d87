package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/infra"
)

// ErrMissingBaseURL indicates that the client was configured without a
// backend base URL and no explicit endpoint URLs to fall back on.
var ErrMissingBaseURL = errors.New("backend: base url is required")

// User-facing outcome messages. Handlers and tests rely on the exact
// strings, so they live here as constants rather than inline literals.
const (
	MsgProfileExists = "a profile already exists for this account"
	MsgMissingFields = "please fill out all required fields and try again"
	MsgTryAgain      = "something went wrong, please try again later"
)

// Result is the uniform outcome of every mutating backend operation.
// Message is empty on success.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Options configures the backend Client.
type Options struct {
	BaseURL            string
	AnonKey            string
	CreateVolunteerURL string
	EmailLinkURL       string
	UpdateInterestsURL string
	UpdateVolunteerURL string
	InterestsURL       string
	HTTPClient         *http.Client
	Logger             *infra.Logger
	RequestTimeout     time.Duration
}

// Client performs HTTP calls against the hosted backend's REST table and
// edge-function endpoints. It holds no mutable state after construction,
// so a single instance is safe for concurrent use.
type Client struct {
	anonKey            string
	createVolunteerURL string
	emailLinkURL       string
	updateInterestsURL string
	updateVolunteerURL string
	interestsURL       string
	httpClient         *http.Client
	logger             *infra.Logger
}

type applicationPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone_number"`
	Zip       string `json:"zip"`
	Body      string `json:"body"`
}

type emailLinkPayload struct {
	To         string `json:"to"`
	RedirectTo string `json:"redirectTo"`
	Body       string `json:"body"`
}

// The update endpoints expect field names exactly as written here, with no
// casing transformation. This differs from the other endpoints and is part
// of the backend's fixed contract.
type interestsUpdatePayload struct {
	Email       string  `json:"Email"`
	InterestIds []int64 `json:"InterestIds"`
}

type profileUpdatePayload struct {
	Email            string `json:"Email"`
	AboutMyself      string `json:"AboutMyself"`
	EmergencyContact string `json:"EmergencyContact"`
}

// NewClient constructs a client with endpoint defaults derived from the
// base URL and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	resolve := func(explicit, path string) string {
		if v := strings.TrimSpace(explicit); v != "" {
			return v
		}
		if baseURL == "" {
			return ""
		}
		return baseURL + path
	}
	c := &Client{
		anonKey:            strings.TrimSpace(opts.AnonKey),
		createVolunteerURL: resolve(opts.CreateVolunteerURL, "/functions/v1/create-volunteer"),
		emailLinkURL:       resolve(opts.EmailLinkURL, "/functions/v1/email-link"),
		updateInterestsURL: resolve(opts.UpdateInterestsURL, "/functions/v1/update-interests"),
		updateVolunteerURL: resolve(opts.UpdateVolunteerURL, "/functions/v1/update-volunteer"),
		interestsURL:       resolve(opts.InterestsURL, "/rest/v1/interest"),
		httpClient:         httpClient,
	}
	if baseURL == "" {
		for _, u := range []string{c.createVolunteerURL, c.emailLinkURL, c.updateInterestsURL, c.updateVolunteerURL, c.interestsURL} {
			if u == "" {
				return nil, ErrMissingBaseURL
			}
		}
	}
	if opts.Logger != nil {
		c.logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		c.logger = &l
	}
	return c, nil
}

// SubmitVolunteerApplication posts a new volunteer application. Only a
// subset of the message's fields goes over the wire: the backend stores
// email and address data from the caller's account, so forwarding them
// here is unwanted.
func (c *Client) SubmitVolunteerApplication(ctx context.Context, msg domain.VolunteerMessage, token string) Result {
	payload := applicationPayload{
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Phone:     msg.Phone,
		Zip:       msg.Zip,
		Body:      msg.Body,
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	status, body, err := c.send(ctx, http.MethodPost, c.createVolunteerURL, payload, header)
	if err != nil {
		c.logger.Warn().Err(err).Msg("backend: create volunteer request failed")
		return Result{Message: MsgTryAgain}
	}
	switch {
	case status >= 200 && status < 300:
		return Result{OK: true}
	case status == http.StatusConflict:
		return Result{Message: MsgProfileExists}
	case status == http.StatusBadRequest:
		// The backend's validation detail is logged but never shown to
		// the applicant.
		c.logger.Warn().Int("status", status).Str("body", string(body)).Msg("backend: create volunteer validation rejected")
		return Result{Message: MsgMissingFields}
	default:
		c.logger.Warn().Int("status", status).Msg("backend: create volunteer rejected")
		return Result{Message: MsgTryAgain}
	}
}

// SendSignupEmail asks the backend to send a signup link to the given
// address. This is a public endpoint: it authenticates with the anon API
// key alone, and omits the header entirely when no key is configured.
func (c *Client) SendSignupEmail(ctx context.Context, to, redirectTo, body string) Result {
	payload := emailLinkPayload{To: to, RedirectTo: redirectTo, Body: body}
	header := http.Header{}
	if c.anonKey != "" {
		header.Set("apikey", c.anonKey)
	}
	status, raw, err := c.send(ctx, http.MethodPost, c.emailLinkURL, payload, header)
	if err != nil {
		c.logger.Warn().Err(err).Msg("backend: signup email request failed")
		return Result{Message: MsgTryAgain}
	}
	if status >= 200 && status < 300 {
		return Result{OK: true}
	}
	c.logger.Warn().Int("status", status).Str("body", string(raw)).Msg("backend: signup email rejected")
	return Result{Message: MsgTryAgain}
}

// UpdateVolunteerInterests replaces the volunteer's selected interest ids.
// Unlike the create path, failures here surface the backend's status and
// body verbatim so support staff can act on the caller's report.
func (c *Client) UpdateVolunteerInterests(ctx context.Context, email string, interestIDs []int64, token string) Result {
	payload := interestsUpdatePayload{Email: email, InterestIds: interestIDs}
	return c.update(ctx, c.updateInterestsURL, payload, token)
}

// UpdateVolunteerProfile updates the volunteer's free-text profile fields.
// Same failure-reporting policy as UpdateVolunteerInterests.
func (c *Client) UpdateVolunteerProfile(ctx context.Context, email, aboutMyself, emergencyContact string, token string) Result {
	payload := profileUpdatePayload{Email: email, AboutMyself: aboutMyself, EmergencyContact: emergencyContact}
	return c.update(ctx, c.updateVolunteerURL, payload, token)
}

func (c *Client) update(ctx context.Context, url string, payload any, token string) Result {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	status, body, err := c.send(ctx, http.MethodPost, url, payload, header)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Msg("backend: update request failed")
		return Result{Message: MsgTryAgain}
	}
	if status >= 200 && status < 300 {
		return Result{OK: true}
	}
	c.logger.Warn().Int("status", status).Str("url", url).Msg("backend: update rejected")
	return Result{Message: fmt.Sprintf("update failed with status %d: %s", status, string(body))}
}

// FetchInterests lists the interest records for one category id, ordered
// by the backend. Every failure mode collapses to an empty slice: the
// registration form renders whatever it gets, and an empty list is its
// degraded mode. Failures are logged, never returned.
func (c *Client) FetchInterests(ctx context.Context, categoryID int, token string) []domain.Interest {
	url := fmt.Sprintf("%s?select=id,interest,interest_type_id,order_by&interest_type_id=eq.%d&order=order_by.asc", c.interestsURL, categoryID)
	header := http.Header{}
	header.Set("apikey", c.anonKey)
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	status, raw, err := c.send(ctx, http.MethodGet, url, nil, header)
	if err != nil {
		c.logger.Warn().Err(err).Int("category", categoryID).Msg("backend: interests fetch failed")
		return []domain.Interest{}
	}
	if status < 200 || status >= 300 {
		c.logger.Warn().Int("status", status).Int("category", categoryID).Msg("backend: interests fetch rejected")
		return []domain.Interest{}
	}
	var items []domain.Interest
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn().Err(err).Int("category", categoryID).Msg("backend: interests decode failed")
		return []domain.Interest{}
	}
	if items == nil {
		return []domain.Interest{}
	}
	return items
}

func (c *Client) send(ctx context.Context, method, url string, payload any, header http.Header) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("backend: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("backend: build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("backend: http request: %w", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("backend: read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}
