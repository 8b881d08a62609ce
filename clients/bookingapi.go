package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/models/booking_models"
	"github.com/hallbook/hallbook/models/user_models"
)

// BookingAPI is the portal's view of the external booking store. Everything
// the portal cannot answer locally goes through here. The interface exists
// so controllers and the flow can be tested against a mock.
type BookingAPI interface {
	booking_models.Gateway

	Login(ctx context.Context, emailOrPhone, password, role string) (*user_models.User, string, error)
	Signup(ctx context.Context, form map[string]string) (string, error)
	PropertiesByAdmin(ctx context.Context, adminID string) ([]json.RawMessage, error)
	AddProperty(ctx context.Context, property map[string]interface{}) (string, error)
	PropertyNames(ctx context.Context, adminID string) ([]string, error)
	BookingsByProperty(ctx context.Context, adminID string) ([]booking_models.Record, error)
}

// BookingAPIClient implements BookingAPI over HTTP/JSON.
type BookingAPIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewBookingAPIClient returns a client for the booking store at baseURL.
func NewBookingAPIClient(baseURL string) *BookingAPIClient {
	return &BookingAPIClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// apiEnvelope is the booking store's common response wrapper.
type apiEnvelope struct {
	Success       bool                    `json:"success"`
	Message       string                  `json:"message"`
	User          *user_models.User       `json:"user"`
	Properties    []json.RawMessage       `json:"properties"`
	PropertyNames []string                `json:"propertyNames"`
	Bookings      []booking_models.Record `json:"bookings"`
	BookingID     string                  `json:"bookingId"`
}

// CreateBooking implements booking_models.Gateway: one outbound call per
// submit, no retries. A transport failure is returned as an error; any
// decodable response becomes a Confirmation, success flag and all — non-2xx
// statuses with a message are application rejections, not transport faults.
func (c *BookingAPIClient) CreateBooking(ctx context.Context, req *booking_models.BookingRequest) (*booking_models.Confirmation, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/bookings/createBooking", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Idempotency-Key", req.IdempotencyKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("booking store unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking response: %w", err)
	}

	var conf booking_models.Confirmation
	if err := json.Unmarshal(raw, &conf); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, fmt.Errorf("undecodable booking response (status %d)", resp.StatusCode)
		}
		// Non-2xx with an undecodable body: rejection with no server message.
		logger.WarnLogger.Warnf("Booking store returned status %d with undecodable body", resp.StatusCode)
		return &booking_models.Confirmation{Success: false}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		conf.Success = false
	}
	return &conf, nil
}

// Login proxies the booking store's login endpoint and returns the user
// record on success, or the store's message on rejection.
func (c *BookingAPIClient) Login(ctx context.Context, emailOrPhone, password, role string) (*user_models.User, string, error) {
	q := url.Values{}
	q.Set("emailOrPhone", emailOrPhone)
	q.Set("password", password)
	q.Set("role", role)

	env, err := c.get(ctx, "/api/loginByEmailOrPhoneNumber", q)
	if err != nil {
		return nil, "", err
	}
	if !env.Success || env.User == nil {
		msg := env.Message
		if msg == "" {
			msg = "Invalid credentials"
		}
		return nil, msg, nil
	}
	return env.User, "", nil
}

// Signup registers a new account with the booking store. It returns the
// store's message for non-success responses.
func (c *BookingAPIClient) Signup(ctx context.Context, form map[string]string) (string, error) {
	env, err := c.post(ctx, "/api/signup", form)
	if err != nil {
		return "", err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Signup failed. Please try again."
		}
		return msg, nil
	}
	return "", nil
}

// PropertiesByAdmin lists the raw property records owned by an admin.
func (c *BookingAPIClient) PropertiesByAdmin(ctx context.Context, adminID string) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("adminId", adminID)

	env, err := c.get(ctx, "/api/properties/getByAdminId", q)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("booking store rejected property listing: %s", env.Message)
	}
	return env.Properties, nil
}

// AddProperty registers a new venue with the booking store.
func (c *BookingAPIClient) AddProperty(ctx context.Context, property map[string]interface{}) (string, error) {
	env, err := c.post(ctx, "/api/properties/addProperties", property)
	if err != nil {
		return "", err
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Failed to add venue"
		}
		return msg, nil
	}
	return "", nil
}

// PropertyNames lists the venue names owned by an admin.
func (c *BookingAPIClient) PropertyNames(ctx context.Context, adminID string) ([]string, error) {
	q := url.Values{}
	q.Set("adminId", adminID)

	env, err := c.get(ctx, "/api/properties/getPropertyNames", q)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("booking store rejected property names: %s", env.Message)
	}
	return env.PropertyNames, nil
}

// BookingsByProperty lists existing bookings across an admin's venues.
func (c *BookingAPIClient) BookingsByProperty(ctx context.Context, adminID string) ([]booking_models.Record, error) {
	q := url.Values{}
	q.Set("adminId", adminID)

	env, err := c.get(ctx, "/api/bookings/bookingsByProperty", q)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("booking store rejected bookings listing: %s", env.Message)
	}
	return env.Bookings, nil
}

func (c *BookingAPIClient) get(ctx context.Context, path string, q url.Values) (*apiEnvelope, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	return c.do(httpReq, path)
}

func (c *BookingAPIClient) post(ctx context.Context, path string, payload interface{}) (*apiEnvelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", path, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	return c.do(httpReq, path)
}

func (c *BookingAPIClient) do(httpReq *http.Request, path string) (*apiEnvelope, error) {
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		logger.ErrorLogger.Errorf("Booking store call %s failed: %v", path, err)
		return nil, fmt.Errorf("booking store unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logger.ErrorLogger.Errorf("Undecodable response from %s (status %d): %v", path, resp.StatusCode, err)
		return nil, fmt.Errorf("undecodable response from booking store (status %d)", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		env.Success = false
	}
	return &env, nil
}
