package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/forkful/client/config"
)

// Client is the single configured HTTP client every resource service goes
// through. It serializes JSON bodies, carries the session cookie jar, and
// maps failures onto the ErrNetwork / StatusError / DecodeError taxonomy.
// It performs no caching; that is the resource services' responsibility.
type Client struct {
	rc      *resty.Client
	limiter *rate.Limiter
}

// New creates the configured client for the API base URL
func New(cfg *config.Config) *Client {
	jar, _ := cookiejar.New(nil)

	rc := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetCookieJar(jar)

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{rc: rc, limiter: limiter}
}

// Get issues a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put issues a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// PostMultipart issues a POST request as a multipart form with one file part
// and any number of plain form fields
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, filePart, fileName string, file io.Reader, out interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	req := c.newRequest(ctx).
		SetFormData(fields).
		SetFileReader(filePart, fileName, file)

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return c.decode(resp, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	req := c.newRequest(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return c.decode(resp, out)
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	return c.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return nil
}

// apiErrorBody is the shape the API uses for error responses. The errors
// array carries field-level validation messages and is surfaced verbatim.
type apiErrorBody struct {
	Errors  []string `json:"errors"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
}

func (c *Client) decode(resp *resty.Response, out interface{}) error {
	if resp.StatusCode() >= 400 {
		se := &StatusError{Code: resp.StatusCode()}
		var body apiErrorBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			se.Fields = body.Errors
			se.Message = body.Error
			if se.Message == "" {
				se.Message = body.Message
			}
		}
		return se
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
