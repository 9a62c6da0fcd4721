package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultServerAddr is the backend base URL used when neither an option nor
// the SYMPTOM_STORY_SERVER_ADDR environment variable provides one.
const DefaultServerAddr = "http://localhost:8000"

// Client is the Symptom-Story backend client. It translates each logical
// portal operation into one HTTP exchange and normalizes the outcome.
type Client struct {
	serverAddr string
	timeout    time.Duration
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	metrics    *Metrics

	// Text-analysis cache fields.
	cache    sync.Map
	cacheTTL time.Duration
}

// cacheEntry is a cached analysis response with expiry.
type cacheEntry struct {
	result    *AnalysisResult
	expiresAt time.Time
}

// NewClient creates a new backend client. The token source is consulted
// fresh on every authenticated call; pass the credential store.
func NewClient(tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		serverAddr: os.Getenv("SYMPTOM_STORY_SERVER_ADDR"),
		timeout:    30 * time.Second,
		tokens:     tokens,
		cacheTTL:   30 * time.Second,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.serverAddr == "" {
		c.serverAddr = DefaultServerAddr
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Signup registers a new account. It does not log the user in; a separate
// Login call is required afterwards.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*UserInfo, error) {
	if req.Role == "" {
		req.Role = "patient"
	}
	if req.Username == "" {
		req.Username = req.Email
	}
	var user UserInfo
	if err := c.doJSON(ctx, "signup", http.MethodPost, "/api/auth/signup", false, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token. The backend expects a
// form-urlencoded body with the email sent as the username field.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/api/auth/login"), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create login request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token TokenResponse
	if err := c.do("login", httpReq, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Me fetches the identity of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var user UserInfo
	if err := c.doJSON(ctx, "me", http.MethodGet, "/api/auth/me", true, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// AnalyzeText submits a symptom description for analysis. Identical text
// within the cache TTL returns the cached result without a network call.
func (c *Client) AnalyzeText(ctx context.Context, text string) (*AnalysisResult, error) {
	key := xxhash.Sum64String(text)
	if result, ok := c.getFromCache(key); ok {
		return result, nil
	}

	body := struct {
		Text string `json:"text"`
	}{Text: text}

	var result AnalysisResult
	if err := c.doJSON(ctx, "analyze_text", http.MethodPost, "/api/analyze", true, body, &result); err != nil {
		return nil, err
	}
	c.putInCache(key, &result)
	return &result, nil
}

// AnalyzeAudio submits an audio recording for speech-to-text analysis.
// The body is multipart form data with the recording under audio_file;
// the content type carries the multipart boundary, never application/json.
func (c *Client) AnalyzeAudio(ctx context.Context, filename string, audio io.Reader) (*AnalysisResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio_file", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/api/analyze"), &buf)
	if err != nil {
		return nil, fmt.Errorf("create analyze request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(httpReq)

	var result AnalysisResult
	if err := c.do("analyze_audio", httpReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// History fetches the authenticated user's past analyses.
func (c *Client) History(ctx context.Context) ([]HistoryRecord, error) {
	var records []HistoryRecord
	if err := c.doJSON(ctx, "history", http.MethodGet, "/api/history", true, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DoctorPatients fetches the patients assigned to the authenticated doctor.
func (c *Client) DoctorPatients(ctx context.Context) ([]PatientSummary, error) {
	var patients []PatientSummary
	if err := c.doJSON(ctx, "doctor_patients", http.MethodGet, "/api/doctor/patients", true, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// PatientConsultations fetches the authenticated patient's consultation
// records, including diagnosis, medications, and follow-up schedule.
func (c *Client) PatientConsultations(ctx context.Context) ([]Consultation, error) {
	var consultations []Consultation
	if err := c.doJSON(ctx, "consultations", http.MethodGet, "/api/patient/my-consultations", true, nil, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

// doJSON performs a JSON request. Auth calls get a bearer header sourced
// fresh from the token source; the header is omitted when no token exists.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, authed bool, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if authed {
		c.authorize(httpReq)
	}

	return c.do(operation, httpReq, result)
}

// do executes the request and normalizes the outcome: parsed payload on 2xx,
// *RequestError with the server's detail on other statuses, *TransportError
// when the exchange itself fails.
func (c *Client) do(operation string, httpReq *http.Request, result any) error {
	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(operation, "unreachable", time.Since(start).Seconds())
		c.logger.Debug("backend request failed",
			"operation", operation, "error", err)
		return &TransportError{Cause: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.metrics.observe(operation, "unreachable", time.Since(start).Seconds())
		return &TransportError{Cause: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		c.metrics.observe(operation, "error", time.Since(start).Seconds())
		return &RequestError{
			Status: httpResp.StatusCode,
			Detail: errorDetail(respBody, operation),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			c.metrics.observe(operation, "error", time.Since(start).Seconds())
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	c.metrics.observe(operation, "ok", time.Since(start).Seconds())
	c.logger.Debug("backend request ok",
		"operation", operation, "status", httpResp.StatusCode)
	return nil
}

// authorize attaches the bearer header when a token is persisted.
func (c *Client) authorize(httpReq *http.Request) {
	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
}

// endpoint joins the base URL and a path.
func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.serverAddr, "/") + path
}

// errorDetail extracts the server-supplied detail message from an error
// body, falling back to a generic message per operation.
func errorDetail(body []byte, operation string) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Detail != "" {
		return apiErr.Detail
	}
	switch operation {
	case "signup":
		return "Signup failed"
	case "login":
		return "Login failed"
	case "me":
		return "Failed to fetch user info"
	case "analyze_text", "analyze_audio":
		return "Analysis failed"
	case "history":
		return "Failed to fetch history"
	default:
		return "Request failed"
	}
}

// getFromCache retrieves a cached analysis if it exists and hasn't expired.
func (c *Client) getFromCache(key uint64) (*AnalysisResult, bool) {
	if c.cacheTTL <= 0 {
		return nil, false
	}
	val, ok := c.cache.Load(key)
	if !ok {
		return nil, false
	}
	entry := val.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.cache.Delete(key)
		return nil, false
	}
	return entry.result, true
}

// putInCache stores an analysis response in the cache.
func (c *Client) putInCache(key uint64, result *AnalysisResult) {
	if c.cacheTTL <= 0 {
		return
	}
	c.cache.Store(key, &cacheEntry{
		result:    result,
		expiresAt: time.Now().Add(c.cacheTTL),
	})
}
