// Package apiclient is the HTTP client for the resume service REST API.
// The CLI uses it to sync drafts with the server, run the assist
// operations remotely, and download rendered exports.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
)

// Client calls the resume service under a fixed base URL and user identity.
// The underlying http.Client carries no Timeout; a request runs until the
// server responds, the connection drops, or the caller's context ends.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
	seq     atomic.Uint64
}

// New constructs a client for the API rooted at baseURL, for example
// "http://localhost:8080/api". An empty userID lets the server fall back
// to its default identity.
func New(baseURL, userID string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		http:    &http.Client{},
	}
}

// SaveResult carries a saved resume together with its position in the
// client's save sequence. Stale reports that a newer save was issued
// before this response arrived; callers keep the newer result and drop
// this one.
type SaveResult struct {
	Resume Resume
	Seq    uint64
	Stale  bool
}

// Health reports whether the service answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

// List fetches every resume stored for the client's user.
func (c *Client) List(ctx context.Context) ([]Resume, error) {
	var out []Resume
	if err := c.doJSON(ctx, http.MethodGet, "/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one resume by id.
func (c *Client) Get(ctx context.Context, id int64) (Resume, error) {
	var out Resume
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/resumes/%d", id), nil, &out)
	return out, err
}

// Create stores a new resume from the payload.
func (c *Client) Create(ctx context.Context, payload SavePayload) (SaveResult, error) {
	seq := c.seq.Add(1)
	var rec Resume
	if err := c.doJSON(ctx, http.MethodPost, "/resumes", payload, &rec); err != nil {
		return SaveResult{Seq: seq}, err
	}
	return SaveResult{Resume: rec, Seq: seq, Stale: seq < c.seq.Load()}, nil
}

// Update patches an existing resume. Nil payload fields leave the stored
// values untouched.
func (c *Client) Update(ctx context.Context, id int64, payload SavePayload) (SaveResult, error) {
	seq := c.seq.Add(1)
	var rec Resume
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/resumes/%d", id), payload, &rec); err != nil {
		return SaveResult{Seq: seq}, err
	}
	return SaveResult{Resume: rec, Seq: seq, Stale: seq < c.seq.Load()}, nil
}

// Delete removes a resume by id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/resumes/%d", id), nil, nil)
}

// Optimize runs the resume text through the optimization endpoint.
func (c *Client) Optimize(ctx context.Context, resumeText, targetRole string) (OptimizeResult, error) {
	req := struct {
		ResumeText string `json:"resumeText"`
		TargetRole string `json:"targetRole,omitempty"`
	}{ResumeText: resumeText, TargetRole: targetRole}

	var out OptimizeResult
	err := c.doJSON(ctx, http.MethodPost, "/optimize-resume", req, &out)
	return out, err
}

// GenerateCoverLetter produces a cover letter for the given resume text
// and target role. companyName may be empty.
func (c *Client) GenerateCoverLetter(ctx context.Context, resumeText, targetRole, companyName string) (string, error) {
	req := struct {
		ResumeText  string `json:"resumeText"`
		TargetRole  string `json:"targetRole"`
		CompanyName string `json:"companyName,omitempty"`
	}{ResumeText: resumeText, TargetRole: targetRole, CompanyName: companyName}

	var out struct {
		CoverLetter string `json:"coverLetter"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/generate-cover-letter", req, &out)
	return out.CoverLetter, err
}

// ExportResume downloads the rendered PDF for a stored resume into w.
// Empty template or color keep the values stored on the record. It
// returns the server-chosen file name.
func (c *Client) ExportResume(ctx context.Context, id int64, template, color string, w io.Writer) (string, error) {
	path := fmt.Sprintf("/resumes/%d/export", id)
	q := url.Values{}
	if template != "" {
		q.Set("template", template)
	}
	if color != "" {
		q.Set("color", color)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.download(ctx, http.MethodGet, path, nil, w)
}

// ExportCoverLetter renders the letter text to PDF and downloads it into
// w. fileName may be empty to accept the server default. It returns the
// server-chosen file name.
func (c *Client) ExportCoverLetter(ctx context.Context, letter, fileName string, w io.Writer) (string, error) {
	req := struct {
		CoverLetter string `json:"coverLetter"`
		FileName    string `json:"fileName,omitempty"`
	}{CoverLetter: letter, FileName: fileName}
	return c.download(ctx, http.MethodPost, "/export/cover-letter", req, w)
}

// doJSON performs one request and decodes a JSON response into out when
// out is non-nil. Any non-2xx status becomes a typed error.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// download performs one request and streams the response body into w,
// returning the file name from the Content-Disposition header.
func (c *Client) download(ctx context.Context, method, path string, in any, w io.Writer) (string, error) {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	fileName := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		fileName = params["filename"]
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fileName, fmt.Errorf("download body: %w", err)
	}
	return fileName, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userID != "" {
		req.Header.Set("X-User-Id", c.userID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

// decodeError turns an error response into a typed error carrying the
// service's message.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var e struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		msg = e.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
}
