// Package client talks to the tracker API and keeps per-view state in
// sync with it. Mutations apply locally first and push the whole
// collection to the server; a failed push leaves local state in place
// as a pending write (see SubjectView and DailyLogView).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"study-tracker/internal/model"
)

var ErrNoSession = errors.New("no active session")

// Client is the raw API surface. The active user is explicit session
// state: Login sets it, Logout clears it, and every call fails without
// one.
type Client struct {
	base string
	http *http.Client
	user string
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Login(name string) { c.user = name }
func (c *Client) Logout()           { c.user = "" }
func (c *Client) User() string      { return c.user }

// UserRecord is the full document returned by GET /api/:user.
type UserRecord struct {
	Name      string           `json:"name"`
	Subjects  []model.Subject  `json:"subjects"`
	DailyLogs []model.DailyLog `json:"dailylogs"`
}

// FetchUser fetches the session user's record, provisioning it
// server-side on first sight.
func (c *Client) FetchUser(ctx context.Context) (*UserRecord, error) {
	var u UserRecord
	if err := c.do(ctx, http.MethodGet, "", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) FetchSubjects(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := c.do(ctx, http.MethodGet, "subjects", nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// PushSubjects replaces the stored subjects collection wholesale; any
// subject missing from the argument is deleted server-side.
func (c *Client) PushSubjects(ctx context.Context, subjects []model.Subject) ([]model.Subject, error) {
	if subjects == nil {
		subjects = []model.Subject{}
	}
	var stored []model.Subject
	if err := c.do(ctx, http.MethodPost, "subjects", subjects, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// DeleteSubject removes one subject server-side by id. The view flow
// deletes by filtering and pushing instead; both stay consistent.
func (c *Client) DeleteSubject(ctx context.Context, id string) ([]model.Subject, error) {
	var remaining []model.Subject
	if err := c.do(ctx, http.MethodDelete, "subjects/"+url.PathEscape(id), nil, &remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (c *Client) FetchDailyLogs(ctx context.Context) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := c.do(ctx, http.MethodGet, "dailylogs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// PushDailyLogs replaces the stored dailylogs collection wholesale.
func (c *Client) PushDailyLogs(ctx context.Context, logs []model.DailyLog) ([]model.DailyLog, error) {
	if logs == nil {
		logs = []model.DailyLog{}
	}
	var stored []model.DailyLog
	if err := c.do(ctx, http.MethodPost, "dailylogs", logs, &stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.user == "" {
		return ErrNoSession
	}

	endpoint := c.base + "/api/" + url.PathEscape(c.user)
	if path != "" {
		endpoint += "/" + path
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, endpoint, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, endpoint, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
