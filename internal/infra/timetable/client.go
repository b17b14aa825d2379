// Package timetable reads the university's public timetable feeds over HTTP.
package timetable

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"sippec/config"
	"sippec/internal/domain/service"
)

const defaultTimeout = 15 * time.Second

// Feed paths relative to the base URL. Each endpoint returns JSON when the
// "json" query flag is present.
const (
	groupsPath     = "subgrupe.php"
	classroomsPath = "sali.php"
	staffPath      = "cadre.php"
	schedulePath   = "orarSPG.php"
)

// client implements service.TimetableClient against the public feed.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the timetable client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.TimetableClient, error) {
	if cfg.Timetable == nil || cfg.Timetable.BaseURL == "" {
		return nil, errors.New("timetable base url must be provided")
	}

	timeout := defaultTimeout
	if cfg.Timetable.Timeout > 0 {
		timeout = cfg.Timetable.Timeout
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.Timetable.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// FetchGroups retrieves the subgroup feed.
func (c *client) FetchGroups(ctx context.Context) ([]service.GroupRecord, error) {
	var records []service.GroupRecord
	if err := c.getJSON(ctx, groupsPath, url.Values{"json": {""}}, &records); err != nil {
		return nil, errors.Wrap(err, "fetch groups")
	}

	return records, nil
}

// FetchClassrooms retrieves the room feed.
func (c *client) FetchClassrooms(ctx context.Context) ([]service.ClassroomRecord, error) {
	var records []service.ClassroomRecord
	if err := c.getJSON(ctx, classroomsPath, url.Values{"json": {""}}, &records); err != nil {
		return nil, errors.Wrap(err, "fetch classrooms")
	}

	return records, nil
}

// FetchStaff retrieves the teaching-staff feed.
func (c *client) FetchStaff(ctx context.Context) ([]service.StaffRecord, error) {
	var records []service.StaffRecord
	if err := c.getJSON(ctx, staffPath, url.Values{"json": {""}}, &records); err != nil {
		return nil, errors.Wrap(err, "fetch staff")
	}

	return records, nil
}

// FetchStaffCourses retrieves the distinct course names a staff member
// teaches. The schedule feed answers with a two-element array whose first
// element lists the activities; each activity names its course in
// topicLongName. The same course appears once per scheduled slot, so the
// names are deduplicated in encounter order.
func (c *client) FetchStaffCourses(ctx context.Context, staffFeedID string) ([]string, error) {
	params := url.Values{
		"ID":   {staffFeedID},
		"mod":  {"prof"},
		"json": {""},
	}

	var payload []json.RawMessage
	if err := c.getJSON(ctx, schedulePath, params, &payload); err != nil {
		return nil, errors.Wrap(err, "fetch staff schedule")
	}
	if len(payload) == 0 {
		return []string{}, nil
	}

	var activities []struct {
		TopicLongName string `json:"topicLongName"`
	}
	if err := json.Unmarshal(payload[0], &activities); err != nil {
		return nil, errors.Wrap(err, "decode staff schedule activities")
	}

	seen := make(map[string]struct{}, len(activities))
	courses := make([]string, 0, len(activities))
	for _, activity := range activities {
		name := strings.TrimSpace(activity.TopicLongName)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		courses = append(courses, name)
	}

	return courses, nil
}

// getJSON performs a GET against the given feed path and decodes the JSON
// response body into out.
func (c *client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + path
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request timetable feed")
	}
	defer resp.Body.Close()

	c.logger.Debug("timetable feed response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return errors.Errorf("timetable feed returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode timetable feed response")
	}

	return nil
}
