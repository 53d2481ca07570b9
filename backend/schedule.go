package backend

import (
	"context"
	"net/http"
	"net/url"

	"clinicdesk/models"
)

// GetSchedule fetches the stored working schedule for the given staff email.
// A 404 surfaces as a KindNotFound error; callers treat it as "no schedule yet".
func (c *Client) GetSchedule(ctx context.Context, auth, email string) ([]models.ScheduleRecord, error) {
	query := url.Values{"email": []string{email}}
	var records []models.ScheduleRecord
	if err := c.do(ctx, auth, http.MethodGet, "/schedules/get-schedule", query, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveSchedule replaces the stored schedule, or the submitted subset of days
// when doing a day-level patch.
func (c *Client) SaveSchedule(ctx context.Context, auth string, req models.SaveScheduleRequest) error {
	return c.do(ctx, auth, http.MethodPost, "/schedules/create-schedule", nil, req, nil)
}
