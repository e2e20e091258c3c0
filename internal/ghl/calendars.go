// ABOUTME: Calendar and appointment endpoints of the GHL API
// ABOUTME: Appointment endpoints still require the legacy API revision

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListCalendars lists calendars in the bound location.
func (c *Client) ListCalendars(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/calendars/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// GetCalendar fetches one calendar.
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/calendars/"+calendarID, RequestOptions{
		Version: VersionStandard,
	})
}

// GetCalendarFreeSlots returns open slots between two dates.
func (c *Client) GetCalendarFreeSlots(ctx context.Context, calendarID, startDate, endDate, timezone string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/calendars/"+calendarID+"/free-slots", RequestOptions{
		Query:   map[string]string{"startDate": startDate, "endDate": endDate, "timezone": timezone},
		Version: VersionLegacy,
	})
}

// ListCalendarEvents lists events on a calendar within a time window.
func (c *Client) ListCalendarEvents(ctx context.Context, calendarID, startTime, endTime string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/calendars/events", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"calendarId": calendarID,
			"startTime":  startTime,
			"endTime":    endTime,
		},
		Version: VersionLegacy,
	})
}

// GetAppointment fetches one appointment event.
func (c *Client) GetAppointment(ctx context.Context, eventID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/calendars/events/appointments/"+eventID, RequestOptions{
		Version: VersionLegacy,
	})
}

// CreateAppointment books an appointment.
func (c *Client) CreateAppointment(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/calendars/events/appointments", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionLegacy,
	})
}

// UpdateAppointment reschedules or edits an appointment.
func (c *Client) UpdateAppointment(ctx context.Context, eventID string, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "/calendars/events/appointments/"+eventID, RequestOptions{
		Body:    data,
		Version: VersionLegacy,
	})
}

// DeleteAppointment cancels an appointment.
func (c *Client) DeleteAppointment(ctx context.Context, eventID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/calendars/events/appointments/"+eventID, RequestOptions{
		Version: VersionLegacy,
	})
}
