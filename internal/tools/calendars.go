// ABOUTME: Calendars pack covers calendars, availability, and appointment CRUD.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// CalendarsPack creates the pack of calendar and appointment tools.
func CalendarsPack(r *tenant.Resolver) *packs.Pack {
	h := &calendarHandlers{resolver: r}
	return &packs.Pack{
		ID: "calendars",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_calendars",
					Description:          "List calendars in an account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.List,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_calendar",
					Description:          "Fetch a calendar by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"calendarId":{"type":"string"},"locationId":{"type":"string"}},"required":["calendarId"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_free_slots",
					Description:          "Get available booking slots for a calendar",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"calendarId":{"type":"string"},"startDate":{"type":"string"},"endDate":{"type":"string"},"timezone":{"type":"string"},"locationId":{"type":"string"}},"required":["calendarId","startDate","endDate"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.FreeSlots,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_calendar_events",
					Description:          "List events on a calendar within a time range",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"calendarId":{"type":"string"},"startTime":{"type":"string"},"endTime":{"type":"string"},"locationId":{"type":"string"}},"required":["calendarId","startTime","endTime"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.ListEvents,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_appointment",
					Description:          "Fetch an appointment by event ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"eventId":{"type":"string"},"locationId":{"type":"string"}},"required":["eventId"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.GetAppointment,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_appointment",
					Description:          "Book an appointment on a calendar",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"calendarId":{"type":"string"},"contactId":{"type":"string"},"startTime":{"type":"string"},"endTime":{"type":"string"},"title":{"type":"string"},"locationId":{"type":"string"}},"required":["calendarId","contactId","startTime"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.CreateAppointment,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "update_appointment",
					Description:          "Update an existing appointment",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"eventId":{"type":"string"},"startTime":{"type":"string"},"endTime":{"type":"string"},"title":{"type":"string"},"appointmentStatus":{"type":"string"},"locationId":{"type":"string"}},"required":["eventId"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.UpdateAppointment,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_appointment",
					Description:          "Cancel and remove an appointment",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"eventId":{"type":"string"},"locationId":{"type":"string"}},"required":["eventId"]}`),
					RequiredCapabilities: []string{"calendars"},
				},
				Handler: h.DeleteAppointment,
			},
		},
	}
}

type calendarHandlers struct {
	resolver *tenant.Resolver
}

type calendarScope struct {
	LocationID string `json:"locationId"`
}

func (h *calendarHandlers) List(ctx context.Context, input json.RawMessage) (string, error) {
	var in calendarScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCalendars(ctx)
	})
}

type calendarIDInput struct {
	CalendarID string `json:"calendarId"`
	LocationID string `json:"locationId"`
}

func (h *calendarHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in calendarIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.CalendarID == "" {
		return "", fmt.Errorf("calendarId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetCalendar(ctx, in.CalendarID)
	})
}

type freeSlotsInput struct {
	CalendarID string `json:"calendarId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Timezone   string `json:"timezone"`
	LocationID string `json:"locationId"`
}

func (h *calendarHandlers) FreeSlots(ctx context.Context, input json.RawMessage) (string, error) {
	var in freeSlotsInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.CalendarID == "" || in.StartDate == "" || in.EndDate == "" {
		return "", fmt.Errorf("calendarId, startDate, and endDate are required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetCalendarFreeSlots(ctx, in.CalendarID, in.StartDate, in.EndDate, in.Timezone)
	})
}

type calendarEventsInput struct {
	CalendarID string `json:"calendarId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	LocationID string `json:"locationId"`
}

func (h *calendarHandlers) ListEvents(ctx context.Context, input json.RawMessage) (string, error) {
	var in calendarEventsInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.CalendarID == "" || in.StartTime == "" || in.EndTime == "" {
		return "", fmt.Errorf("calendarId, startTime, and endTime are required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCalendarEvents(ctx, in.CalendarID, in.StartTime, in.EndTime)
	})
}

type eventIDInput struct {
	EventID    string `json:"eventId"`
	LocationID string `json:"locationId"`
}

func (h *calendarHandlers) GetAppointment(ctx context.Context, input json.RawMessage) (string, error) {
	var in eventIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.EventID == "" {
		return "", fmt.Errorf("eventId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetAppointment(ctx, in.EventID)
	})
}

func (h *calendarHandlers) CreateAppointment(ctx context.Context, input json.RawMessage) (string, error) {
	var scope calendarScope
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateAppointment(ctx, body)
	})
}

func (h *calendarHandlers) UpdateAppointment(ctx context.Context, input json.RawMessage) (string, error) {
	var in eventIDInput
	body, err := decodeBody(input, &in, "locationId", "eventId")
	if err != nil {
		return "", err
	}
	if in.EventID == "" {
		return "", fmt.Errorf("eventId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpdateAppointment(ctx, in.EventID, body)
	})
}

func (h *calendarHandlers) DeleteAppointment(ctx context.Context, input json.RawMessage) (string, error) {
	var in eventIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.EventID == "" {
		return "", fmt.Errorf("eventId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteAppointment(ctx, in.EventID)
	})
}
