package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umeshpagere/cepl-kumbh-mela/internal/dto"
)

func TestAartiReminder_Handler_Success(t *testing.T) {
	c, rec := newSearchContext(t, "/api/aarti-reminder",
		`{"name":"Ramkund Mangal Aarti","location":"Ramkund Ghat","time":"5:30 AM","duration":"45 minutes"}`)

	require.NoError(t, NewReminderHandler().AartiReminder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ReminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "https://www.google.com/calendar/render?")
	assert.Contains(t, resp.URL, "action=TEMPLATE")
	assert.Contains(t, resp.URL, "location=Ramkund+Ghat")
}

func TestAartiReminder_Handler_MissingFields(t *testing.T) {
	cases := []string{
		`{}`,
		`{"name":"Ramkund Mangal Aarti"}`,
		`{"time":"5:30 AM"}`,
	}

	for _, body := range cases {
		c, _ := newSearchContext(t, "/api/aarti-reminder", body)

		err := NewReminderHandler().AartiReminder(c)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "body %s should fail", body)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Equal(t, "name and time are required", he.Message)
	}
}

func TestAartiReminder_Handler_BadClock(t *testing.T) {
	c, _ := newSearchContext(t, "/api/aarti-reminder", `{"name":"Ganga Aarti","time":"dawn"}`)

	err := NewReminderHandler().AartiReminder(c)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "invalid time value", he.Message)
}
