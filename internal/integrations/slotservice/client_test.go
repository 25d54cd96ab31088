package slotservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BayBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	from = time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	to   = from.Add(24 * time.Hour)
)

func TestFetchSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/slots", r.URL.Path)
		assert.Equal(t, "2026-03-04T00:00:00Z", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-03-05T00:00:00Z", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "bayId": 2, "startTime": "2026-03-04T10:00:00Z", "endTime": "2026-03-04T10:55:00Z", "status": "available"},
			{"id": 2, "bayId": 2, "startTime": "2026-03-04T11:00:00Z", "endTime": "2026-03-04T11:55:00Z", "status": "booked"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	slots, err := client.FetchSlots(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, int64(2), slots[0].BayID)
	assert.True(t, slots[0].IsAvailable())
	assert.Equal(t, domain.SlotStatusBooked, slots[1].Status)
	assert.Equal(t, 55*time.Minute, slots[0].EndTime.Sub(slots[0].StartTime))
}

func TestFetchSlots_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).FetchSlots(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchSlots_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).FetchSlots(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchSlots_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).FetchSlots(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestFetchSlots_InvalidRange(t *testing.T) {
	_, err := NewClient("http://unused", time.Second, nopLogger{}).FetchSlots(context.Background(), to, from)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
