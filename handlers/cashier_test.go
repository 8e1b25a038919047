package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashierGetCurrent(t *testing.T) {
	t.Run("no data is 200 with message", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doRequest(t, router, http.MethodGet, "/api/cashier/current", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		assert.Equal(t, "No cashier data available", resp["message"])
	})

	t.Run("latest snapshot", func(t *testing.T) {
		router, db := newTestRouter(t)
		createCashier(t, db, 2, nil, time.Now().Add(-time.Hour))
		createCashier(t, db, 7, nil, time.Now().Add(-time.Minute))

		w := doRequest(t, router, http.MethodGet, "/api/cashier/current", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		assert.EqualValues(t, 7, resp["queue_length"])
	})
}

func TestCashierGetHistory(t *testing.T) {
	router, db := newTestRouter(t)
	createCashier(t, db, 3, nil, time.Now().Add(-time.Hour))
	createCashier(t, db, 5, nil, time.Now().Add(-10*time.Hour))

	t.Run("default window is 6 hours", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/cashier/history", "")
		require.Equal(t, http.StatusOK, w.Code)

		var rows []map[string]interface{}
		decodeJSON(t, w, &rows)
		assert.Len(t, rows, 1)
	})

	t.Run("wider window", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/cashier/history?hours=24", "")
		require.Equal(t, http.StatusOK, w.Code)

		var rows []map[string]interface{}
		decodeJSON(t, w, &rows)
		assert.Len(t, rows, 2)
	})

	t.Run("hours out of range is 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/cashier/history?hours=200", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCashierGetWaitTime(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w := doRequest(t, router, http.MethodGet, "/api/cashier/wait-time", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		assert.EqualValues(t, 0, resp["estimated_wait_minutes"])
		assert.Equal(t, "No data", resp["message"])
	})

	t.Run("fallback heuristic", func(t *testing.T) {
		router, db := newTestRouter(t)
		createCashier(t, db, 5, nil, time.Now())

		w := doRequest(t, router, http.MethodGet, "/api/cashier/wait-time", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		assert.EqualValues(t, 10, resp["estimated_wait_minutes"],
			"queue of 5 with no explicit wait estimates 10 minutes")
		assert.EqualValues(t, 5, resp["queue_length"])
	})

	t.Run("explicit wait time wins", func(t *testing.T) {
		router, db := newTestRouter(t)
		wait := 4.5
		createCashier(t, db, 5, &wait, time.Now())

		w := doRequest(t, router, http.MethodGet, "/api/cashier/wait-time", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		decodeJSON(t, w, &resp)
		assert.EqualValues(t, 4.5, resp["estimated_wait_minutes"])
	})
}

func TestCashierGetBusyPeriods(t *testing.T) {
	router, db := newTestRouter(t)
	hour := time.Now().Add(-4 * time.Hour).Truncate(time.Hour)
	createCashier(t, db, 10, nil, hour.Add(5*time.Minute))
	createCashier(t, db, 12, nil, hour.Add(25*time.Minute))

	w := doRequest(t, router, http.MethodGet, "/api/cashier/busy-periods?threshold=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var periods []map[string]interface{}
	decodeJSON(t, w, &periods)
	require.Len(t, periods, 1)
	assert.EqualValues(t, 11, periods[0]["avg_queue"])
	assert.EqualValues(t, 12, periods[0]["max_queue"])
}
