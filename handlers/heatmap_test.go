package handlers

import (
	"net/http"
	"testing"
	"time"

	"retail-analytics-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createHeatmap(t *testing.T, db *gorm.DB, section, level string, visitors int, ts time.Time) {
	t.Helper()
	h := models.Heatmap{Section: section, DensityLevel: level, VisitorCount: visitors, Timestamp: ts}
	require.NoError(t, db.Create(&h).Error)
}

func TestHeatmapGetLatest(t *testing.T) {
	router, db := newTestRouter(t)
	now := time.Now()
	createHeatmap(t, db, "entrance", models.DensityHigh, 30, now)
	createHeatmap(t, db, "entrance", models.DensityLow, 3, now.Add(-time.Hour))
	createHeatmap(t, db, "apparel", models.DensityMedium, 10, now)

	w := doRequest(t, router, http.MethodGet, "/api/heatmap/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	decodeJSON(t, w, &rows)
	assert.Len(t, rows, 2, "one entry per section")
}

func TestHeatmapGetAnalysis(t *testing.T) {
	router, db := newTestRouter(t)
	now := time.Now()
	createHeatmap(t, db, "a", models.DensityHigh, 10, now)
	createHeatmap(t, db, "b", models.DensityLow, 2, now)

	w := doRequest(t, router, http.MethodGet, "/api/heatmap/analysis", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	decodeJSON(t, w, &resp)
	assert.EqualValues(t, 1, resp["high_count"])
	assert.EqualValues(t, 0, resp["medium_count"], "zero count must be present, not absent")
	assert.EqualValues(t, 1, resp["low_count"])
	assert.EqualValues(t, 6, resp["avg_visitors"])
}

func TestHeatmapGetByDensity(t *testing.T) {
	router, db := newTestRouter(t)
	now := time.Now()
	createHeatmap(t, db, "entrance", models.DensityHigh, 30, now)
	createHeatmap(t, db, "apparel", models.DensityLow, 2, now)

	t.Run("filters by level", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/heatmap/density/high", "")
		require.Equal(t, http.StatusOK, w.Code)

		var rows []map[string]interface{}
		decodeJSON(t, w, &rows)
		require.Len(t, rows, 1)
		assert.Equal(t, "entrance", rows[0]["section"])
	})

	t.Run("unknown level is 422", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/heatmap/density/extreme", "")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
