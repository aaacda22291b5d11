package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"invensight/internal/report"
)

func TestFirstHalfOfYear_Bounds(t *testing.T) {
	w := report.FirstHalfOfYear(2025)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC), w.End)
}

func TestSeriesWindow_Contains(t *testing.T) {
	w := report.FirstHalfOfYear(2025)

	assert.True(t, w.Contains(w.Start))
	assert.True(t, w.Contains(w.End))
	assert.True(t, w.Contains(time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(w.Start.Add(-time.Second)))
	assert.False(t, w.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)))
}
