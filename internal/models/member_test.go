package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusAtBeforeEndDateIsActive(t *testing.T) {
	end := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	m := Member{EndDate: end}

	assert.Equal(t, StatusActive, m.StatusAt(end.Add(-time.Second)))
	assert.Equal(t, StatusActive, m.StatusAt(end.AddDate(0, 0, -10)))
}

func TestStatusAtBoundaryIsExpired(t *testing.T) {
	// now == endDate sınırı Expired'a çözülür (kesin öncelik kuralı)
	end := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	m := Member{EndDate: end}

	assert.Equal(t, StatusExpired, m.StatusAt(end))
}

func TestStatusAtAfterEndDateIsExpired(t *testing.T) {
	end := time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)
	m := Member{EndDate: end}

	assert.Equal(t, StatusExpired, m.StatusAt(end.Add(time.Second)))
	assert.Equal(t, StatusExpired, m.StatusAt(end.AddDate(1, 0, 0)))
}
