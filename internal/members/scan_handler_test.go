package members

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtendWindowActiveMemberExtendsFromEndDate(t *testing.T) {
	now := date(2026, time.March, 10)
	start := date(2026, time.March, 1)
	end := date(2026, time.March, 31)

	newStart, newEnd := extendWindow(now, start, end, 30)

	assert.Equal(t, start, newStart)
	assert.Equal(t, end.AddDate(0, 0, 30), newEnd)
}

func TestExtendWindowExpiredMemberRestartsAtNow(t *testing.T) {
	now := date(2026, time.March, 10)
	start := date(2026, time.January, 1)
	end := date(2026, time.February, 1)

	newStart, newEnd := extendWindow(now, start, end, 30)

	assert.Equal(t, now, newStart)
	assert.Equal(t, now.AddDate(0, 0, 30), newEnd)
}

func TestExtendWindowBoundaryCountsAsExpired(t *testing.T) {
	// now == endDate kesin öncelik kuralıyla Expired sayılır,
	// pencere bugünden yeniden başlar.
	now := date(2026, time.March, 10)
	start := date(2026, time.February, 10)

	newStart, newEnd := extendWindow(now, start, now, 7)

	assert.Equal(t, now, newStart)
	assert.Equal(t, now.AddDate(0, 0, 7), newEnd)
}
