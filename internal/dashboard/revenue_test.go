package dashboard

import (
	"testing"
	"time"

	"gym-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func member(membershipID string, start time.Time) models.Member {
	return models.Member{MembershipID: membershipID, StartDate: start}
}

func TestLastThreeMonthsRevenueBucketsAndOrder(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	memberships := []models.Membership{
		{ID: "m-20", Price: 20},
		{ID: "m-30", Price: 30},
		{ID: "m-15", Price: 15},
	}
	members := []models.Member{
		member("m-20", time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)),
		member("m-30", time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC)),
		member("m-15", time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)),
	}

	got := LastThreeMonthsRevenue(members, memberships, now)

	assert.Equal(t, []RevenuePoint{
		{Month: "July", Revenue: 0},
		{Month: "August", Revenue: 15},
		{Month: "September", Revenue: 50},
	}, got)
}

func TestLastThreeMonthsRevenueAlwaysThreePoints(t *testing.T) {
	now := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	got := LastThreeMonthsRevenue(nil, nil, now)

	// Yıl sınırından geriye doğru: Kasım, Aralık, Ocak
	assert.Equal(t, []RevenuePoint{
		{Month: "November", Revenue: 0},
		{Month: "December", Revenue: 0},
		{Month: "January", Revenue: 0},
	}, got)
}

func TestLastThreeMonthsRevenueUnknownMembershipSkipped(t *testing.T) {
	now := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	memberships := []models.Membership{{ID: "known", Price: 40}}
	members := []models.Member{
		member("known", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)),
		// Silinmiş plana referans veren üye hata üretmez, katkı da yapmaz
		member("deleted-plan", time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := LastThreeMonthsRevenue(members, memberships, now)

	assert.Equal(t, 40.0, got[2].Revenue)
}

func TestLastThreeMonthsRevenueIgnoresOutOfWindowMembers(t *testing.T) {
	now := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	memberships := []models.Membership{{ID: "m", Price: 10}}
	members := []models.Member{
		member("m", time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)),
		member("m", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := LastThreeMonthsRevenue(members, memberships, now)

	for _, p := range got {
		assert.Zero(t, p.Revenue)
	}
}
