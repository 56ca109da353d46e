package dashboard

import (
	"time"

	"gym-backend/internal/models"
)

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// LastThreeMonthsRevenue referans ay ve önceki iki ay için gelir serisini
// üretir (3 nokta, eskiden yeniye). Üye, startDate'inin (yıl, ay) kovasına
// yazılır; kovaya plan fiyatı eklenir. Planı bulunamayan üye sessizce
// atlanır, eşleşen üyesi olmayan ay 0 raporlar.
func LastThreeMonthsRevenue(members []models.Member, memberships []models.Membership, now time.Time) []RevenuePoint {
	type monthKey struct {
		year  int
		month time.Month
	}

	months := make([]monthKey, 0, 3)
	for i := 2; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		months = append(months, monthKey{year: d.Year(), month: d.Month()})
	}

	priceByID := make(map[string]float64, len(memberships))
	for _, m := range memberships {
		priceByID[m.ID] = m.Price
	}

	revenueByMonth := make(map[monthKey]float64, 3)
	for _, mk := range months {
		revenueByMonth[mk] = 0
	}

	for _, member := range members {
		mk := monthKey{year: member.StartDate.Year(), month: member.StartDate.Month()}
		if _, ok := revenueByMonth[mk]; !ok {
			continue
		}
		price, ok := priceByID[member.MembershipID]
		if !ok {
			continue
		}
		revenueByMonth[mk] += price
	}

	result := make([]RevenuePoint, 0, 3)
	for _, mk := range months {
		result = append(result, RevenuePoint{
			Month:   mk.month.String(),
			Revenue: revenueByMonth[mk],
		})
	}
	return result
}
