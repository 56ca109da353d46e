package memberships

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeColorKnownPlans(t *testing.T) {
	assert.Equal(t, "bg-sky-400", BadgeColor("daily"))
	assert.Equal(t, "bg-violet-400", BadgeColor("monthly"))
	assert.Equal(t, "bg-yellow-500", BadgeColor("yearly"))
	assert.Equal(t, "bg-orange-500", BadgeColor("half year"))
}

func TestBadgeColorNormalizesInput(t *testing.T) {
	assert.Equal(t, "bg-violet-400", BadgeColor("  Monthly "))
	assert.Equal(t, "bg-sky-400", BadgeColor("DAILY"))
}

func TestBadgeColorFallback(t *testing.T) {
	assert.Equal(t, badgeFallback, BadgeColor("weekend special"))
	assert.Equal(t, badgeFallback, BadgeColor(""))
}
