package memberships

import "strings"

// Bilinmeyen plan adları için gradient fallback.
const badgeFallback = "bg-gradient-to-br from-teal-400 via-pink-400 to-amber-400"

var badgeColors = map[string]string{
	"daily":     "bg-sky-400",
	"monthly":   "bg-violet-400",
	"yearly":    "bg-yellow-500",
	"half year": "bg-orange-500",
}

// BadgeColor plan adına göre rozet rengini seçer. Eşleşme trim + lowercase
// ile tam eşleşmedir; her zaman bir değer döner, hata durumu yoktur.
func BadgeColor(name string) string {
	if color, ok := badgeColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return color
	}
	return badgeFallback
}
