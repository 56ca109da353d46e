package users

import "strings"

const roleBadgeFallback = "bg-gradient-to-br from-green-400 via-emerald-500 to-teal-400"

var roleBadgeColors = map[string]string{
	"admin": "bg-gradient-to-br from-red-500 via-orange-500 to-yellow-400",
	"staff": "bg-gradient-to-br from-blue-500 via-indigo-500 to-purple-500",
}

// RoleBadgeColor rol etiketine göre rozet rengini seçer; her zaman bir değer döner.
func RoleBadgeColor(role string) string {
	if color, ok := roleBadgeColors[strings.ToLower(strings.TrimSpace(role))]; ok {
		return color
	}
	return roleBadgeFallback
}
