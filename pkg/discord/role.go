package discord

import "fmt"

// Role is a guild role. Color is a hex string like "#ff5733", empty
// when the role uses the default color.
type Role struct {
	ID       Snowflake
	Name     string
	Position int
	Color    string
}

// RoleColorFromInt converts the wire-format integer color to a hex
// string. Zero means "no color" and maps to the empty string.
func RoleColorFromInt(color int) string {
	if color <= 0 {
		return ""
	}
	return fmt.Sprintf("#%06x", color)
}

// ColorRGB decodes the role color into its components. ok is false
// when the role has no color or the value is malformed.
func (r Role) ColorRGB() (red, green, blue int, ok bool) {
	var c int
	if _, err := fmt.Sscanf(r.Color, "#%06x", &c); err != nil {
		return 0, 0, 0, false
	}
	return c >> 16 & 0xff, c >> 8 & 0xff, c & 0xff, true
}
