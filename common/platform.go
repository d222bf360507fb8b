package common

import "strings"

// IsHyprland reports whether the session runs under the Hyprland compositor.
// A set but empty HYPRLAND_INSTANCE_SIGNATURE still counts. lookup is usually
// os.LookupEnv.
func IsHyprland(lookup func(string) (string, bool)) bool {
	if _, ok := lookup("HYPRLAND_INSTANCE_SIGNATURE"); ok {
		return true
	}
	desktop, _ := lookup("XDG_CURRENT_DESKTOP")
	return strings.EqualFold(desktop, "hyprland")
}
