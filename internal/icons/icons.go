// Package icons maps icon identifiers stored on content documents to a closed set of
// renderable icons.
package icons

import (
	"sort"
	"strings"
)

// Icon describes a renderable icon. Glyph is the name understood by the front-end icon set.
type Icon struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Glyph string `json:"glyph"`
}

// DefaultKey is used when an identifier is empty or unknown.
const DefaultKey = "sparkles"

var table = map[string]Icon{
	"tooth":      {Key: "tooth", Label: "Tooth", Glyph: "lucide:smile-plus"},
	"implant":    {Key: "implant", Label: "Implant", Glyph: "lucide:drill"},
	"sparkles":   {Key: "sparkles", Label: "Sparkles", Glyph: "lucide:sparkles"},
	"shield":     {Key: "shield", Label: "Shield", Glyph: "lucide:shield-check"},
	"microscope": {Key: "microscope", Label: "Microscope", Glyph: "lucide:microscope"},
	"scan":       {Key: "scan", Label: "Scan", Glyph: "lucide:scan-face"},
	"smile":      {Key: "smile", Label: "Smile", Glyph: "lucide:smile"},
	"heart":      {Key: "heart", Label: "Heart", Glyph: "lucide:heart-pulse"},
	"plane":      {Key: "plane", Label: "Plane", Glyph: "lucide:plane"},
	"hotel":      {Key: "hotel", Label: "Hotel", Glyph: "lucide:hotel"},
	"clock":      {Key: "clock", Label: "Clock", Glyph: "lucide:clock"},
	"award":      {Key: "award", Label: "Award", Glyph: "lucide:award"},
	"users":      {Key: "users", Label: "Users", Glyph: "lucide:users"},
	"camera":     {Key: "camera", Label: "Camera", Glyph: "lucide:camera"},
	"cpu":        {Key: "cpu", Label: "CPU", Glyph: "lucide:cpu"},
	"star":       {Key: "star", Label: "Star", Glyph: "lucide:star"},
	"check":      {Key: "check", Label: "Check", Glyph: "lucide:check-circle"},
	"calendar":   {Key: "calendar", Label: "Calendar", Glyph: "lucide:calendar-days"},
}

// aliases accept the component-style names editors tend to type.
var aliases = map[string]string{
	"sparkle":      "sparkles",
	"shieldcheck":  "shield",
	"scanface":     "scan",
	"heartpulse":   "heart",
	"checkcircle":  "check",
	"calendardays": "calendar",
	"drill":        "implant",
}

// Lookup resolves key to an icon. It reports false when the default icon was substituted.
func Lookup(key string) (Icon, bool) {
	normalized := normalize(key)
	if icon, ok := table[normalized]; ok {
		return icon, true
	}
	if target, ok := aliases[normalized]; ok {
		return table[target], true
	}
	return table[DefaultKey], false
}

// Resolve returns the icon for key, substituting the default for unknown keys.
func Resolve(key string) Icon {
	icon, _ := Lookup(key)
	return icon
}

// Keys lists the canonical identifiers in sorted order.
func Keys() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalize(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.TrimSuffix(key, "icon")
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
}
