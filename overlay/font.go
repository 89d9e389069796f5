package overlay

import (
	"strconv"
	"strings"
)

// boldFromPx is the font size at which text renders bold
const boldFromPx = 40

// fontSize returns the px size in a CSS font shorthand such as "30px Helvetica", 0 if absent
func fontSize(font string) float64 {
	for _, f := range strings.Fields(font) {
		if !strings.HasSuffix(f, "px") {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64); err == nil {
			return v
		}
	}
	return 0
}
