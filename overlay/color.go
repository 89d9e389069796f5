package overlay

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/lixenwraith/isoscape/render"
)

// ParseColor parses a CSS colour: #rgb, #rrggbb, rgb(), rgba() or a named colour
// ok is false for empty, transparent or unrecognized values, which paint nothing
func ParseColor(s string) (c render.RGB, alpha float64, ok bool) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "", str == "transparent", str == "none":
		return render.RGB{}, 0, false

	case str[0] == '#':
		cf, err := colorful.Hex(str)
		if err != nil {
			return render.RGB{}, 0, false
		}
		r, g, b := cf.RGB255()
		return render.RGB{R: r, G: g, B: b}, 1, true

	case strings.HasPrefix(str, "rgba("), strings.HasPrefix(str, "rgb("):
		val := str[strings.IndexByte(str, '(')+1:]
		val = strings.TrimSuffix(val, ")")
		val = strings.ReplaceAll(val, " ", "")
		var r, g, b int
		a := 1.0
		var n int
		if strings.Count(val, ",") == 3 {
			n, _ = fmt.Sscanf(val, "%d,%d,%d,%g", &r, &g, &b, &a)
			if n != 4 {
				return render.RGB{}, 0, false
			}
		} else {
			n, _ = fmt.Sscanf(val, "%d,%d,%d", &r, &g, &b)
			if n != 3 {
				return render.RGB{}, 0, false
			}
		}
		if a <= 0 {
			return render.RGB{}, 0, false
		}
		return render.RGB{R: channel(r), G: channel(g), B: channel(b)}, min(a, 1), true
	}

	if named, found := colornames.Map[str]; found {
		return render.RGB{R: named.R, G: named.G, B: named.B}, 1, true
	}
	return render.RGB{}, 0, false
}

func channel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}
