package overlay

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/lixenwraith/isoscape/render"
)

type element struct {
	parent   render.Handle // 0 for none
	children []render.Handle
	attached bool // direct child of the container
	style    render.Style
	text     string
}

// Document is a retained element tree painted over the scene in terminal cells
// Coordinates are pixels, mapped to cells by the configured cell size
type Document struct {
	elements map[render.Handle]*element
	roots    []render.Handle // container children in append order
	next     render.Handle

	cellW float64
	cellH float64

	log *zap.Logger
}

// NewDocument creates an empty document with the given pixel size of one cell
func NewDocument(cellWidthPx, cellHeightPx float64, log *zap.Logger) *Document {
	if cellWidthPx <= 0 {
		cellWidthPx = 10
	}
	if cellHeightPx <= 0 {
		cellHeightPx = 20
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Document{
		elements: make(map[render.Handle]*element),
		cellW:    cellWidthPx,
		cellH:    cellHeightPx,
		log:      log,
	}
}

// Len returns the number of live elements, attached or not
func (d *Document) Len() int {
	return len(d.elements)
}

// Text returns an element's text, empty for unknown handles
func (d *Document) Text(h render.Handle) string {
	if el, ok := d.elements[h]; ok {
		return el.text
	}
	return ""
}

func (d *Document) CreateElement() render.Handle {
	d.next++
	d.elements[d.next] = &element{}
	return d.next
}

// AppendToContainer moves the element to the end of the container
func (d *Document) AppendToContainer(h render.Handle) {
	el, ok := d.elements[h]
	if !ok {
		return
	}
	d.detach(h, el)
	el.attached = true
	d.roots = append(d.roots, h)
}

// AppendChild moves child to the end of parent's children
func (d *Document) AppendChild(parent, child render.Handle) {
	p, ok := d.elements[parent]
	c, ok2 := d.elements[child]
	if !ok || !ok2 || parent == child {
		return
	}
	d.detach(child, c)
	c.parent = parent
	p.children = append(p.children, child)
}

// Remove detaches the element and destroys it with its subtree
func (d *Document) Remove(h render.Handle) {
	el, ok := d.elements[h]
	if !ok {
		return
	}
	d.detach(h, el)
	d.destroy(h, el)
}

func (d *Document) destroy(h render.Handle, el *element) {
	for _, c := range el.children {
		if child, ok := d.elements[c]; ok {
			d.destroy(c, child)
		}
	}
	delete(d.elements, h)
}

func (d *Document) detach(h render.Handle, el *element) {
	if el.attached {
		d.roots = without(d.roots, h)
		el.attached = false
	}
	if el.parent != 0 {
		if p, ok := d.elements[el.parent]; ok {
			p.children = without(p.children, h)
		}
		el.parent = 0
	}
}

func without(hs []render.Handle, h render.Handle) []render.Handle {
	for i, v := range hs {
		if v == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}

func (d *Document) SetStyle(h render.Handle, st render.Style) {
	if el, ok := d.elements[h]; ok {
		el.style = st
	}
}

func (d *Document) SetText(h render.Handle, text string) {
	if el, ok := d.elements[h]; ok {
		el.text = text
	}
}

// Paint draws the container's subtrees in append order
func (d *Document) Paint(buf *render.RenderBuffer) {
	for _, h := range d.roots {
		d.paint(buf, h, 0, 0)
	}
}

// paint draws one element whose containing block starts at (ox, oy) px
func (d *Document) paint(buf *render.RenderBuffer, h render.Handle, ox, oy float64) {
	el, ok := d.elements[h]
	if !ok || el.style.Display == "none" {
		return
	}
	x, y := ox+el.style.Left, oy+el.style.Top

	if c, alpha, ok := ParseColor(el.style.Background); ok && el.style.Width > 0 && el.style.Height > 0 {
		d.fill(buf, x, y, el.style.Width, el.style.Height, c, alpha)
	}
	if el.text != "" {
		d.text(buf, el, x, y)
	}
	for _, c := range el.children {
		d.paint(buf, c, x, y)
	}
}

func (d *Document) fill(buf *render.RenderBuffer, x, y, w, h float64, c render.RGB, alpha float64) {
	col0, row0 := d.cell(x, y)
	col1 := int(math.Ceil((x + w) / d.cellW))
	row1 := int(math.Ceil((y + h) / d.cellH))
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			base := render.DefaultBgRGB
			if buf.Touched(col, row) {
				base = buf.Get(col, row).Bg
			}
			buf.SetBgOnly(col, row, render.Lerp(base, c, alpha))
		}
	}
}

func (d *Document) text(buf *render.RenderBuffer, el *element, x, y float64) {
	fg, _, ok := ParseColor(el.style.Color)
	if !ok {
		fg = render.RGBWhite
	}
	attrs := tcell.AttrNone
	if fontSize(el.style.Font) >= boldFromPx {
		attrs = tcell.AttrBold
	}

	limit := 0
	if el.style.MaxWidth > 0 {
		limit = max(1, int(el.style.MaxWidth/d.cellW))
	}

	col0, row := d.cell(x, y)
	for _, line := range wrap(el.text, limit) {
		col := col0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			buf.SetFgOnly(col, row, r, fg, attrs)
			col += w
		}
		row++
	}
}

// cell maps a pixel position to the cell containing it
func (d *Document) cell(x, y float64) (col, row int) {
	return int(math.Floor(x / d.cellW)), int(math.Floor(y / d.cellH))
}

// wrap breaks text into lines of at most limit cells at spaces; limit 0 only splits on newlines
// Words wider than limit are cut
func wrap(text string, limit int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if limit <= 0 {
			lines = append(lines, para)
			continue
		}
		var line strings.Builder
		width := 0
		for _, word := range strings.Fields(para) {
			ww := runewidth.StringWidth(word)
			if ww > limit {
				word = runewidth.Truncate(word, limit, "")
				ww = runewidth.StringWidth(word)
			}
			switch {
			case width == 0:
			case width+1+ww <= limit:
				line.WriteByte(' ')
				width++
			default:
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			line.WriteString(word)
			width += ww
		}
		lines = append(lines, line.String())
	}
	return lines
}
