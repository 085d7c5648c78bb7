package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RowList draws a vertical list of alternating demo rows, enough content to
// give the scroll view something to move.
type RowList struct {
	Count int
}

// ContentHeight returns the total scrollable height of the list.
func (l *RowList) ContentHeight() float64 {
	return float64(l.Count) * (RowHeight + RowGap)
}

// Draw renders the rows. top is the unscrolled Y of the first row, scrollY
// the current scroll offset. Rows outside the viewport are culled.
func (l *RowList) Draw(dst *ebiten.Image, top, scrollY float64) {
	w := float64(dst.Bounds().Dx())
	viewH := float64(dst.Bounds().Dy())
	rowW := w - 2*SectionPadding

	for i := 0; i < l.Count; i++ {
		y := top + float64(i)*(RowHeight+RowGap) - scrollY
		if y+RowHeight < 0 || y > viewH {
			continue
		}

		bg := ColorRowEven
		if i%2 == 1 {
			bg = ColorRowOdd
		}
		vector.DrawFilledRect(dst, SectionPadding, float32(y), float32(rowW), RowHeight, bg, false)

		// Index badge
		badge := float32(RowHeight) - 20
		vector.DrawFilledRect(dst, SectionPadding+10, float32(y)+10, badge, badge, ColorPrimary, false)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d", i+1), SectionPadding+14, int(y)+RowHeight/2-8)

		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("List item %d", i+1), SectionPadding+20+int(badge), int(y)+RowHeight/2-8)
	}
}
