package composer

// View maps between the pixels of the piano roll and GridPoints. The roll
// shows Height/ViewRows rows of pitches and as many columns of ticks as fit
// in Width, both square cells. Scroll is the tick at the left edge and VScroll
// is the pitch at the bottom edge.
type View struct {
	Width, Height   float64
	Scroll, VScroll float64
}

const (
	// ViewRows is how many pitches fit in the height of the view.
	ViewRows = 25
	// DefaultVScroll puts the reference pitch close to the middle of the
	// view.
	DefaultVScroll = 54
	// wheelSpeed converts wheel deltas to ticks or pitches.
	wheelSpeed = 0.05
)

func NewView(width, height float64) View {
	return View{Width: width, Height: height, VScroll: DefaultVScroll}
}

// Scale returns the size of one cell in pixels.
func (v View) Scale() float64 { return v.Height / ViewRows }

// TimeAt returns the playback position at the x coordinate, e.g. for seeking.
func (v View) TimeAt(x float64) float64 {
	s := v.Scale()
	if s <= 0 {
		return v.Scroll
	}
	return x/s + v.Scroll
}

// GridAt returns the GridPoint under the pixel (x, y), y growing downwards.
func (v View) GridAt(x, y float64) GridPoint {
	s := v.Scale()
	if s <= 0 {
		return GridPoint{Time: v.Scroll, Pitch: v.VScroll}
	}
	return GridPoint{Time: x/s + v.Scroll, Pitch: (v.Height-y)/s + v.VScroll}
}

// Pixel returns the pixel of the bottom left corner of the cell at (time,
// pitch); it is the inverse of GridAt.
func (v View) Pixel(p GridPoint) (x, y float64) {
	s := v.Scale()
	return (p.Time - v.Scroll) * s, v.Height - (p.Pitch-v.VScroll)*s
}

// ScrollBy scrolls the view by wheel deltas: dy scrolls time and dx scrolls
// pitch. The view never scrolls before tick zero.
func (v *View) ScrollBy(dx, dy float64) {
	v.VScroll -= dx * wheelSpeed
	v.Scroll = max(v.Scroll-dy*wheelSpeed, 0)
}

// Reset scrolls back to the start of the project and the default pitch.
func (v *View) Reset() {
	v.Scroll = 0
	v.VScroll = DefaultVScroll
}
