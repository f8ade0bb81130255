package renderer

// Viewport tracks which document lines are visible.
type Viewport struct {
	// topLine is the first visible line.
	topLine int

	// height is the number of visible lines.
	height int

	// margin keeps the cursor this many lines from either edge when the
	// document allows it.
	margin int
}

// NewViewport creates a viewport with the given height and scroll margin.
// Height is clamped to a minimum of 1.
func NewViewport(height, margin int) *Viewport {
	v := &Viewport{margin: max(0, margin)}
	v.SetHeight(height)
	return v
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// Height returns the number of visible lines.
func (v *Viewport) Height() int {
	return v.height
}

// SetHeight resizes the viewport.
func (v *Viewport) SetHeight(height int) {
	v.height = max(1, height)
}

// BottomLine returns the last visible line.
func (v *Viewport) BottomLine() int {
	return v.topLine + v.height - 1
}

// IsVisible returns true if line is on screen.
func (v *Viewport) IsVisible(line int) bool {
	return line >= v.topLine && line <= v.BottomLine()
}

// effectiveMargin shrinks the margin on short viewports so that the
// cursor can always be placed.
func (v *Viewport) effectiveMargin() int {
	return min(v.margin, (v.height-1)/2)
}

// ScrollToReveal scrolls the minimum amount needed to show line with the
// margin applied. Returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(line int) bool {
	line = max(0, line)
	m := v.effectiveMargin()
	top := v.topLine

	if line < top+m {
		top = max(0, line-m)
	} else if line > v.BottomLine()-m {
		top = line - v.height + 1 + m
	}

	if top == v.topLine {
		return false
	}
	v.topLine = top
	return true
}

// Reset scrolls back to the first line.
func (v *Viewport) Reset() {
	v.topLine = 0
}
