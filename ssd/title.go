package ssd

// Justify is the title text alignment.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// TitleMeasurer measures a rendered title buffer's pixel width at the
// titlebar's current font/scale; the actual font shaping backend is an
// external collaborator, same boundary as theme.Decoder.
type TitleMeasurer interface {
	MeasureWidth(title string) int
}

// TitleLayout is the resolved geometry of the title text within the
// titlebar, after accounting for the left/right button groups and the
// requested justification.
type TitleLayout struct {
	X, Width  int
	Truncated bool
}

// LayoutTitle computes where the title text renders within a titlebar of
// the given width, with leftButtons/rightButtons pixels reserved on each
// side. Center justification tries to center over the whole titlebar
// first, falling back to centering within the available gap if the
// full-width centering would overlap a button group. Truncated reports
// when the measured title is wider than the available space, the
// re-render-with-ellipsis trigger.
func LayoutTitle(m TitleMeasurer, title string, titlebarWidth, leftButtons, rightButtons int, justify Justify) TitleLayout {
	avail := titlebarWidth - leftButtons - rightButtons
	if avail < 0 {
		avail = 0
	}
	textWidth := m.MeasureWidth(title)
	truncated := textWidth > avail
	if truncated {
		textWidth = avail
	}

	var x int
	switch justify {
	case JustifyLeft:
		x = leftButtons
	case JustifyRight:
		x = titlebarWidth - rightButtons - textWidth
	case JustifyCenter:
		fullCenter := (titlebarWidth - textWidth) / 2
		if fullCenter >= leftButtons && fullCenter+textWidth <= titlebarWidth-rightButtons {
			x = fullCenter
		} else {
			x = leftButtons + (avail-textWidth)/2
		}
	}
	if x < leftButtons {
		x = leftButtons
	}
	return TitleLayout{X: x, Width: textWidth, Truncated: truncated}
}

// VisibleButtons returns how many of n buttons fit in width pixels of
// buttonWidth each, hiding from the outside in as the titlebar narrows:
// the window-menu button is the last to be hidden on the left. Callers
// order their left-group slice with the window-menu button last so a
// simple truncation from the front implements that rule.
func VisibleButtons(n, buttonWidth, width int) int {
	if buttonWidth <= 0 {
		return n
	}
	fit := width / buttonWidth
	if fit > n {
		fit = n
	}
	if fit < 0 {
		fit = 0
	}
	return fit
}
