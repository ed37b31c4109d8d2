package tui

const (
	defaultWidth = 80

	// leftShare is the fraction of the width given to the left column
	leftShare = 0.6

	maxNetworks = 2
	nameWidth   = 25
)

// columnWidths splits the terminal width into left and right columns
func (m Model) columnWidths() (left, right int) {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	left = int(float64(width) * leftShare)
	right = width - left
	return left, right
}

// innerWidth returns the usable content width of a panel
func innerWidth(panelWidth int) int {
	// border + padding on both sides
	w := panelWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}

// barWidth fits a progress bar into a panel next to its label and percentage
func barWidth(panelWidth int) int {
	// " LABEL  : [ " + " ] 100%"
	w := innerWidth(panelWidth) - 19
	if w < 10 {
		w = 10
	}
	if w > 40 {
		w = 40
	}
	return w
}
