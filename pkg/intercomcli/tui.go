package intercomcli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for the TUI, plus the three VU zone colors
// a level meter bar is painted in.
type Theme struct {
	Primary lipgloss.Color // Main accent color
	Dim     lipgloss.Color // Dimmed/help text color
	VUOK    lipgloss.Color // Bar color below the warn threshold
	VUWarn  lipgloss.Color // Bar color between warn and hot thresholds
	VUHot   lipgloss.Color // Bar color at or above the hot threshold
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
	VUOK:    lipgloss.Color("#00ff9f"),
	VUWarn:  lipgloss.Color("#ffd166"),
	VUHot:   lipgloss.Color("#ff5c5c"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
	VUOK   lipgloss.Style
	VUWarn lipgloss.Style
	VUHot  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Label:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Border: lipgloss.NewStyle().Foreground(t.Primary),
		Help:   lipgloss.NewStyle().Foreground(t.Dim),
		VUOK:   lipgloss.NewStyle().Foreground(t.VUOK),
		VUWarn: lipgloss.NewStyle().Foreground(t.VUWarn),
		VUHot:  lipgloss.NewStyle().Foreground(t.VUHot),
	}
}

// VU zone thresholds in dBFS: below warnDB the bar renders in VUOK, between
// warnDB and hotDB in VUWarn, at or above hotDB in VUHot. These mirror
// typical broadcast-console metering ballistics (green/yellow/red) rather
// than any generic progress-bar convention.
const (
	vuWarnDB = -12.0
	vuHotDB  = -3.0
	vuFloor  = -60.0 // bars below this read as empty, matching a console's practical noise floor
)

// VUBar renders a dBFS reading as a fixed-width, color-zoned level meter bar,
// e.g. "[████████░░░░░░░░] -30.0 dB". db is clamped to [vuFloor, 0] before
// filling the bar; values above 0 dBFS (not produced by the core, whose
// channel levels are post-limiter and whose tablet levels come from PCM16
// input) fill the bar completely.
func VUBar(s Styles, db float64, width int) string {
	if width < 1 {
		width = 1
	}
	clamped := db
	if clamped < vuFloor {
		clamped = vuFloor
	}
	if clamped > 0 {
		clamped = 0
	}
	frac := (clamped - vuFloor) / (0 - vuFloor)
	filled := int(frac*float64(width) + 0.5)

	style := s.VUOK
	switch {
	case db >= vuHotDB:
		style = s.VUHot
	case db >= vuWarnDB:
		style = s.VUWarn
	}

	bar := style.Render(strings.Repeat("█", filled)) + s.Help.Render(strings.Repeat("░", width-filled))
	return "[" + bar + "] " + FormatDB(db)
}

// Section represents a labeled section with content.
type Section struct {
	Label   string
	Content func() []string // Dynamic content getter
}

// Frame renders a complete TUI frame with title, sections, and help text.
type Frame struct {
	Styles   Styles
	Title    string
	Status   string
	Sections []Section
	Help     string
}

// Render renders the frame to a string.
func (f Frame) Render(width, height int) string {
	if width == 0 || height == 0 {
		return "Loading..."
	}

	bc := f.Styles.Border
	maxContentWidth := width - 4

	var lines []string

	// Top border
	lines = append(lines, bc.Render("╭"+strings.Repeat("─", width-2)+"╮"))

	// Title line: │ title status    │
	// Width: │(1) + space(1) + title + space(1) + status + padding + space(1) + │(1) = width
	title := f.Styles.Title.Render(f.Title)
	status := f.Styles.Help.Render("[" + f.Status + "]")
	padding := max(0, width-5-lipgloss.Width(title)-lipgloss.Width(status))
	titleLine := bc.Render("│") + " " + title + " " + status +
		strings.Repeat(" ", padding) + " " + bc.Render("│")
	lines = append(lines, titleLine)

	// Empty line after title for spacing
	emptyLine := bc.Render("│") + strings.Repeat(" ", width-2) + bc.Render("│")
	lines = append(lines, emptyLine)

	// Calculate section heights
	numSections := len(f.Sections)
	if numSections == 0 {
		numSections = 1
	}
	// Available: total - top(1) - title(1) - empty(1) - sections*label(1) - bottom(1) - help(1)
	availableHeight := height - 5 - numSections
	sectionHeight := max(availableHeight/numSections, 2)

	// Render each section
	for _, sec := range f.Sections {
		lines = append(lines, f.renderSection(bc, sec.Label, sec.Content(), sectionHeight, width, maxContentWidth)...)
	}

	// Bottom border
	lines = append(lines, bc.Render("╰"+strings.Repeat("─", width-2)+"╯"))

	// Help line
	lines = append(lines, f.Styles.Help.Render(f.Help))

	return strings.Join(lines, "\n")
}

// renderSection renders a single section with embedded label.
func (f Frame) renderSection(bc lipgloss.Style, label string, content []string, height, width, maxContentWidth int) []string {
	var lines []string

	// Separator with embedded label: ├─Label────────┤
	// Width: ├(1) + ─(1) + labelText(?) + ─...(padding) + ┤(1) = width
	labelText := f.Styles.Label.Render(label)
	padding := max(0, width-3-lipgloss.Width(labelText))
	labelSep := bc.Render("├") + bc.Render("─") + labelText +
		bc.Render(strings.Repeat("─", padding)) + bc.Render("┤")
	lines = append(lines, labelSep)

	// Content lines (show last N lines)
	startIdx := 0
	if len(content) > height {
		startIdx = len(content) - height
	}

	for i := 0; i < height; i++ {
		text := ""
		idx := startIdx + i
		if idx < len(content) {
			text = content[idx]
		}
		if maxContentWidth > 1 && lipgloss.Width(text) > maxContentWidth {
			text = truncateString(text, maxContentWidth-1) + "…"
		}
		line := bc.Render("│") + " " + text +
			strings.Repeat(" ", max(0, maxContentWidth-lipgloss.Width(text))) + " " + bc.Render("│")
		lines = append(lines, line)
	}

	return lines
}

// truncateString safely truncates a string to the given width,
// handling multi-byte characters correctly.
func truncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	currentWidth := 0
	for i, r := range runes {
		w := lipgloss.Width(string(r))
		if currentWidth+w > width {
			return string(runes[:i])
		}
		currentWidth += w
	}
	return s
}
