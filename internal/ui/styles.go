package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
)

// DataIdea palette, shared by the renderers, the browser and fang's help output.
var (
	ColorPrimary   = lipgloss.Color("#673AB7") // deep purple
	ColorSecondary = lipgloss.Color("#2196F3") // blue
	ColorSuccess   = lipgloss.Color("#4CAF50")
	ColorWarning   = lipgloss.Color("#FF9800")
	ColorError     = lipgloss.Color("#F44336")
	ColorHighlight = lipgloss.Color("#E0E0E0")

	ColorText     = lipgloss.Color("#FAFAFA")
	ColorTextDim  = lipgloss.Color("#9E9E9E")
	ColorTextMute = lipgloss.Color("#5A5A5A")
	ColorSurface  = lipgloss.Color("#1A1A1A")
)

// style renders through lipgloss unless plain mode is on.
type style struct {
	s lipgloss.Style
}

func (st style) Render(str string) string {
	if plain {
		return str
	}
	return st.s.Render(str)
}

func fg(c color.Color) style { return style{lipgloss.NewStyle().Foreground(c)} }

// panel draws a rounded border in the given colour.
func panel(c color.Color) style {
	return style{lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(0, 1)}
}

var (
	Bold      = style{lipgloss.NewStyle().Bold(true)}
	Dim       = fg(ColorTextDim)
	Muted     = fg(ColorTextMute)
	Success   = fg(ColorSuccess)
	Warning   = fg(ColorWarning)
	Error     = fg(ColorError)
	Primary   = fg(ColorPrimary)
	Secondary = fg(ColorSecondary)
	Highlight = style{lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)}

	Title         = style{lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)}
	Subtitle      = style{lipgloss.NewStyle().Foreground(ColorTextDim).Italic(true)}
	SectionHeader = style{lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)}

	// DetailBox frames the header of a dataset page.
	DetailBox  = panel(ColorPrimary)
	SuccessBox = panel(ColorSuccess)
	ErrorBox   = panel(ColorError)
)

func GetCheckMark() string { return Success.Render("✓") }
func GetCrossMark() string { return Error.Render("✗") }
func GetWarnMark() string  { return Warning.Render("⚠") }
func GetInfoMark() string  { return Secondary.Render("ℹ") }
func GetBullet() string    { return Muted.Render("•") }

// Badge renders text as a chip on the given hex background, e.g. a file type or a
// hosting provider colour. Plain mode prints [text].
func Badge(text, hex string) string {
	if plain {
		return "[" + text + "]"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(hex)).
		Bold(true).
		Padding(0, 1).
		Render(text)
}

// FormatKeyValue renders "key: value" with a dimmed key.
func FormatKeyValue(key, value string) string {
	return Dim.Render(key+": ") + value
}

// FormatStatus prefixes message with the mark for status (success, error, warning, info).
func FormatStatus(status, message string) string {
	mark := GetBullet()
	switch status {
	case "success":
		mark = GetCheckMark()
	case "error":
		mark = GetCrossMark()
	case "warning":
		mark = GetWarnMark()
	case "info":
		mark = GetInfoMark()
	}
	return mark + " " + message
}

// FangColorScheme maps the palette onto fang's help and error output.
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           ColorText,
		Title:          ColorPrimary,
		Description:    ColorTextDim,
		Codeblock:      c(lipgloss.Color("#E0E0E0"), ColorSurface),
		Program:        ColorSecondary,
		DimmedArgument: ColorTextMute,
		Comment:        ColorTextMute,
		Flag:           ColorSuccess,
		FlagDefault:    ColorTextDim,
		Command:        ColorPrimary,
		QuotedString:   ColorSecondary,
		Argument:       ColorText,
		Help:           ColorTextDim,
		Dash:           ColorTextMute,
		ErrorHeader:    [2]color.Color{ColorText, ColorError},
		ErrorDetails:   ColorError,
	}
}

// BannerASCII is printed above the root help.
const BannerASCII = `
 ____        _        ___    _
|  _ \  __ _| |_ __ _|_ _|__| | ___  __ _
| | | |/ _` + "`" + ` | __/ _` + "`" + ` || |/ _` + "`" + ` |/ _ \/ _` + "`" + ` |
| |_| | (_| | || (_| || | (_| |  __/ (_| |
|____/ \__,_|\__\__,_|___\__,_|\___|\__,_|
`

// RenderGradientBanner colours the banner in the secondary colour.
func RenderGradientBanner(banner string) string {
	return Secondary.Render(banner)
}
