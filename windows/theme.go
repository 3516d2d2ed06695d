package windows

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme is a teal accented theme with a denser table layout.
type CustomTheme struct{}

var _ fyne.Theme = (*CustomTheme)(nil)

var lightPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:       color.NRGBA{R: 0xf7, G: 0xf8, B: 0xf8, A: 0xff},
	theme.ColorNameButton:           color.NRGBA{R: 0xe0, G: 0xf2, B: 0xf1, A: 0xff},
	theme.ColorNamePrimary:          color.NRGBA{R: 0x00, G: 0x89, B: 0x7b, A: 0xff},
	theme.ColorNameHover:            color.NRGBA{R: 0xb2, G: 0xdf, B: 0xdb, A: 0xff},
	theme.ColorNameFocus:            color.NRGBA{R: 0x00, G: 0x69, B: 0x5c, A: 0xff},
	theme.ColorNameForeground:       color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff},
	theme.ColorNameInputBackground:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	theme.ColorNameSelection:        color.NRGBA{R: 0xb2, G: 0xdf, B: 0xdb, A: 0xff},
	theme.ColorNameHeaderBackground: color.NRGBA{R: 0xe8, G: 0xec, B: 0xec, A: 0xff},
}

var darkPalette = map[fyne.ThemeColorName]color.Color{
	theme.ColorNameBackground:       color.NRGBA{R: 0x1b, G: 0x1f, B: 0x21, A: 0xff},
	theme.ColorNameButton:           color.NRGBA{R: 0x26, G: 0x3a, B: 0x39, A: 0xff},
	theme.ColorNamePrimary:          color.NRGBA{R: 0x4d, G: 0xb6, B: 0xac, A: 0xff},
	theme.ColorNameHover:            color.NRGBA{R: 0x2e, G: 0x4d, B: 0x4a, A: 0xff},
	theme.ColorNameFocus:            color.NRGBA{R: 0x80, G: 0xcb, B: 0xc4, A: 0xff},
	theme.ColorNameForeground:       color.NRGBA{R: 0xe0, G: 0xe6, B: 0xe6, A: 0xff},
	theme.ColorNameInputBackground:  color.NRGBA{R: 0x26, G: 0x2b, B: 0x2d, A: 0xff},
	theme.ColorNameSelection:        color.NRGBA{R: 0x00, G: 0x79, B: 0x6b, A: 0xff},
	theme.ColorNameHeaderBackground: color.NRGBA{R: 0x22, G: 0x28, B: 0x2a, A: 0xff},
}

func (m CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	palette := darkPalette
	if variant == theme.VariantLight {
		palette = lightPalette
	}
	if c, ok := palette[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (m CustomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m CustomTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameSeparatorThickness:
		return 1
	}
	return theme.DefaultTheme().Size(name)
}
