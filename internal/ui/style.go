package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Rule is one "selector { key: value; ... }" block. Selectors are .class or #id only.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is an ordered rule list; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Style is the resolved look of one element.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Padding    int32
	FontSize   int32
}

// DefaultStyle is transparent with white 20px text and 4px padding.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{255, 255, 255, 255},
		Border:   color.RGBA{0, 0, 0, 255},
		Padding:  4,
		FontSize: 20,
	}
}

// ParseCSS parses the viewer's small CSS subset: .class and #id selectors with "key: value;"
// declarations and /* */ comments. Blocks with any other selector are skipped.
func ParseCSS(src string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripComments(src)
	for {
		head, body, ok := strings.Cut(rest, "{")
		if !ok {
			if strings.TrimSpace(head) != "" {
				return sheet, fmt.Errorf("parse css: trailing text %q", strings.TrimSpace(head))
			}
			return sheet, nil
		}
		decls, after, ok := strings.Cut(body, "}")
		if !ok {
			return sheet, fmt.Errorf("parse css: unclosed block for %q", strings.TrimSpace(head))
		}
		rest = after
		sel := strings.TrimSpace(head)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: parseDecls(decls)})
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		before, after, ok := strings.Cut(s, "/*")
		b.WriteString(before)
		if !ok {
			return b.String()
		}
		_, s, ok = strings.Cut(after, "*/")
		if !ok {
			return b.String()
		}
	}
}

func parseDecls(body string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(decl, ":")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		props[k] = strings.TrimSpace(v)
	}
	return props
}

// Resolve merges the rules matching class and id (in sheet order) over DefaultStyle.
func (s *Stylesheet) Resolve(class, id string) Style {
	out := DefaultStyle()
	if s == nil {
		return out
	}
	for _, r := range s.Rules {
		if (class != "" && r.Selector == "."+class) || (id != "" && r.Selector == "#"+id) {
			apply(&out, r.Props)
		}
	}
	return out
}

func apply(st *Style, props map[string]string) {
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				st.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				st.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				st.Border = c
				st.HasBorder = true
			}
		case "width":
			setPx(&st.Width, v)
		case "height":
			setPx(&st.Height, v)
		case "left":
			setPx(&st.Left, v)
		case "top":
			setPx(&st.Top, v)
		case "padding":
			setPx(&st.Padding, v)
		case "font-size":
			setPx(&st.FontSize, v)
		}
	}
}

func setPx(dst *int32, v string) {
	if n, ok := ParsePx(v); ok && n >= 0 {
		*dst = n
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// ParsePx parses an integer with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
