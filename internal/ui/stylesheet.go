package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // ".panel" or "#size"
	Props    map[string]string // "background" -> "#0f172acc"
}

// Stylesheet is a list of rules (later rules override earlier ones).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// Right/Bottom, when >= 0, anchor the node to the right or bottom screen edge instead of Left/Top.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Right      int32
	Bottom     int32
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle returns a transparent, borderless style with white text.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Right:      -1,
		Bottom:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
	}
}

// ParseCSS parses a primitive CSS file: selectors .class or #id and blocks of "key: value;".
// No combinators, no @rules. Blocks with other selectors are skipped.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripCSSComments(content)
	for {
		rule, rest, ok := parseOneRule(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rule)
		content = rest
	}
	return sheet, nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j < 0 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

// parseOneRule finds the next "selector { ... }" and returns the rule and the rest of the string.
func parseOneRule(s string) (Rule, string, bool) {
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			return Rule{}, "", false
		}
		close := strings.Index(s[open:], "}")
		if close == -1 {
			return Rule{}, "", false
		}
		close += open
		selector := strings.TrimSpace(s[:open])
		body := s[open+1 : close]
		s = s[close+1:]
		if len(selector) < 2 || (selector[0] != '.' && selector[0] != '#') {
			continue
		}
		return Rule{Selector: selector, Props: parseDeclarations(body)}, s, true
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}

// Matches reports whether the rule's selector names the node's class or id.
func (r Rule) Matches(n *Node) bool {
	switch r.Selector[0] {
	case '.':
		return n.Class != "" && n.Class == r.Selector[1:]
	case '#':
		return n.ID != "" && n.ID == r.Selector[1:]
	}
	return false
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Returns rl.Black and false on parse error.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return rl.Black, false
		}
	}
	pair := func(i int) uint8 {
		hi, _ := hexDigit(hex[i])
		lo, _ := hexDigit(hex[i+1])
		return hi<<4 | lo
	}
	switch len(hex) {
	case 3:
		r, _ := hexDigit(hex[0])
		g, _ := hexDigit(hex[1])
		b, _ := hexDigit(hex[2])
		return rl.NewColor(r*17, g*17, b*17, 255), true
	case 6:
		return rl.NewColor(pair(0), pair(2), pair(4), 255), true
	case 8:
		return rl.NewColor(pair(0), pair(2), pair(4), pair(6)), true
	}
	return rl.Black, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top":
			if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "right":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Right = n
			}
		case "bottom":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Bottom = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
