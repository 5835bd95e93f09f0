package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

// Text wraps raw component source with the textual probes shared by the
// analyzer and the checker. It never parses the source; every probe is a
// pattern match and can over- or under-report.
type Text struct {
	src   string
	lower string
}

// NewText prepares src for probing.
func NewText(src string) Text {
	return Text{src: src, lower: strings.ToLower(src)}
}

// String returns the wrapped source.
func (t Text) String() string { return t.src }

var (
	labelAttrRe     = regexp.MustCompile(`\baria-label(?:ledby)?\s*=`)
	labelForRe      = regexp.MustCompile(`\b(?:htmlFor|for)\s*=`)
	labelElementRe  = regexp.MustCompile(`<label[\s>]`)
	altAttrRe       = regexp.MustCompile(`\balt\s*=`)
	nativeRe        = regexp.MustCompile(`<(?:button|input|select|textarea|nav)\b`)
	roleAttrRe      = regexp.MustCompile(`\brole\s*=\s*\{?\s*["'\x60]([a-z]+)`)
	clickRe         = regexp.MustCompile(`\bonClick\b|@click\b|\bv-on:click\b|\bon:click\b|\(click\)|addEventListener\(\s*["']click["']`)
	keyDownRe       = regexp.MustCompile(`(?i)\bonkey(?:down|up|press)\b|@key(?:down|up)\b|v-on:key(?:down|up)\b|on:key(?:down|up)\b|\(key(?:down|up)[.)]|addEventListener\(\s*["']key(?:down|up)["']`)
	tabIndexRe      = regexp.MustCompile(`(?i)\btabindex\s*=\s*\{?\s*["']?(-?\d+)`)
	anyTabIndexRe   = regexp.MustCompile(`(?i)\btabindex\b`)
	focusStyleRe    = regexp.MustCompile(`(?i):focus\b|\bfocus:|focus-visible|focus-within|focusvisible|\bfocus-ring\b`)
	focusHandlerRe  = regexp.MustCompile(`\bonFocus\b|@focus\b|on:focus\b|\(focus\)|addEventListener\(\s*["']focus(?:in)?["']`)
	hoverRe         = regexp.MustCompile(`(?i)\bonmouse(?:enter|over)\b|@mouse(?:enter|over)\b|on:mouse(?:enter|over)\b|\(mouse(?:enter|over)\)`)
	ariaStateRe     = regexp.MustCompile(`\baria-(?:expanded|selected|checked|pressed|disabled|hidden|invalid|current)\b`)
	outlineNoneRe   = regexp.MustCompile(`(?i)outline\s*:\s*["']?(?:none|0)\b|\boutline-none\b|outline:\s*["']none`)
	placeholderRe   = regexp.MustCompile(`\bplaceholder\s*=`)
	hrefRe          = regexp.MustCompile(`\bhref\s*=`)
	anchorRe        = regexp.MustCompile(`<a[\s>]`)
	blankTargetRe   = regexp.MustCompile(`\btarget\s*=\s*\{?\s*["']_blank`)
	imgRe           = regexp.MustCompile(`<img\b`)
	setTimeoutRe    = regexp.MustCompile(`\bsetTimeout\s*\(`)
	tableHeaderRe   = regexp.MustCompile(`<th\b|\brole\s*=\s*["'](?:columnheader|rowheader)["']`)
	liveRegionRe    = regexp.MustCompile(`\baria-live\s*=`)
	focusTrapRe     = regexp.MustCompile(`(?i)focus-?trap|trapfocus|\binert\b|showmodal\(|<dialog\b`)
	colorDeclRe     = regexp.MustCompile(`(?i)(?:^|[\s;{"'])color\s*:\s*["']?(#[0-9a-f]{3,6}\b|rgba?\([^)]*\))`)
	backgroundDecl  = regexp.MustCompile(`(?i)background(?:-color|color)?\s*:\s*["']?(#[0-9a-f]{3,6}\b|rgba?\([^)]*\))`)
	interactiveRole = map[string]bool{
		"button": true, "link": true, "checkbox": true, "radio": true, "radiogroup": true,
		"switch": true, "tab": true, "tablist": true, "tabpanel": true, "dialog": true,
		"alertdialog": true, "menu": true, "menubar": true, "menuitem": true, "listbox": true,
		"option": true, "combobox": true, "slider": true, "spinbutton": true, "textbox": true,
		"searchbox": true, "progressbar": true, "tooltip": true, "navigation": true,
		"alert": true, "status": true, "grid": true, "table": true, "treeitem": true, "group": true,
	}
)

// HasAccessibleNameAttr reports an aria-label, aria-labelledby, label
// association or alt attribute.
func (t Text) HasAccessibleNameAttr() bool {
	return labelAttrRe.MatchString(t.src) || labelForRe.MatchString(t.src) ||
		labelElementRe.MatchString(t.src) || altAttrRe.MatchString(t.src)
}

// HasAriaLabel reports aria-label or aria-labelledby.
func (t Text) HasAriaLabel() bool { return labelAttrRe.MatchString(t.src) }

// HasLabelElement reports a <label> element or an htmlFor/for association.
func (t Text) HasLabelElement() bool {
	return labelElementRe.MatchString(t.src) || labelForRe.MatchString(t.src)
}

// HasNativeInteractive reports a lowercase native interactive tag. Capitalized
// tags are user components and do not count.
func (t Text) HasNativeInteractive() bool { return nativeRe.MatchString(t.src) }

// HasNativeTag reports a literal <tag opening.
func (t Text) HasNativeTag(tag string) bool {
	open := "<" + tag
	for rest := t.src; ; {
		i := strings.Index(rest, open)
		if i < 0 {
			return false
		}
		rest = rest[i+len(open):]
		if rest == "" || !isNameByte(rest[0]) {
			return true
		}
	}
}

func isNameByte(b byte) bool {
	return b == '-' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// Roles returns the role attribute values in order of appearance.
func (t Text) Roles() []string {
	var out []string
	for _, m := range roleAttrRe.FindAllStringSubmatch(t.src, -1) {
		out = append(out, m[1])
	}
	return out
}

// HasRole reports whether any of roles appears as a role attribute value.
func (t Text) HasRole(roles ...string) bool {
	for _, r := range t.Roles() {
		for _, want := range roles {
			if r == want {
				return true
			}
		}
	}
	return false
}

// HasInteractiveRole reports a role attribute naming an interactive role.
func (t Text) HasInteractiveRole() bool {
	for _, r := range t.Roles() {
		if interactiveRole[r] {
			return true
		}
	}
	return false
}

// HasAttr reports an attribute written as name= or name={...}.
func (t Text) HasAttr(name string) bool {
	return strings.Contains(t.src, name+"=") || strings.Contains(t.src, name+" =")
}

// Mentions reports a case-insensitive substring match.
func (t Text) Mentions(word string) bool {
	return strings.Contains(t.lower, strings.ToLower(word))
}

// HasClickBinding reports a click handler in JSX, Vue, Svelte, Angular or DOM form.
func (t Text) HasClickBinding() bool { return clickRe.MatchString(t.src) }

// HasKeyDownBinding reports a key handler.
func (t Text) HasKeyDownBinding() bool { return keyDownRe.MatchString(t.src) }

// HasTabIndex reports any tabindex attribute.
func (t Text) HasTabIndex() bool { return anyTabIndexRe.MatchString(t.src) }

// HasPositiveTabIndex reports a literal tabindex greater than zero.
func (t Text) HasPositiveTabIndex() bool {
	for _, m := range tabIndexRe.FindAllStringSubmatch(t.src, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return true
		}
	}
	return false
}

// HasFocusStyle reports a focus-state styling marker.
func (t Text) HasFocusStyle() bool { return focusStyleRe.MatchString(t.src) }

// HasFocusHandler reports an onFocus-style binding.
func (t Text) HasFocusHandler() bool { return focusHandlerRe.MatchString(t.src) }

// HasHoverBinding reports a mouseenter/mouseover binding.
func (t Text) HasHoverBinding() bool { return hoverRe.MatchString(t.src) }

// HasAriaState reports any ARIA state attribute.
func (t Text) HasAriaState() bool { return ariaStateRe.MatchString(t.src) }

// RemovesOutline reports outline suppression.
func (t Text) RemovesOutline() bool { return outlineNoneRe.MatchString(t.src) }

// HasPlaceholder reports a placeholder attribute.
func (t Text) HasPlaceholder() bool { return placeholderRe.MatchString(t.src) }

// HasAnchor reports an <a> element.
func (t Text) HasAnchor() bool { return anchorRe.MatchString(t.src) }

// HasHref reports an href attribute.
func (t Text) HasHref() bool { return hrefRe.MatchString(t.src) }

// OpensNewWindow reports target="_blank".
func (t Text) OpensNewWindow() bool { return blankTargetRe.MatchString(t.src) }

// HasImage reports an <img> element.
func (t Text) HasImage() bool { return imgRe.MatchString(t.src) }

// HasAltText reports an alt attribute.
func (t Text) HasAltText() bool { return altAttrRe.MatchString(t.src) }

// HasTableHeaders reports <th> cells or header roles.
func (t Text) HasTableHeaders() bool { return tableHeaderRe.MatchString(t.src) }

// HasLiveRegion reports aria-live or a live role.
func (t Text) HasLiveRegion() bool {
	return liveRegionRe.MatchString(t.src) || t.HasRole("alert", "status", "log")
}

// HasFocusTrap reports a focus containment marker.
func (t Text) HasFocusTrap() bool { return focusTrapRe.MatchString(t.src) }

// ShortestTimeout returns the smallest literal setTimeout delay in
// milliseconds. The delay is the second top-level argument of each call;
// calls whose delay is not a number literal are ignored.
func (t Text) ShortestTimeout() (int, bool) {
	best, found := 0, false
	for _, loc := range setTimeoutRe.FindAllStringIndex(t.src, -1) {
		args, ok := callArgs(t.src[loc[1]:])
		if !ok || len(args) < 2 {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(args[1]), "_", ""))
		if err != nil {
			continue
		}
		if !found || n < best {
			best, found = n, true
		}
	}
	return best, found
}

// callArgs splits the argument list of a call whose opening parenthesis
// ends just before s. Nested brackets and quoted strings are skipped, so
// only top-level commas separate arguments. It reports false when the
// closing parenthesis is missing.
func callArgs(s string) ([]string, bool) {
	var (
		args  []string
		depth int
		start int
		quote byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
				continue
			}
			if c != ')' {
				return nil, false
			}
			return append(args, s[start:i]), true
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	return nil, false
}

// ColorPair returns the first literal foreground and background colors
// declared in the source.
func (t Text) ColorPair() (fg, bg string, ok bool) {
	fm := colorDeclRe.FindStringSubmatch(t.src)
	bm := backgroundDecl.FindStringSubmatch(t.src)
	if fm == nil || bm == nil {
		return "", "", false
	}
	return fm[1], bm[1], true
}
