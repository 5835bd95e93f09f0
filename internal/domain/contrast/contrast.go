// Package contrast computes WCAG relative luminance and contrast ratios.
//
// Unparseable colors never fail: they are treated as luminance 0, so a
// ratio of exactly 1 between two nominally different inputs usually means
// one of them did not parse.
package contrast

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// WCAG thresholds.
const (
	NormalTextAA  = 4.5
	NormalTextAAA = 7.0
	LargeTextAA   = 3.0
	LargeTextAAA  = 4.5
	UIComponentAA = 3.0
)

var rgbFunc = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+%?\s*)?\)$`)

// ParseColor accepts #rrggbb, rrggbb, #rgb, rgb and rgb()/rgba() with
// integer channels.
func ParseColor(s string) (domain.RGB, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m := rgbFunc.FindStringSubmatch(s); m != nil {
		var ch [3]int
		for i := range ch {
			n, _ := strconv.Atoi(m[i+1])
			if n > 255 {
				return domain.RGB{}, false
			}
			ch[i] = n
		}
		return domain.RGB{R: ch[0], G: ch[1], B: ch[2]}, true
	}

	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return domain.RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return domain.RGB{}, false
	}
	return domain.RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}

func channel(c int) float64 {
	v := float64(c) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c domain.RGB) float64 {
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}

func luminanceOf(s string) float64 {
	c, ok := ParseColor(s)
	if !ok {
		return 0
	}
	return RelativeLuminance(c)
}

// Ratio returns the unrounded contrast ratio between a and b. It is
// symmetric in its arguments.
func Ratio(a, b string) float64 {
	la, lb := luminanceOf(a), luminanceOf(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// Evaluate applies the WCAG thresholds to an already computed ratio.
func Evaluate(ratio float64) domain.ContrastResult {
	return domain.ContrastResult{
		Ratio:         math.Round(ratio*100) / 100,
		NormalTextAA:  ratio >= NormalTextAA,
		NormalTextAAA: ratio >= NormalTextAAA,
		LargeTextAA:   ratio >= LargeTextAA,
		LargeTextAAA:  ratio >= LargeTextAAA,
		UIComponentAA: ratio >= UIComponentAA,
	}
}

// Check computes the ratio between fg and bg and evaluates every threshold.
func Check(fg, bg string) domain.ContrastResult {
	return Evaluate(Ratio(fg, bg))
}

// MeetsAA reports whether fg on bg passes AA for normal or large text.
func MeetsAA(fg, bg string, largeText bool) bool {
	r := Check(fg, bg)
	if largeText {
		return r.LargeTextAA
	}
	return r.NormalTextAA
}
