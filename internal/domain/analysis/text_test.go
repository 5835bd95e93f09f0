package analysis_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain/analysis"
	"github.com/stretchr/testify/assert"
)

func TestText_PositiveTabIndex(t *testing.T) {
	assert.True(t, analysis.NewText(`<div tabIndex={3}>`).HasPositiveTabIndex())
	assert.True(t, analysis.NewText(`<div tabindex="1">`).HasPositiveTabIndex())
	assert.False(t, analysis.NewText(`<div tabIndex={0}>`).HasPositiveTabIndex())
	assert.False(t, analysis.NewText(`<div tabIndex={-1}>`).HasPositiveTabIndex())
}

func TestText_HasNativeTag(t *testing.T) {
	txt := analysis.NewText(`<progress-ring /><Progress />`)
	assert.False(t, txt.HasNativeTag("progress"))
	assert.True(t, analysis.NewText(`<progress value={1} />`).HasNativeTag("progress"))
	assert.True(t, analysis.NewText(`<dialog>`).HasNativeTag("dialog"))
}

func TestText_ShortestTimeout(t *testing.T) {
	src := `setTimeout(() => { hide(); }, 8000)
setTimeout(close, 2500)`
	ms, ok := analysis.NewText(src).ShortestTimeout()
	assert.True(t, ok)
	assert.Equal(t, 2500, ms)

	_, ok = analysis.NewText(`setTimeout(close, DELAY)`).ShortestTimeout()
	assert.False(t, ok)
}

func TestText_ShortestTimeout_ReadsOnlyTheDelayArgument(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		wantMs int
		wantOK bool
	}{
		{"nested call arguments", `setTimeout(() => dismiss(toastId, 0), 8000)`, 8000, true},
		{"non-literal delay then unrelated call", "setTimeout(close, DELAY)\nsetWidth(w, 200)", 0, false},
		{"extra callback arguments", `setTimeout(hide, 6000, id, 1)`, 6000, true},
		{"comma inside a string", `setTimeout(() => log("a, 1)"), 7000)`, 7000, true},
		{"numeric separator", `window.setTimeout(hide, 10_000)`, 10000, true},
		{"unterminated call", `setTimeout(hide, 300`, 0, false},
		{"smallest of several", "setTimeout(() => { a(1, 2) }, 9000)\nsetTimeout(b, 4000)", 4000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, ok := analysis.NewText(tt.src).ShortestTimeout()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMs, ms)
		})
	}
}

func TestText_ColorPair(t *testing.T) {
	fg, bg, ok := analysis.NewText(`style={{ color: "#777", backgroundColor: "#fff" }}`).ColorPair()
	assert.True(t, ok)
	assert.Equal(t, "#777", fg)
	assert.Equal(t, "#fff", bg)

	fg, bg, ok = analysis.NewText(`.x { background-color: rgb(0, 0, 0); color: #ffffff; }`).ColorPair()
	assert.True(t, ok)
	assert.Equal(t, "#ffffff", fg)
	assert.Equal(t, "rgb(0, 0, 0)", bg)

	_, _, ok = analysis.NewText(`.x { color: red; }`).ColorPair()
	assert.False(t, ok)
}

func TestText_Bindings(t *testing.T) {
	txt := analysis.NewText(`<span onMouseEnter={show} onFocus={show} />`)
	assert.True(t, txt.HasHoverBinding())
	assert.True(t, txt.HasFocusHandler())
	assert.False(t, txt.HasClickBinding())

	assert.True(t, analysis.NewText(`<div (click)="go()">`).HasClickBinding())
	assert.True(t, analysis.NewText(`el.addEventListener("keydown", fn)`).HasKeyDownBinding())
}

func TestText_OutlineAndLinks(t *testing.T) {
	assert.True(t, analysis.NewText(`className="outline-none"`).RemovesOutline())
	assert.True(t, analysis.NewText(`a { outline: none; }`).RemovesOutline())
	assert.False(t, analysis.NewText(`outline: 2px solid blue`).RemovesOutline())

	link := analysis.NewText(`<a href="/x" target="_blank">X</a>`)
	assert.True(t, link.HasAnchor())
	assert.True(t, link.HasHref())
	assert.True(t, link.OpensNewWindow())
}
