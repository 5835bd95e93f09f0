package analysis_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_ClickableDivHasNoSignals(t *testing.T) {
	a := analysis.Analyze("Button", `<div onClick={handleClick}>Save</div>`)

	assert.Equal(t, "Button", a.Component)
	assert.False(t, a.HasAccessibleName)
	assert.False(t, a.HasSemanticRole)
	assert.False(t, a.HasKeyboardSupport)
	assert.False(t, a.HasFocusIndicator)
	assert.False(t, a.HasAriaStates)
	assert.Len(t, a.Suggestions, 5)
	assert.Empty(t, a.MissingAriaAttributes)
}

func TestAnalyze_AccessibleButton(t *testing.T) {
	src := `<button type="button" aria-label="Save" className="focus-visible:ring-2" onClick={save}>Save</button>`
	a := analysis.Analyze("Button", src)

	assert.True(t, a.HasAccessibleName)
	assert.True(t, a.HasSemanticRole)
	assert.True(t, a.HasFocusIndicator)
	assert.False(t, a.HasKeyboardSupport)
}

func TestAnalyze_SignalFamilies(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, src string)
	}{
		{"labelledby names", `<div aria-labelledby="title">`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Modal", src).HasAccessibleName)
		}},
		{"label element names", `<label htmlFor="email">Email</label>`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Input", src).HasAccessibleName)
		}},
		{"alt names", `<img src={a} alt="Logo" />`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Image", src).HasAccessibleName)
		}},
		{"role attribute", `<div role="tablist">`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Tabs", src).HasSemanticRole)
		}},
		{"non-interactive role", `<div role="presentation">`, func(t *testing.T, src string) {
			assert.False(t, analysis.Analyze("Tabs", src).HasSemanticRole)
		}},
		{"capitalized tag is a user component", `<Button onClick={x}>Go</Button>`, func(t *testing.T, src string) {
			assert.False(t, analysis.Analyze("Button", src).HasSemanticRole)
		}},
		{"keydown binding", `<div onKeyDown={onKey}>`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Tabs", src).HasKeyboardSupport)
		}},
		{"vue keydown binding", `<div @keydown.enter="open">`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Tabs", src).HasKeyboardSupport)
		}},
		{"tabindex counts as keyboard", `<div tabIndex={0}>`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Tabs", src).HasKeyboardSupport)
		}},
		{"css focus selector", `.btn:focus { outline: 2px solid }`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Button", src).HasFocusIndicator)
		}},
		{"aria state", `<button aria-expanded={open}>`, func(t *testing.T, src string) {
			assert.True(t, analysis.Analyze("Accordion", src).HasAriaStates)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) { tt.check(t, tt.src) })
	}
}

func TestAnalyze_MissingAriaPerComponent(t *testing.T) {
	tests := []struct {
		component string
		src       string
		want      []string
	}{
		{"Tabs", `<div role="tablist"><button role="tab">A</button></div>`, []string{"aria-controls", "aria-selected"}},
		{"Tabs", `<button role="tab" aria-selected={a} aria-controls="p1">A</button>`, nil},
		{"Modal", `<div role="dialog">`, []string{"aria-modal", "aria-labelledby"}},
		{"Dropdown", `<button aria-expanded={open}>`, []string{"aria-haspopup"}},
		{"Input", `<input id="e" />`, []string{"aria-describedby"}},
		{"Input", `<input id="e" />{error && <p>{error}</p>}`, []string{"aria-describedby", "aria-invalid"}},
		{"Checkbox", `<input type="checkbox" />`, nil},
		{"Checkbox", `<div role="checkbox" />`, []string{"aria-checked"}},
		{"Slider", `<input type="range" />`, nil},
		{"Slider", `<div role="slider" />`, []string{"aria-valuenow", "aria-valuemin", "aria-valuemax"}},
		{"Progress", `<progress value={3} max={10} />`, nil},
		{"Select", `<select id="c" />`, nil},
		{"Select", `<div role="combobox" />`, []string{"aria-expanded"}},
		{"Navigation", `<nav>`, []string{"aria-current"}},
		{"Button", `<button onClick={toggle}>Bold</button>`, []string{"aria-pressed"}},
		{"Button", `<button onClick={save}>Save</button>`, nil},
		{"Alert", `<div role="alert">`, nil},
		{"Toast", `<div className="toast">`, []string{"aria-live"}},
		{"Carousel", `<div>`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			a := analysis.Analyze(tt.component, tt.src)
			assert.Equal(t, tt.want, a.MissingAriaAttributes)
		})
	}
}

func TestAnalyze_NoSuggestionsForStaticOrUnknownTypes(t *testing.T) {
	assert.Empty(t, analysis.Analyze("Image", `<img src={x} />`).Suggestions)
	assert.Empty(t, analysis.Analyze("NoSuchComponent", `<div/>`).Suggestions)
	assert.False(t, analysis.IsInteractive("Table"))
	assert.True(t, analysis.IsInteractive("Tabs"))
}

func TestAnalyze_Deterministic(t *testing.T) {
	src := `<div role="dialog" onKeyDown={k}><input placeholder="Name" /></div>`
	first := analysis.Analyze("Modal", src)
	for range 5 {
		require.Equal(t, first, analysis.Analyze("Modal", src))
	}
}
