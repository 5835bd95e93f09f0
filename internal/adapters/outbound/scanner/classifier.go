package scanner

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

// aliases maps common file-name vocabulary onto catalog component types.
var aliases = map[string]string{
	"dialog":       "Modal",
	"menu":         "Dropdown",
	"menubutton":   "Dropdown",
	"popover":      "Dropdown",
	"nav":          "Navigation",
	"navbar":       "Navigation",
	"sidebar":      "Navigation",
	"tab":          "Tabs",
	"tablist":      "Tabs",
	"toggle":       "Switch",
	"textfield":    "Input",
	"textinput":    "Input",
	"textarea":     "Input",
	"field":        "Input",
	"combobox":     "Select",
	"listbox":      "Select",
	"radio":        "RadioGroup",
	"img":          "Image",
	"picture":      "Image",
	"snackbar":     "Toast",
	"notification": "Toast",
	"banner":       "Alert",
	"callout":      "Alert",
	"progressbar":  "Progress",
	"meter":        "Progress",
	"range":        "Slider",
	"pager":        "Pagination",
	"breadcrumbs":  "Breadcrumb",
	"datatable":    "Table",
	"grid":         "Table",
	"collapse":     "Accordion",
	"disclosure":   "Accordion",
	"hint":         "Tooltip",
	"anchor":       "Link",
}

// Classifier implements domain.ComponentClassifier from file names:
// PrimaryButton.tsx is a Button, settings-tabs.vue is Tabs.
type Classifier struct{}

func NewClassifier() *Classifier { return &Classifier{} }

// Classify splits the file's base name into words and matches the longest
// trailing run of words against the rule catalog and its aliases. Files
// named index use their directory name. Unmatched files keep their
// PascalCase base name as the component type.
func (c *Classifier) Classify(relPath string) string {
	base := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	if strings.EqualFold(base, "index") {
		dir := filepath.Base(filepath.Dir(relPath))
		if dir != "." && dir != string(filepath.Separator) {
			base = dir
		}
	}

	words := splitWords(base)
	if len(words) == 0 {
		return ""
	}
	for i := range words {
		candidate := strings.Join(words[i:], "")
		if name, ok := rules.Lookup(candidate); ok {
			return name
		}
		if name, ok := aliases[strings.ToLower(candidate)]; ok {
			return name
		}
	}
	return strings.Join(words, "")
}

// splitWords breaks kebab, snake and camel case names into title-cased words.
func splitWords(name string) []string {
	var words []string
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	for _, p := range parts {
		for _, w := range camelcase.Split(p) {
			r := []rune(w)
			if len(r) == 0 || !unicode.IsLetter(r[0]) {
				continue
			}
			r[0] = unicode.ToUpper(r[0])
			words = append(words, string(r))
		}
	}
	return words
}
