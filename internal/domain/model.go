package domain

import (
	"fmt"
	"strings"
	"time"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// DefaultLevel is the level used when a caller does not request one.
const DefaultLevel = LevelAA

// ValidLevels enumerates all conformance levels from lowest to highest.
var ValidLevels = []Level{LevelA, LevelAA, LevelAAA}

// ParseLevel converts a user-supplied level string (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelA:
		return LevelA, nil
	case LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	}
	return "", fmt.Errorf("%w: unknown conformance level %q (valid: A, AA, AAA)", ErrInvalidArgument, s)
}

func (l Level) rank() int {
	switch l {
	case LevelA:
		return 1
	case LevelAA:
		return 2
	case LevelAAA:
		return 3
	default:
		return 0
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool { return l.rank() > 0 }

// Includes reports whether conforming at l implies conforming at other.
// AAA includes everything, AA includes A and AA, A includes only A.
func (l Level) Includes(other Level) bool {
	return other.Valid() && other.rank() <= l.rank()
}

// Principle is one of the four WCAG principles.
type Principle string

const (
	PrinciplePerceivable    Principle = "Perceivable"
	PrincipleOperable       Principle = "Operable"
	PrincipleUnderstandable Principle = "Understandable"
	PrincipleRobust         Principle = "Robust"
)

var ValidPrinciples = []Principle{
	PrinciplePerceivable, PrincipleOperable, PrincipleUnderstandable, PrincipleRobust,
}

// Severity ranks how badly a finding hurts users of assistive technology.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

var ValidSeverities = []Severity{SeverityCritical, SeveritySerious, SeverityModerate, SeverityMinor}

// Blocking reports whether findings of this severity fail a report.
func (s Severity) Blocking() bool {
	return s == SeverityCritical || s == SeveritySerious
}

// Deduction is the number of score points a single finding costs.
func (s Severity) Deduction() int {
	switch s {
	case SeverityCritical:
		return 25
	case SeveritySerious:
		return 15
	case SeverityModerate:
		return 5
	case SeverityMinor:
		return 2
	default:
		return 0
	}
}

// AllComponents is the Criterion.Components sentinel meaning "every component type".
const AllComponents = "all"

// Criterion is a single WCAG success criterion.
type Criterion struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Level         Level     `json:"level"`
	Principle     Principle `json:"principle"`
	Guideline     string    `json:"guideline"`
	Version       string    `json:"version"`
	Description   string    `json:"description"`
	Techniques    []string  `json:"techniques,omitempty"`
	Failures      []string  `json:"failures,omitempty"`
	TestProcedure string    `json:"test_procedure"`
	Components    []string  `json:"components"`
}

// AppliesTo reports whether the criterion names component or the "all" sentinel.
func (c Criterion) AppliesTo(component string) bool {
	for _, name := range c.Components {
		if name == AllComponents || name == component {
			return true
		}
	}
	return false
}

// ViolationKind identifies the detector bound to a catalog violation.
type ViolationKind string

// RequirementKind identifies the signal a catalog requirement is judged by.
type RequirementKind string

const (
	RequirementAccessibleName RequirementKind = "accessible_name"
	RequirementSemanticRole   RequirementKind = "semantic_role"
	RequirementKeyboard       RequirementKind = "keyboard"
	RequirementFocusVisible   RequirementKind = "focus_visible"
	RequirementState          RequirementKind = "state"
	RequirementLinkRole       RequirementKind = "link_role"
	RequirementTableRole      RequirementKind = "table_role"
	// RequirementManual cannot be judged from source text and always passes.
	RequirementManual RequirementKind = "manual"
)

// Requirement is an expected behavior of a component type.
type Requirement struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Severity    Severity        `json:"severity"`
	Kind        RequirementKind `json:"kind"`
	Automated   bool            `json:"automated"`
	TestMethod  string          `json:"test_method"`
}

// KeyboardRequirement is a key a component must (or may) respond to.
type KeyboardRequirement struct {
	Key      string `json:"key"`
	Action   string `json:"action"`
	Required bool   `json:"required"`
}

// Violation is a named failure pattern for a component type.
type Violation struct {
	ID          string        `json:"id"`
	Kind        ViolationKind `json:"kind"`
	Description string        `json:"description"`
	Severity    Severity      `json:"severity"`
	Remediation string        `json:"remediation"`
	Criteria    []string      `json:"wcag_criteria"`
}

// CodeExample pairs a compliant and a non-compliant snippet.
type CodeExample struct {
	Compliant    string `json:"compliant"`
	NonCompliant string `json:"non_compliant"`
}

// ComponentRule is the catalog entry for one component type.
type ComponentRule struct {
	Component         string                `json:"component"`
	Criteria          []string              `json:"wcag_criteria"`
	PatternURL        string                `json:"pattern_url"`
	Requirements      []Requirement         `json:"requirements"`
	Keyboard          []KeyboardRequirement `json:"keyboard"`
	ScreenReaderNotes string                `json:"screen_reader_notes"`
	Violations        []Violation           `json:"violations"`
	Examples          CodeExample           `json:"examples"`
}

// CodeAnalysis is the signal set the analyzer extracts from source text.
type CodeAnalysis struct {
	Component             string   `json:"component"`
	HasAccessibleName     bool     `json:"has_accessible_name"`
	HasSemanticRole       bool     `json:"has_semantic_role"`
	HasKeyboardSupport    bool     `json:"has_keyboard_support"`
	HasFocusIndicator     bool     `json:"has_focus_indicator"`
	HasAriaStates         bool     `json:"has_aria_states"`
	MissingAriaAttributes []string `json:"missing_aria_attributes"`
	Suggestions           []string `json:"suggestions"`
}

// Issue is a single finding in a report.
type Issue struct {
	ID          string   `json:"id"`
	Component   string   `json:"component"`
	Severity    Severity `json:"severity"`
	Criteria    []string `json:"wcag_criteria"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Remediation string   `json:"remediation"`
	Example     string   `json:"example,omitempty"`
	Automated   bool     `json:"automated"`
	Element     string   `json:"element,omitempty"`
}

// KeyboardCheck annotates a keyboard requirement with what was observed.
type KeyboardCheck struct {
	Key         string `json:"key"`
	Action      string `json:"action"`
	Required    bool   `json:"required"`
	Implemented bool   `json:"implemented"`
}

// Coverage tells callers how much of a report is backed by actual checks.
type Coverage struct {
	CatalogFound           bool     `json:"catalog_found"`
	RequirementsChecked    int      `json:"requirements_checked"`
	RequirementsUnverified []string `json:"requirements_unverified,omitempty"`
}

// Report is the outcome of validating one component.
type Report struct {
	ID                string          `json:"id"`
	Component         string          `json:"component"`
	GeneratedAt       time.Time       `json:"generated_at"`
	Level             Level           `json:"level"`
	Passed            bool            `json:"passed"`
	Score             int             `json:"score"`
	Issues            []Issue         `json:"issues"`
	Warnings          []Issue         `json:"warnings"`
	Recommendations   []string        `json:"recommendations"`
	Criteria          []Criterion     `json:"wcag_criteria"`
	Keyboard          []KeyboardCheck `json:"keyboard"`
	ScreenReaderNotes string          `json:"screen_reader_notes"`
	Coverage          Coverage        `json:"coverage"`
	File              string          `json:"file,omitempty"`
}

func (r Report) Grade() string { return GradeFor(r.Score) }

// Findings returns issues followed by warnings.
func (r Report) Findings() []Issue {
	all := make([]Issue, 0, len(r.Issues)+len(r.Warnings))
	all = append(all, r.Issues...)
	return append(all, r.Warnings...)
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}

// RGB is a parsed sRGB color with 0-255 channels.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// ContrastResult holds a contrast ratio and its WCAG threshold checks.
type ContrastResult struct {
	Ratio         float64 `json:"ratio"`
	NormalTextAA  bool    `json:"normal_text_aa"`
	NormalTextAAA bool    `json:"normal_text_aaa"`
	LargeTextAA   bool    `json:"large_text_aa"`
	LargeTextAAA  bool    `json:"large_text_aaa"`
	UIComponentAA bool    `json:"ui_component_aa"`
}

// ComponentSource is one input of a batch validation.
type ComponentSource struct {
	Name string `json:"name"`
	Code string `json:"code"`
	File string `json:"file,omitempty"`
}

// Summary rolls up a batch of reports.
type Summary struct {
	TotalComponents  int              `json:"total_components"`
	PassedComponents int              `json:"passed_components"`
	FailedComponents int              `json:"failed_components"`
	AverageScore     int              `json:"average_score"`
	IssuesBySeverity map[Severity]int `json:"issues_by_severity"`
	TopIssues        []IssueFrequency `json:"top_issues"`
}

// IssueFrequency counts how often a blocking issue title occurred.
type IssueFrequency struct {
	Title      string   `json:"title"`
	Count      int      `json:"count"`
	Components []string `json:"components"`
}

// ProjectScan is the result of validating every component file in a project.
type ProjectScan struct {
	Root       string    `json:"root"`
	Level      Level     `json:"level"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Files      []string  `json:"files"`
	Reports    []Report  `json:"reports"`
	Summary    Summary   `json:"summary"`
	ScannedAt  time.Time `json:"scanned_at"`
}

// ScanEntry is one row of scan history.
type ScanEntry struct {
	Timestamp    string `json:"timestamp"`
	CommitHash   string `json:"commit_hash,omitempty"`
	AverageScore int    `json:"average_score"`
	Total        int    `json:"total"`
	Passed       int    `json:"passed"`
	Failed       int    `json:"failed"`
}

// Entry condenses the scan into a history row.
func (p ProjectScan) Entry() ScanEntry {
	return ScanEntry{
		Timestamp:    p.ScannedAt.UTC().Format(time.RFC3339),
		CommitHash:   p.CommitHash,
		AverageScore: p.Summary.AverageScore,
		Total:        p.Summary.TotalComponents,
		Passed:       p.Summary.PassedComponents,
		Failed:       p.Summary.FailedComponents,
	}
}
