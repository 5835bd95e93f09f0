package criteria

import "github.com/openkraft/a11ykraft/internal/domain"

var operable = []domain.Criterion{
	{
		ID: "2.1.1", Name: "Keyboard", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.1 Keyboard Accessible", Version: "2.0",
		Description:   "All functionality is operable through a keyboard interface without requiring specific timings for individual keystrokes.",
		Techniques:    []string{"G202: keyboard control for all functionality", "SCR20: keyboard and other device-specific functions together", "SCR35: making actions keyboard accessible with onclick on buttons and links"},
		Failures:      []string{"F54: only pointing-device-specific event handlers", "F42: emulating links with script on non-focusable elements"},
		TestProcedure: "Unplug the mouse; operate every control with Tab, Enter, Space and arrow keys.",
		Components:    []string{"Button", "Link", "Input", "Select", "Checkbox", "RadioGroup", "Switch", "Tabs", "Modal", "Dropdown", "Accordion", "Slider", "Pagination", "Tooltip", "Navigation"},
	},
	{
		ID: "2.1.2", Name: "No Keyboard Trap", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.1 Keyboard Accessible", Version: "2.0",
		Description:   "If keyboard focus can be moved to a component, focus can be moved away from it using only a keyboard.",
		Techniques:    []string{"G21: ensuring users are not trapped in content"},
		Failures:      []string{"F10: combining content formats in a way that traps users"},
		TestProcedure: "Tab into and out of the component; in modals confirm Escape or a close control releases focus.",
		Components:    []string{"Modal", "Dropdown", "Select", "Tabs"},
	},
	{
		ID: "2.1.3", Name: "Keyboard (No Exception)", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.1 Keyboard Accessible", Version: "2.0",
		Description:   "All functionality is operable through a keyboard interface without exception.",
		Techniques:    []string{"G202: keyboard control for all functionality"},
		TestProcedure: "Confirm even path-dependent interactions such as drawing or dragging have keyboard alternatives.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "2.1.4", Name: "Character Key Shortcuts", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.1 Keyboard Accessible", Version: "2.1",
		Description:   "Single-character keyboard shortcuts can be turned off, remapped, or are only active on focus.",
		Techniques:    []string{"Providing a way to turn off single-key shortcuts"},
		Failures:      []string{"F99: single-character shortcuts with no way to turn them off or remap them"},
		TestProcedure: "Look for global single-letter key handlers and confirm they can be disabled.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "2.2.1", Name: "Timing Adjustable", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.2 Enough Time", Version: "2.0",
		Description:   "For each time limit set by the content, users can turn it off, adjust it, or extend it.",
		Techniques:    []string{"G133: checkbox to request longer session limits", "G198: way to turn time limits off"},
		Failures:      []string{"F40: meta redirect with a time limit", "F41: meta refresh reloading the page"},
		TestProcedure: "Identify auto-dismiss and timeout behavior; confirm it can be paused, extended or disabled.",
		Components:    []string{"Toast", "Alert", "Modal"},
	},
	{
		ID: "2.2.2", Name: "Pause, Stop, Hide", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.2 Enough Time", Version: "2.0",
		Description:   "Moving, blinking, scrolling, or auto-updating information can be paused, stopped, or hidden.",
		Techniques:    []string{"G4: allowing content to be paused and restarted", "SCR33: script to scroll content with a pause mechanism"},
		Failures:      []string{"F16: scrolling content that cannot be paused", "F47: blink element"},
		TestProcedure: "Confirm carousels, tickers and animated progress can be paused or hidden.",
		Components:    []string{"Carousel", "Progress", "Toast"},
	},
	{
		ID: "2.3.1", Name: "Three Flashes or Below Threshold", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.3 Seizures and Physical Reactions", Version: "2.0",
		Description:   "Content does not flash more than three times in any one second period.",
		Techniques:    []string{"G19: no component flashes more than three times per second"},
		TestProcedure: "Review animations for rapid flashing.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "2.3.3", Name: "Animation from Interactions", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.3 Seizures and Physical Reactions", Version: "2.1",
		Description:   "Motion animation triggered by interaction can be disabled unless essential.",
		Techniques:    []string{"C39: prefers-reduced-motion media query"},
		TestProcedure: "Enable reduced motion in the OS and confirm interaction animations stop.",
		Components:    []string{"Modal", "Accordion", "Toast", "Dropdown"},
	},
	{
		ID: "2.4.1", Name: "Bypass Blocks", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "A mechanism is available to bypass blocks of content that are repeated on multiple pages.",
		Techniques:    []string{"G1: skip link at the top of the page", "ARIA11: landmarks to identify regions"},
		TestProcedure: "Confirm a skip link or landmark navigation lets users bypass repeated navigation.",
		Components:    []string{"Navigation"},
	},
	{
		ID: "2.4.2", Name: "Page Titled", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "Web pages have titles that describe topic or purpose.",
		Techniques:    []string{"H25: title element"},
		Failures:      []string{"F25: title that does not identify the contents"},
		TestProcedure: "Confirm each page sets a descriptive document title.",
		Components:    []string{"Page"},
	},
	{
		ID: "2.4.3", Name: "Focus Order", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "Focusable components receive focus in an order that preserves meaning and operability.",
		Techniques:    []string{"G59: placing interactive elements in an order that follows sequences", "SCR26: inserting dynamic content immediately after its trigger", "SCR37: custom dialogs in a device-independent way"},
		Failures:      []string{"F44: tabindex creating an illogical focus order", "F85: dialogs not adjacent to their trigger in sequential order"},
		TestProcedure: "Tab through the component and confirm focus follows the visual and logical order; flag positive tabindex.",
		Components:    []string{"Modal", "Dropdown", "Tabs", "Navigation", "Pagination", "Button", "Link"},
	},
	{
		ID: "2.4.4", Name: "Link Purpose (In Context)", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "The purpose of each link can be determined from the link text alone or together with its programmatically determined context.",
		Techniques:    []string{"G91: link text that describes the purpose", "ARIA7: aria-labelledby for link purpose", "ARIA8: aria-label for link purpose"},
		Failures:      []string{"F89: image-only link without an accessible name", "F63: link context not programmatically determined"},
		TestProcedure: "List all links and confirm each is meaningful out of context (no bare \"click here\").",
		Components:    []string{"Link", "Breadcrumb", "Pagination", "Navigation"},
	},
	{
		ID: "2.4.5", Name: "Multiple Ways", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "More than one way is available to locate a page within a set of pages.",
		Techniques:    []string{"G125: links to related pages", "G161: search function"},
		TestProcedure: "Confirm navigation is complemented by search, sitemap or breadcrumbs.",
		Components:    []string{"Navigation", "Breadcrumb"},
	},
	{
		ID: "2.4.6", Name: "Headings and Labels", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "Headings and labels describe topic or purpose.",
		Techniques:    []string{"G130: descriptive headings", "G131: descriptive labels"},
		TestProcedure: "Review every heading and form label for a clear description of purpose.",
		Components:    []string{"Input", "Select", "Accordion", "Modal", "Tabs", "Checkbox", "RadioGroup"},
	},
	{
		ID: "2.4.7", Name: "Focus Visible", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "Any keyboard operable user interface has a mode of operation where the keyboard focus indicator is visible.",
		Techniques:    []string{"G149: user interface components that highlight on focus", "C15: CSS to change presentation on focus", "C40: two-color focus indicator"},
		Failures:      []string{"F55: script that removes focus when it is received", "F78: styling outlines that remove or render the focus indicator non-visible"},
		TestProcedure: "Tab to each control and confirm a clearly visible focus indicator appears.",
		Components:    []string{"Button", "Link", "Input", "Select", "Checkbox", "RadioGroup", "Switch", "Tabs", "Dropdown", "Accordion", "Slider", "Pagination", "Navigation", "Modal"},
	},
	{
		ID: "2.4.9", Name: "Link Purpose (Link Only)", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.0",
		Description:   "The purpose of each link can be identified from the link text alone.",
		Techniques:    []string{"ARIA8: aria-label for link purpose", "G91: link text that describes the purpose"},
		Failures:      []string{"F84: non-specific link text such as \"click here\""},
		TestProcedure: "Read each link's accessible name in isolation.",
		Components:    []string{"Link"},
	},
	{
		ID: "2.4.11", Name: "Focus Not Obscured (Minimum)", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.2",
		Description:   "When a component receives keyboard focus, it is not entirely hidden by author-created content.",
		Techniques:    []string{"C43: scroll-padding to un-obscure content"},
		Failures:      []string{"F110: sticky footers or headers that completely hide focused elements"},
		TestProcedure: "Tab through the page with sticky headers, toasts and banners visible; confirm focused items remain visible.",
		Components:    []string{"Toast", "Navigation", "Modal", "Dropdown"},
	},
	{
		ID: "2.4.12", Name: "Focus Not Obscured (Enhanced)", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.2",
		Description:   "When a component receives keyboard focus, no part of it is hidden by author-created content.",
		Techniques:    []string{"C43: scroll-padding to un-obscure content"},
		TestProcedure: "Confirm focused elements are never partially covered by overlays.",
		Components:    []string{"Toast", "Navigation", "Modal"},
	},
	{
		ID: "2.4.13", Name: "Focus Appearance", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.4 Navigable", Version: "2.2",
		Description:   "The focus indicator is at least as large as a 2 CSS pixel perimeter and has a 3:1 contrast between focused and unfocused states.",
		Techniques:    []string{"C40: two-color focus indicator", "C41: strong focus indicator"},
		TestProcedure: "Measure focus indicator thickness and its contrast change.",
		Components:    []string{"Button", "Link", "Input", "Tabs", "Checkbox", "RadioGroup", "Switch"},
	},
	{
		ID: "2.5.1", Name: "Pointer Gestures", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.1",
		Description:   "Functionality that uses multipoint or path-based gestures can be operated with a single pointer without a path-based gesture.",
		Techniques:    []string{"G215: controls for multipoint gestures", "G216: single-point activation for path-based gestures"},
		Failures:      []string{"F105: path-based gesture without a single-pointer alternative"},
		TestProcedure: "Confirm swipe or pinch features have button alternatives.",
		Components:    []string{"Slider", "Carousel"},
	},
	{
		ID: "2.5.2", Name: "Pointer Cancellation", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.1",
		Description:   "For functionality operated with a single pointer, the down-event is not used to execute it, or it can be aborted or undone.",
		Techniques:    []string{"G210: drag and drop actions that can be cancelled", "G212: native controls to ensure functionality is triggered on the up-event"},
		Failures:      []string{"F101: activating a control on the down-event"},
		TestProcedure: "Press a control, move the pointer away and release; confirm nothing fires.",
		Components:    []string{"Button", "Link", "Switch", "Checkbox"},
	},
	{
		ID: "2.5.3", Name: "Label in Name", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.1",
		Description:   "For components with visible text labels, the accessible name contains the visible text.",
		Techniques:    []string{"G208: including the visible text label in the accessible name", "G211: matching accessible name to visible label"},
		Failures:      []string{"F96: accessible name that does not contain the visible label text"},
		TestProcedure: "Compare each control's visible label with its accessible name.",
		Components:    []string{"Button", "Link", "Input", "Checkbox", "RadioGroup", "Switch", "Tabs"},
	},
	{
		ID: "2.5.4", Name: "Motion Actuation", Level: domain.LevelA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.1",
		Description:   "Functionality triggered by device or user motion can also be operated by UI components and motion response can be disabled.",
		Techniques:    []string{"G213: conventional controls alongside motion activation"},
		Failures:      []string{"F106: motion-only actuation"},
		TestProcedure: "Confirm shake or tilt features have a conventional control alternative.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "2.5.5", Name: "Target Size (Enhanced)", Level: domain.LevelAAA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.1",
		Description:   "The size of the target for pointer inputs is at least 44 by 44 CSS pixels.",
		Techniques:    []string{"Ensuring targets are at least 44 by 44 CSS pixels"},
		TestProcedure: "Measure every pointer target.",
		Components:    []string{"Button", "Link", "Checkbox", "RadioGroup", "Switch", "Pagination"},
	},
	{
		ID: "2.5.7", Name: "Dragging Movements", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.2",
		Description:   "Functionality that uses dragging can be achieved by a single pointer without dragging unless essential.",
		Techniques:    []string{"G219: single-pointer alternative to dragging"},
		Failures:      []string{"F108: drag-only interaction without an alternative"},
		TestProcedure: "Confirm sliders and sortable lists can be operated with clicks or taps alone.",
		Components:    []string{"Slider"},
	},
	{
		ID: "2.5.8", Name: "Target Size (Minimum)", Level: domain.LevelAA,
		Principle: domain.PrincipleOperable, Guideline: "2.5 Input Modalities", Version: "2.2",
		Description:   "The size of the target for pointer inputs is at least 24 by 24 CSS pixels, with spacing exceptions.",
		Techniques:    []string{"C42: min-height and min-width to ensure sufficient target spacing"},
		TestProcedure: "Measure each pointer target or the spacing around undersized targets.",
		Components:    []string{"Button", "Link", "Checkbox", "RadioGroup", "Switch", "Pagination", "Slider", "Tabs"},
	},
}
