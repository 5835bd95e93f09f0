package criteria

import "github.com/openkraft/a11ykraft/internal/domain"

var perceivable = []domain.Criterion{
	{
		ID: "1.1.1", Name: "Non-text Content", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.1 Text Alternatives", Version: "2.0",
		Description:   "All non-text content presented to the user has a text alternative that serves the equivalent purpose.",
		Techniques:    []string{"H37: alt attributes on img elements", "ARIA6: aria-label to provide labels for objects", "H67: null alt text for decorative images"},
		Failures:      []string{"F65: omitting the alt attribute on img elements", "F30: alt text that is not an alternative (e.g. file name)", "F38: decorative images not marked for assistive technology to ignore"},
		TestProcedure: "Check every image, icon and icon-only control exposes a text alternative, or is hidden from assistive technology when purely decorative.",
		Components:    []string{"Image", "Button", "Link", "Avatar"},
	},
	{
		ID: "1.2.1", Name: "Audio-only and Video-only (Prerecorded)", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.2 Time-based Media", Version: "2.0",
		Description:   "Prerecorded audio-only and video-only media have an equivalent alternative.",
		Techniques:    []string{"G158: transcript for audio-only content", "G159: text alternative for video-only content"},
		Failures:      []string{"F30: alternative that does not describe the media"},
		TestProcedure: "Verify a transcript or audio track is linked next to each prerecorded media item.",
		Components:    []string{"Video", "Audio"},
	},
	{
		ID: "1.2.2", Name: "Captions (Prerecorded)", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.2 Time-based Media", Version: "2.0",
		Description:   "Captions are provided for all prerecorded audio content in synchronized media.",
		Techniques:    []string{"H95: track element with kind=captions", "G87: closed captions"},
		Failures:      []string{"F8: captions omitting dialogue or important sounds", "F75: media with captions that omit content"},
		TestProcedure: "Play the media and confirm synchronized captions cover dialogue and meaningful sounds.",
		Components:    []string{"Video"},
	},
	{
		ID: "1.2.3", Name: "Audio Description or Media Alternative (Prerecorded)", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.2 Time-based Media", Version: "2.0",
		Description:   "An alternative for time-based media or audio description is provided for prerecorded video content.",
		Techniques:    []string{"G69: alternative for time-based media", "G78: second audio track with description"},
		TestProcedure: "Confirm visual-only information in video is available as audio description or text.",
		Components:    []string{"Video"},
	},
	{
		ID: "1.2.4", Name: "Captions (Live)", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.2 Time-based Media", Version: "2.0",
		Description:   "Captions are provided for all live audio content in synchronized media.",
		Techniques:    []string{"G9: live captions", "G93: open captions"},
		TestProcedure: "Watch a live stream and confirm real-time captions are available.",
		Components:    []string{"Video"},
	},
	{
		ID: "1.2.5", Name: "Audio Description (Prerecorded)", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.2 Time-based Media", Version: "2.0",
		Description:   "Audio description is provided for all prerecorded video content in synchronized media.",
		Techniques:    []string{"G78: second audio track with description", "G173: version of the movie with audio description"},
		TestProcedure: "Confirm an audio-described version or track is available for prerecorded video.",
		Components:    []string{"Video"},
	},
	{
		ID: "1.3.1", Name: "Info and Relationships", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.0",
		Description:   "Information, structure, and relationships conveyed through presentation can be programmatically determined.",
		Techniques:    []string{"H44: label elements associated with form controls", "H51: table markup for tabular information", "ARIA11: landmarks to identify regions", "H71: fieldset and legend for grouped controls"},
		Failures:      []string{"F68: form control without a programmatically determined name", "F91: data table headers not marked up", "F92: role=presentation on content that conveys structure"},
		TestProcedure: "Inspect the accessibility tree and confirm headings, lists, tables, groups and label associations match the visual structure.",
		Components:    []string{"Input", "Select", "Checkbox", "RadioGroup", "Table", "Tabs", "Navigation", "Breadcrumb", "Accordion"},
	},
	{
		ID: "1.3.2", Name: "Meaningful Sequence", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.0",
		Description:   "When the sequence of content affects its meaning, a correct reading sequence can be programmatically determined.",
		Techniques:    []string{"C27: making DOM order match visual order"},
		Failures:      []string{"F34: white space used to format tables", "F49: layout tables that do not linearize"},
		TestProcedure: "Read the content with CSS disabled and confirm the order still makes sense.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.3.3", Name: "Sensory Characteristics", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.0",
		Description:   "Instructions do not rely solely on shape, color, size, visual location, orientation, or sound.",
		Techniques:    []string{"G96: textual identification of items referenced by sensory characteristics"},
		Failures:      []string{"F14: identifying content only by its shape or location", "F26: graphical symbol alone conveys information"},
		TestProcedure: "Review instructions for references like \"click the round button\" or \"see the right column\".",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.3.4", Name: "Orientation", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.1",
		Description:   "Content does not restrict its view and operation to a single display orientation unless essential.",
		Techniques:    []string{"Using CSS media queries rather than locking orientation"},
		Failures:      []string{"F97: locking orientation to landscape or portrait", "F100: showing a message asking to reorient the device"},
		TestProcedure: "Rotate the device and confirm the component remains usable in both orientations.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.3.5", Name: "Identify Input Purpose", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.1",
		Description:   "The purpose of input fields collecting user information can be programmatically determined.",
		Techniques:    []string{"H98: HTML autocomplete attributes"},
		Failures:      []string{"F107: incorrect autocomplete value for the field purpose"},
		TestProcedure: "Check inputs for personal data declare an appropriate autocomplete token.",
		Components:    []string{"Input", "Select"},
	},
	{
		ID: "1.3.6", Name: "Identify Purpose", Level: domain.LevelAAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.3 Adaptable", Version: "2.1",
		Description:   "The purpose of user interface components, icons, and regions can be programmatically determined.",
		Techniques:    []string{"ARIA11: landmarks to identify regions", "Using semantic markup and microdata"},
		TestProcedure: "Confirm icons and regions expose their purpose via landmarks or metadata.",
		Components:    []string{"Navigation", "Button", "Link"},
	},
	{
		ID: "1.4.1", Name: "Use of Color", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "Color is not used as the only visual means of conveying information, indicating an action, prompting a response, or distinguishing a visual element.",
		Techniques:    []string{"G14: conveying color information in text", "G182: additional visual cues for links", "G205: text cue for colored form control labels"},
		Failures:      []string{"F13: information conveyed only through color differences", "F73: links not visually evident without color vision"},
		TestProcedure: "View the component in grayscale and confirm states, errors and links remain distinguishable.",
		Components:    []string{"Link", "Input", "Alert", "Toast", "Badge", "Switch", "Tabs"},
	},
	{
		ID: "1.4.2", Name: "Audio Control", Level: domain.LevelA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "If audio plays automatically for more than 3 seconds, a mechanism is available to pause or stop it or to control its volume.",
		Techniques:    []string{"G60: playing a sound that turns off automatically within three seconds", "G170: control near the beginning of the page to turn off sounds"},
		Failures:      []string{"F23: playing sound longer than 3 seconds with no way to turn it off"},
		TestProcedure: "Load the component and confirm autoplaying audio can be paused or muted.",
		Components:    []string{"Video", "Audio"},
	},
	{
		ID: "1.4.3", Name: "Contrast (Minimum)", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "Text and images of text have a contrast ratio of at least 4.5:1 (3:1 for large text).",
		Techniques:    []string{"G18: contrast ratio of at least 4.5:1 between text and background", "G145: contrast ratio of at least 3:1 for large text"},
		Failures:      []string{"F24: specifying foreground colors without background colors", "F83: background images that reduce text contrast"},
		TestProcedure: "Measure the foreground/background contrast of every text style, including hover, focus and disabled states.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.4.4", Name: "Resize Text", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "Text can be resized without assistive technology up to 200 percent without loss of content or functionality.",
		Techniques:    []string{"C28: specifying container sizes in em units", "G179: no loss of content when text resizes"},
		Failures:      []string{"F69: text clipped or overlapping when resized", "F94: viewport units prevent text resizing"},
		TestProcedure: "Zoom text to 200% and confirm nothing is clipped or overlapping.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.4.5", Name: "Images of Text", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "If the technologies being used can achieve the visual presentation, text is used to convey information rather than images of text.",
		Techniques:    []string{"C22: CSS to control visual presentation of text", "C30: CSS to replace text with images of text with user controls"},
		TestProcedure: "Confirm text content is rendered as text, not embedded in images.",
		Components:    []string{"Image", "Button"},
	},
	{
		ID: "1.4.6", Name: "Contrast (Enhanced)", Level: domain.LevelAAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.0",
		Description:   "Text and images of text have a contrast ratio of at least 7:1 (4.5:1 for large text).",
		Techniques:    []string{"G17: contrast ratio of at least 7:1", "G148: not specifying background or text colors"},
		Failures:      []string{"F24: specifying foreground colors without background colors"},
		TestProcedure: "Measure text contrast against the enhanced 7:1 threshold.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.4.10", Name: "Reflow", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.1",
		Description:   "Content can be presented at 320 CSS pixels wide without loss of information or functionality and without scrolling in two dimensions.",
		Techniques:    []string{"C32: media queries and grid CSS to reflow columns", "C38: CSS width, max-width and flexbox"},
		Failures:      []string{"F102: content disappearing or requiring two-dimensional scrolling at 320px"},
		TestProcedure: "Set the viewport to 320px wide and confirm no horizontal scrolling is needed, except for data tables.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.4.11", Name: "Non-text Contrast", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.1",
		Description:   "Visual information required to identify user interface components and states has a contrast ratio of at least 3:1 against adjacent colors.",
		Techniques:    []string{"G195: author-supplied, highly visible focus indicator", "G207: contrast ratio of 3:1 with adjacent colors for icons"},
		Failures:      []string{"F78: styling outlines and borders that remove or render the focus indicator non-visible"},
		TestProcedure: "Measure the contrast of control borders, icons and focus indicators against adjacent colors.",
		Components:    []string{"Button", "Input", "Select", "Checkbox", "RadioGroup", "Switch", "Slider", "Tabs", "Progress"},
	},
	{
		ID: "1.4.12", Name: "Text Spacing", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.1",
		Description:   "No loss of content or functionality occurs when users override line height, paragraph, letter and word spacing.",
		Techniques:    []string{"C36: allowing text spacing override", "C35: allowing text spacing without wrapping"},
		Failures:      []string{"F104: content clipped when text spacing is adjusted"},
		TestProcedure: "Apply the text-spacing bookmarklet and confirm nothing is clipped.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "1.4.13", Name: "Content on Hover or Focus", Level: domain.LevelAA,
		Principle: domain.PrinciplePerceivable, Guideline: "1.4 Distinguishable", Version: "2.1",
		Description:   "Additional content triggered by hover or focus is dismissible, hoverable, and persistent.",
		Techniques:    []string{"Dismissing popup content with Escape", "Keeping popups open while the pointer is over them"},
		Failures:      []string{"F95: content shown on hover that is not hoverable"},
		TestProcedure: "Trigger the popup by hover and focus; confirm Escape dismisses it and the pointer can move onto it.",
		Components:    []string{"Tooltip", "Dropdown"},
	},
}
