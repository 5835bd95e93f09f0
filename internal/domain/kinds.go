package domain

// Violation kinds. Each kind is bound to exactly one detector in the check
// package; catalog entries select a detector by kind rather than by ID text.
const (
	ViolationMissingAccessibleName   ViolationKind = "missing_accessible_name"
	ViolationNonSemanticClickable    ViolationKind = "non_semantic_clickable"
	ViolationMissingKeyboardHandler  ViolationKind = "missing_keyboard_handler"
	ViolationFocusOutlineRemoved     ViolationKind = "focus_outline_removed"
	ViolationMissingFocusIndicator   ViolationKind = "missing_focus_indicator"
	ViolationPositiveTabIndex        ViolationKind = "positive_tabindex"
	ViolationMissingLabel            ViolationKind = "missing_label"
	ViolationPlaceholderAsLabel      ViolationKind = "placeholder_as_label"
	ViolationErrorNotAssociated      ViolationKind = "error_not_associated"
	ViolationMissingAltText          ViolationKind = "missing_alt_text"
	ViolationMissingDialogRole       ViolationKind = "missing_dialog_role"
	ViolationMissingDialogLabel      ViolationKind = "missing_dialog_label"
	ViolationMissingModalState       ViolationKind = "missing_modal_state"
	ViolationMissingFocusTrap        ViolationKind = "missing_focus_trap"
	ViolationMissingEscapeHandler    ViolationKind = "missing_escape_handler"
	ViolationMissingTabRoles         ViolationKind = "missing_tab_roles"
	ViolationMissingSelectedState    ViolationKind = "missing_selected_state"
	ViolationMissingControlsRelation ViolationKind = "missing_controls_relation"
	ViolationMissingExpandedState    ViolationKind = "missing_expanded_state"
	ViolationMissingCheckedState     ViolationKind = "missing_checked_state"
	ViolationMissingPopupRole        ViolationKind = "missing_popup_role"
	ViolationMissingLiveRegion       ViolationKind = "missing_live_region"
	ViolationAutoDismissTooFast      ViolationKind = "auto_dismiss_too_fast"
	ViolationTooltipNotDescribed     ViolationKind = "tooltip_not_described"
	ViolationHoverOnlyTrigger        ViolationKind = "hover_only_trigger"
	ViolationMissingValueRange       ViolationKind = "missing_value_range"
	ViolationMissingTableHeaders     ViolationKind = "missing_table_headers"
	ViolationMissingNavLandmark      ViolationKind = "missing_nav_landmark"
	ViolationMissingCurrentIndicator ViolationKind = "missing_current_indicator"
	ViolationMissingGroupRole        ViolationKind = "missing_group_role"
	ViolationLinkWithoutHref         ViolationKind = "link_without_href"
	ViolationNewWindowUnannounced    ViolationKind = "new_window_unannounced"
)

// ViolationKinds enumerates every violation kind.
var ViolationKinds = []ViolationKind{
	ViolationMissingAccessibleName, ViolationNonSemanticClickable, ViolationMissingKeyboardHandler,
	ViolationFocusOutlineRemoved, ViolationMissingFocusIndicator, ViolationPositiveTabIndex,
	ViolationMissingLabel, ViolationPlaceholderAsLabel, ViolationErrorNotAssociated,
	ViolationMissingAltText, ViolationMissingDialogRole, ViolationMissingDialogLabel,
	ViolationMissingModalState, ViolationMissingFocusTrap, ViolationMissingEscapeHandler,
	ViolationMissingTabRoles, ViolationMissingSelectedState, ViolationMissingControlsRelation,
	ViolationMissingExpandedState, ViolationMissingCheckedState, ViolationMissingPopupRole,
	ViolationMissingLiveRegion, ViolationAutoDismissTooFast, ViolationTooltipNotDescribed,
	ViolationHoverOnlyTrigger, ViolationMissingValueRange, ViolationMissingTableHeaders,
	ViolationMissingNavLandmark, ViolationMissingCurrentIndicator, ViolationMissingGroupRole,
	ViolationLinkWithoutHref, ViolationNewWindowUnannounced,
}

// RequirementKinds enumerates every requirement kind.
var RequirementKinds = []RequirementKind{
	RequirementAccessibleName, RequirementSemanticRole, RequirementKeyboard,
	RequirementFocusVisible, RequirementState, RequirementLinkRole,
	RequirementTableRole, RequirementManual,
}
