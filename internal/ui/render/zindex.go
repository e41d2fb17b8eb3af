package render

// Z-index constants for layered rendering. Higher values render on top.
// Components should use these named constants instead of magic numbers.
const (
	// ZCanvas is the rasterized scene itself.
	ZCanvas = 0

	// ZStatusBar is the bottom status line.
	ZStatusBar = 1

	// ZSidebar is the shape list pane.
	ZSidebar = 10

	// ZDialogs is for modal dialogs such as the goto prompt.
	ZDialogs = 50

	// ZOverlay is for transient flash messages.
	ZOverlay = 200

	// ZHelpPage is for the help page overlay.
	ZHelpPage = 250
)
