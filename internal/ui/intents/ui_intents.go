package intents

type Quit struct{}

func (Quit) isIntent() {}

type Cancel struct{}

func (Cancel) isIntent() {}

type HelpToggle struct{}

func (HelpToggle) isIntent() {}

type GotoOpen struct{}

func (GotoOpen) isIntent() {}

type ToggleSidebar struct{}

func (ToggleSidebar) isIntent() {}

type CopyFrame struct{}

func (CopyFrame) isIntent() {}
