// Package ui composes the sub-models into the interactive application:
// canvas view, status bar, sidebar, and the stacked overlays.
package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/lunehart/vista/canvas"
	"github.com/lunehart/vista/geom"
	"github.com/lunehart/vista/internal/config"
	"github.com/lunehart/vista/internal/ui/canvasview"
	"github.com/lunehart/vista/internal/ui/common"
	"github.com/lunehart/vista/internal/ui/flash"
	"github.com/lunehart/vista/internal/ui/gotoview"
	"github.com/lunehart/vista/internal/ui/helppage"
	"github.com/lunehart/vista/internal/ui/intents"
	"github.com/lunehart/vista/internal/ui/layout"
	"github.com/lunehart/vista/internal/ui/render"
	"github.com/lunehart/vista/internal/ui/sidebar"
	"github.com/lunehart/vista/internal/ui/statusbar"
)

type Model struct {
	cfg            *config.Config
	canvasView     *canvasview.Model
	statusBar      *statusbar.Model
	sideBar        *sidebar.Model
	flash          *flash.Model
	stacked        common.ImmediateModel
	displayContext *render.DisplayContext
	keyMap         config.KeyMappings[key.Binding]
	width          int
	height         int
	sidebarVisible bool
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("vista"), m.canvasView.Init())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case common.CloseOverlayMsg:
		m.stacked = nil
		return nil
	case common.ToggleHelpMsg:
		if m.stacked == nil {
			m.stacked = helppage.New(m.cfg)
		} else {
			m.stacked = nil
		}
		return nil
	case tea.KeyMsg:
		if m.stacked != nil {
			return m.stacked.Update(msg)
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.canvasView.IsDragging() {
			return m.canvasView.Update(msg)
		}
		if m.displayContext != nil {
			if interactionMsg, handled := m.displayContext.ProcessMouseEvent(msg); handled {
				if interactionMsg != nil {
					return func() tea.Msg { return interactionMsg }
				}
				return nil
			}
		}
		return nil
	case intents.Intent:
		return m.handleIntent(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil
	}

	// Everything else is broadcast.
	var cmds []tea.Cmd
	cmds = append(cmds, m.canvasView.Update(msg))
	cmds = append(cmds, m.sideBar.Update(msg))
	cmds = append(cmds, m.flash.Update(msg))
	if m.stacked != nil {
		cmds = append(cmds, m.stacked.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return intents.Invoke(intents.Quit{})
	case key.Matches(msg, m.keyMap.Cancel):
		return intents.Invoke(intents.Cancel{})
	case key.Matches(msg, m.keyMap.Help):
		return intents.Invoke(intents.HelpToggle{})
	case key.Matches(msg, m.keyMap.PanUp):
		return intents.Invoke(intents.Pan{Dir: geom.Up})
	case key.Matches(msg, m.keyMap.PanDown):
		return intents.Invoke(intents.Pan{Dir: geom.Down})
	case key.Matches(msg, m.keyMap.PanLeft):
		return intents.Invoke(intents.Pan{Dir: geom.Left})
	case key.Matches(msg, m.keyMap.PanRight):
		return intents.Invoke(intents.Pan{Dir: geom.Right})
	case key.Matches(msg, m.keyMap.FastPanUp):
		return intents.Invoke(intents.Pan{Dir: geom.Up, Fast: true})
	case key.Matches(msg, m.keyMap.FastPanDown):
		return intents.Invoke(intents.Pan{Dir: geom.Down, Fast: true})
	case key.Matches(msg, m.keyMap.FastPanLeft):
		return intents.Invoke(intents.Pan{Dir: geom.Left, Fast: true})
	case key.Matches(msg, m.keyMap.FastPanRight):
		return intents.Invoke(intents.Pan{Dir: geom.Right, Fast: true})
	case key.Matches(msg, m.keyMap.ZoomIn):
		return intents.Invoke(intents.Zoom{In: true})
	case key.Matches(msg, m.keyMap.ZoomOut):
		return intents.Invoke(intents.Zoom{})
	case key.Matches(msg, m.keyMap.Origin):
		return intents.Invoke(intents.Origin{})
	case key.Matches(msg, m.keyMap.Goto):
		return intents.Invoke(intents.GotoOpen{})
	case key.Matches(msg, m.keyMap.ToggleSidebar):
		return intents.Invoke(intents.ToggleSidebar{})
	case key.Matches(msg, m.keyMap.NextShape):
		return intents.Invoke(intents.CycleShape{Delta: 1})
	case key.Matches(msg, m.keyMap.PrevShape):
		return intents.Invoke(intents.CycleShape{Delta: -1})
	case key.Matches(msg, m.keyMap.CenterShape):
		return intents.Invoke(intents.CenterShape{})
	case key.Matches(msg, m.keyMap.CopyFrame):
		return intents.Invoke(intents.CopyFrame{})
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.Quit:
		return tea.Quit
	case intents.Cancel:
		switch {
		case m.stacked != nil:
			m.stacked = nil
		case m.flash.Any():
			m.flash.DeleteOldest()
		default:
			return m.selectShape(-1)
		}
		return nil
	case intents.HelpToggle:
		return common.ToggleHelp
	case intents.GotoOpen:
		m.stacked = gotoview.New(m.cfg)
		return m.stacked.Init()
	case intents.ToggleSidebar:
		m.sidebarVisible = !m.sidebarVisible
		return nil
	case intents.CopyFrame:
		return m.copyFrame()
	case intents.SelectShape:
		return m.selectShape(intent.Index)
	case intents.CycleShape:
		cmd := m.canvasView.Update(intent)
		m.sideBar.SetSelected(m.canvasView.Selected())
		return cmd
	default:
		return m.canvasView.Update(intent)
	}
}

func (m *Model) selectShape(index int) tea.Cmd {
	cmd := m.canvasView.Update(intents.SelectShape{Index: index})
	m.sideBar.SetSelected(m.canvasView.Selected())
	return cmd
}

func (m *Model) copyFrame() tea.Cmd {
	frame := m.canvasView.Canvas().Render()
	if err := clipboard.WriteAll(frame.String()); err != nil {
		return flash.Error(err)
	}
	return flash.Info("frame copied")
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.displayContext = render.NewDisplayContext()
	m.statusBar.SetInfo(statusbar.CanvasInfo{
		Canvas:   m.canvasView.Canvas(),
		Selected: m.canvasView.Selected(),
	})

	box := layout.NewBox(cellbuf.Rect(0, 0, m.width, m.height))
	screenBuf := cellbuf.NewBuffer(m.width, m.height)

	rows := box.V(layout.Fill(1), layout.Fixed(1))
	if len(rows) < 2 {
		return ""
	}
	content := rows[0]
	if m.sidebarVisible {
		cols := content.H(layout.Fill(1), layout.Fixed(sidebar.Width))
		m.canvasView.ViewRect(m.displayContext, cols[0])
		m.sideBar.ViewRect(m.displayContext, cols[1])
	} else {
		m.canvasView.ViewRect(m.displayContext, content)
	}
	m.statusBar.ViewRect(m.displayContext, rows[1])

	if m.stacked != nil {
		m.stacked.ViewRect(m.displayContext, content)
	}
	m.flash.ViewRect(m.displayContext, content)

	m.displayContext.Render(screenBuf)
	finalView := cellbuf.Render(screenBuf)
	return strings.ReplaceAll(finalView, "\r", "")
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() string {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	return w.cachedFrame
}

// NewUI builds the root model without the frame-limiter wrapper, for
// tests that drive Update directly.
func NewUI(cfg *config.Config, c *canvas.Canvas) *Model {
	return &Model{
		cfg:            cfg,
		canvasView:     canvasview.New(cfg, c),
		statusBar:      statusbar.New(cfg),
		sideBar:        sidebar.New(c),
		flash:          flash.New(),
		keyMap:         cfg.GetKeyMap(),
		sidebarVisible: cfg.UI.Sidebar,
	}
}

// New wraps the UI in a frame limiter so bursts of input coalesce into
// one render.
func New(cfg *config.Config, c *canvas.Canvas) tea.Model {
	return &wrapper{ui: NewUI(cfg, c)}
}
