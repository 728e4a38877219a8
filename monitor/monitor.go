// Package monitor is a terminal monitor for the console's input. It receives
// a ui.Report every frame and can print button transitions as they happen, or
// the full input state on request.
//
// Commands: STATE, CRANK, LOG, RECENT, QUIT. LOG toggles the live transition
// stream. RECENT shows the tail of the central application log.
package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jetsetilly/crankpad/logger"
	"github.com/jetsetilly/crankpad/ui"
)

type reportMsg ui.Report

type monitor struct {
	viewport viewport.Model
	input    textinput.Model
	output   []string
	styles   styles

	// live transition stream on/off. toggled with the LOG command
	logging bool

	last ui.Report
}

func (m *monitor) Init() tea.Cmd {
	m.input = textinput.New()
	m.input.Placeholder = ""
	m.input.Focus()
	m.input.CharLimit = 256
	m.input.Width = 50

	m.styles = newStyles()
	m.logging = true

	m.output = append(m.output, m.styles.monitor.Render("input monitor started"))

	return nil
}

func (m *monitor) report(r ui.Report) {
	m.last = r

	if !m.logging {
		return
	}

	st := r.Buttons
	if !st.Pushed.IsEmpty() {
		m.output = append(m.output, m.styles.pushed.Render(
			fmt.Sprintf("pushed %s", st.Pushed),
		))
	}
	if !st.Released.IsEmpty() {
		m.output = append(m.output, m.styles.released.Render(
			fmt.Sprintf("released %s", st.Released),
		))
	}
	if c := r.Crank; !c.IsDocked() && c.ChangeDegrees() != 0 {
		m.output = append(m.output, m.styles.crank.Render(
			fmt.Sprintf("crank %+.1f deg (at %.1f)", c.ChangeDegrees(), c.AngleDegrees()),
		))
	}
}

func (m *monitor) state() {
	st := m.last.Buttons
	x, y := st.DPad()
	m.output = append(m.output, m.styles.state.Render(
		fmt.Sprintf("current %s  pushed %s  released %s", st.Current, st.Pushed, st.Released),
	))
	m.output = append(m.output, m.styles.state.Render(
		fmt.Sprintf("d-pad (%d,%d)", x, y),
	))
}

func (m *monitor) crank() {
	c := m.last.Crank
	if c.IsDocked() {
		m.output = append(m.output, m.styles.crank.Render("crank is docked"))
		return
	}
	m.output = append(m.output, m.styles.crank.Render(
		fmt.Sprintf("angle %.2f deg (%.4f rad)  change %+.2f deg (%+.4f rad)",
			c.AngleDegrees(), c.AngleRadians(), c.ChangeDegrees(), c.ChangeRadians()),
	))
}

func (m *monitor) recent() {
	var b strings.Builder
	logger.Tail(&b, 10)
	if b.Len() == 0 {
		m.output = append(m.output, m.styles.monitor.Render("log is empty"))
		return
	}
	for _, s := range strings.Split(strings.TrimSpace(b.String()), "\n") {
		m.output = append(m.output, m.styles.state.Render(s))
	}
}

func (m *monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1

	case reportMsg:
		m.report(ui.Report(msg))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			s := m.input.Value()
			s = strings.TrimSpace(s)
			s = strings.ToUpper(s)

			switch s {
			case "":
				// an empty line repeats the STATE command
				m.state()
			case "STATE":
				m.state()
			case "CRANK":
				m.crank()
			case "LOG":
				m.logging = !m.logging
				if m.logging {
					m.output = append(m.output, m.styles.monitor.Render("transition stream on"))
				} else {
					m.output = append(m.output, m.styles.monitor.Render("transition stream off"))
				}
			case "RECENT":
				m.recent()
			case "QUIT":
				return m, tea.Quit
			default:
				m.output = append(m.output, m.styles.err.Render(
					fmt.Sprintf("unrecognised command: %s", s),
				))
			}

			m.input.SetValue("")
		}
	}

	// always update viewport and scroll to bottom. this isn't optimal and means
	// we can't scroll the viewport up but this is the best I can do for now
	m.viewport.SetContent(strings.Join(m.output, "\n"))
	m.viewport.GotoBottom()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *monitor) View() string {
	return fmt.Sprintf("%s\n%s",
		m.viewport.View(),
		m.input.View(),
	)
}

// Launch the monitor and block until it quits. The endMonitor channel ends
// the monitor from the outside.
func Launch(endMonitor chan bool, u *ui.UI) error {
	m := &monitor{}
	p := tea.NewProgram(m)

	done := make(chan bool)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-endMonitor:
				p.Quit()
				return
			case r := <-u.Reports:
				p.Send(reportMsg(r))
			}
		}
	}()

	_, err := p.Run()
	close(done)

	return err
}
