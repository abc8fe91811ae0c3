package show

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"greetcard/cmd/greet/ui"
	"greetcard/internal/content"
	"greetcard/internal/sequencer"
)

// frame is one rendered screen plus the regions Update needs for clicks.
type frame struct {
	screen string
	card   ui.Rect // the drawn part of the phase card
	target ui.Rect // the clickable part: cake art, or the replay button
}

// panel is a phase card and its clickable region, relative to the card.
type panel struct {
	block  string
	target ui.Rect
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.layout().screen
}

// layout draws the particle field, the phase card and the help footer. The
// canvas takes whatever rows the footer leaves, so the screen never exceeds
// the terminal and click coordinates line up with what is drawn.
func (m Model) layout() frame {
	w, h := ui.Screen(m.width, m.height)
	footer := m.help.View(m.keys.forPhase(m.state.Phase))
	ch := max(h-lipgloss.Height(footer), 1)
	canvas := ui.NewCanvas(w, ch)

	switch m.state.Phase {
	case sequencer.PhaseBalloons, sequencer.PhaseCake:
		ui.DrawBalloons(canvas, m.state.Balloons, m.now.Sub(m.balloonsAt), m.styles.Theme.Faint)
	case sequencer.PhaseCelebration:
		ui.DrawConfetti(canvas, m.state.Confetti, m.now.Sub(m.confettiAt))
	}

	offset := 0
	if m.state.Phase.HasMessages() {
		offset = int(math.Round(m.rise))
	}
	c := m.card(w, ch)
	screen, drawn := ui.Compose(canvas, c.block, offset)
	return frame{
		screen: screen + "\n" + footer,
		card:   drawn,
		target: c.target.Within(drawn),
	}
}

// card renders the centered content for the current phase in at most h rows.
func (m Model) card(w, h int) panel {
	s := m.styles
	tw := ui.TextWidth(w)
	st := m.state

	switch st.Phase {
	case sequencer.PhaseIntro, sequencer.PhaseOutro:
		list := m.script.Intro
		if st.Phase == sequencer.PhaseOutro {
			list = m.script.Outro
		}
		style := s.Message
		if m.rise > riseStart/2 {
			style = s.Fading
		}
		return panel{block: style.Width(tw).Render(content.Message(list, st.MessageIndex))}

	case sequencer.PhaseBalloons:
		return panel{block: s.Caption.Width(tw).Render(m.script.BalloonsCaption)}

	case sequencer.PhaseCake:
		cake := s.Cake
		if m.press > 0.3 {
			cake = s.CakePressed
		}
		counter := ""
		if left := m.seq.TapsRemaining(st); left > 0 {
			counter = fmt.Sprintf("%d", left)
		}
		total := m.seq.Config().TotalTaps
		return cakeCard(h,
			s.Heading.Render(m.script.CakeHeading),
			s.Prompt.Render(m.script.Prompt(total)),
			cake.Render(m.script.CakeArt),
			s.Counter.Render(counter),
			m.progress.ViewAs(float64(st.TapCount)/float64(total)),
		)

	case sequencer.PhaseCelebration:
		return panel{block: ui.Gradient(s.Headline, m.script.CelebrationHeading, ui.HeadlineStops...)}

	case sequencer.PhaseFinal:
		button := s.Button.Render(m.script.ReplayLabel)
		block := lipgloss.JoinVertical(lipgloss.Center,
			s.Quote.Width(tw).Render(m.script.FinalQuote),
			"",
			button,
		)
		return panel{block: block, target: centered(block, button, lipgloss.Height(block)-1)}
	}
	return panel{}
}

// cakeCard stacks the cake card in at most h rows. When space runs short it
// drops the spacer, then the progress bar, the prompt and the heading, and
// finally crops the art. The countdown always stays.
func cakeCard(h int, heading, prompt, art, counter, bar string) panel {
	top := []string{heading, prompt, ""}
	bottom := []string{counter, bar}
	total := func() int { return rows(top) + lipgloss.Height(art) + rows(bottom) }

	if total() > h {
		top = top[:2]
	}
	if total() > h {
		bottom = bottom[:1]
	}
	if total() > h {
		top = top[:1]
	}
	if total() > h {
		top = nil
	}
	if total() > h {
		lines := strings.Split(art, "\n")
		art = strings.Join(lines[:min(max(h-rows(bottom), 1), len(lines))], "\n")
	}

	parts := make([]string, 0, len(top)+1+len(bottom))
	parts = append(parts, top...)
	parts = append(parts, art)
	parts = append(parts, bottom...)
	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return panel{block: block, target: centered(block, art, rows(top))}
}

// centered locates part inside block, where JoinVertical centered it
// starting at row y.
func centered(block, part string, y int) ui.Rect {
	bw, pw := lipgloss.Width(block), lipgloss.Width(part)
	return ui.Rect{
		X: int(math.Round(float64(bw-pw) * 0.5)),
		Y: y,
		W: pw,
		H: lipgloss.Height(part),
	}
}

func rows(parts []string) int {
	n := 0
	for _, p := range parts {
		n += lipgloss.Height(p)
	}
	return n
}
