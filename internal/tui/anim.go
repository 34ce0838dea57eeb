package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/tobin/waypoint/internal/router"
)

type animTickMsg time.Time

// anim is one in-flight screen transition: a snapshot of the outgoing body
// sliding against the live incoming body over the fixed curve.
type anim struct {
	trans    router.Transition
	from     string
	start    time.Time
	duration time.Duration
	fps      int
}

func newAnim(from string, trans router.Transition, duration time.Duration, fps int, now time.Time) *anim {
	if duration <= 0 {
		duration = trans.Duration
	}
	if fps <= 0 {
		fps = 30
	}
	return &anim{trans: trans, from: from, start: now, duration: duration, fps: fps}
}

func (a *anim) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (a *anim) done(now time.Time) bool {
	return a.progress(now) >= 1
}

func (a *anim) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.fps), func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// renderTransition composes one frame of the slide: the incoming view is
// revealed from its insertion edge while the outgoing view collapses toward
// the removal edge, both at the eased offset. The fade half dims whichever
// view is below half opacity.
func renderTransition(from, to string, width, height int, trans router.Transition, p float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	eased := router.Ease(p)
	offset := int(eased * float64(width))
	if offset <= 0 {
		return fitHeight(from, height)
	}
	if offset >= width {
		return fitHeight(to, height)
	}
	if trans.Fade {
		if p < 0.5 {
			to = dimView(to)
		} else {
			from = dimView(from)
		}
	}
	fromLines := splitToLines(from, height)
	toLines := splitToLines(to, height)
	rows := make([]string, height)
	for i := 0; i < height; i++ {
		out := padRightANSI(fromLines[i], width)
		in := padRightANSI(toLines[i], width)
		if trans.Insert == router.EdgeTrailing {
			rows[i] = ansi.Truncate(out, width-offset, "") + ansi.Truncate(in, offset, "")
		} else {
			rows[i] = ansi.Truncate(in, offset, "") + ansi.Truncate(out, width-offset, "")
		}
	}
	return strings.Join(rows, "\n")
}

func dimView(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = dimStyle.Render(line)
	}
	return strings.Join(lines, "\n")
}
