// Package tui runs the game in a terminal through Bubble Tea: the fixed-rate
// tick loop, key handling, the level picker, the results scoreboard and the
// SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that sent it; a loop whose model is gone just stops.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopIDs atomic.Int64

// nextLoop returns a fresh tick loop identifier.
func nextLoop() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
