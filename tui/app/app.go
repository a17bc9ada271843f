// Package app is the interactive front end: a bubbletea program driving a
// session.Session.
package app

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/upxgui/config"
	"github.com/grovetools/upxgui/logging"
	"github.com/grovetools/upxgui/session"
	"github.com/grovetools/upxgui/tui"
)

// Run shows the interactive screen until the user quits. Log output to the
// terminal is suppressed while the screen is up. When store is non-nil,
// changes made to its file by other programs are picked up live.
func Run(ctx context.Context, sess *session.Session, store *config.Store) error {
	logger := logging.NewLogger("tui")
	tui.InitializeTUI()

	restore := logging.SetGlobalOutput(io.Discard)
	defer restore()

	m := New(ctx, sess)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if store != nil {
		w, err := config.NewWatcher(store, 0, func(path string) {
			p.Send(configChangedMsg{path: path})
		})
		if err != nil {
			logger.WithError(err).Warn("Config watcher unavailable")
		} else {
			wctx, cancel := context.WithCancel(ctx)
			defer cancel()
			go w.Start(wctx)
		}
	}

	final, err := p.Run()
	if fm, ok := final.(*Model); ok && fm.Running() {
		sess.Cancel()
	}
	return err
}
