package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gripper-viewer/internal/commands"
	"gripper-viewer/internal/logger"
)

func newTestTerminal() (*Terminal, *logger.Logger, *int) {
	log := logger.NewMemory()
	reg := commands.NewRegistry()
	runs := 0
	fs := commands.NewFlagSet("ping")
	fail := fs.Bool("fail", false, "")
	reg.Register("ping", "[--fail]", fs, func() error {
		if *fail {
			return errors.New("ping: failed")
		}
		runs++
		return nil
	})
	return New(log, reg), log, &runs
}

func TestSubmitRunsCommand(t *testing.T) {
	term, log, runs := newTestTerminal()
	assert.True(t, term.Submit("cmd ping"))
	assert.Equal(t, 1, *runs)
	assert.True(t, strings.HasSuffix(log.Lines()[0], "> cmd ping"))
}

func TestSubmitLogsErrors(t *testing.T) {
	term, log, runs := newTestTerminal()
	assert.False(t, term.Submit("cmd ping --fail"))
	assert.False(t, term.Submit("cmd nope"))
	assert.Zero(t, *runs)

	lines := log.Lines()
	assert.Contains(t, lines[1], "ERROR ping: failed")
	assert.Contains(t, lines[3], "ERROR unknown command: nope")
}

func TestSubmitPrintsUsage(t *testing.T) {
	term, log, _ := newTestTerminal()
	assert.False(t, term.Submit("what can I do"))
	lines := log.Lines()
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "cmd ping [--fail]"))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, warnColor, colorFor("[2026-01-02 03:04:05] WARN Size 1.5 missing 1 part(s)."))
	assert.Equal(t, errorColor, colorFor("[2026-01-02 03:04:05] ERROR boom"))
	assert.Equal(t, normalColor, colorFor("[2026-01-02 03:04:05] WARNING is just text"))
	assert.Equal(t, normalColor, colorFor("short"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 250)
	assert.Len(t, truncate(long), maxLineLength)
	assert.Equal(t, "ok", truncate("ok"))
}
