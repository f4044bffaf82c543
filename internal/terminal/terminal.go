package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/commands"
	"gripper-viewer/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLength    = 200
)

var (
	// Reused every frame.
	barColor    = rl.NewColor(15, 23, 42, 255)
	lineColor   = rl.NewColor(51, 65, 85, 255)
	logBgColor  = rl.NewColor(2, 6, 23, 230)
	warnColor   = rl.NewColor(251, 191, 36, 255)
	errorColor  = rl.NewColor(248, 113, 113, 255)
	normalColor = rl.NewColor(203, 213, 225, 255)
)

// Terminal is the diagnostics console at the bottom of the screen, toggled with ESC. It shows the
// most recent log lines and runs "cmd ..." lines through the command registry.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

// New returns a closed Terminal that logs lines and runs "cmd ..." through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Submit echoes line to the log and runs it. Lines that are not commands print the usage.
// It reports whether a command ran successfully.
func (t *Terminal) Submit(line string) bool {
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd || len(args) == 0 || args[0] == "help" {
		for _, u := range t.reg.Usage() {
			t.log.Log(u)
		}
		return false
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Errorf("%v", err)
		return false
	}
	return true
}

// Update handles ESC (toggle) and, when open, typing, paste, backspace and enter. Call once per
// frame. It reports whether a command ran this frame.
func (t *Terminal) Update() bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return false
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		return t.Submit(line)
	}
	return false
}

// colorFor picks a color from the level prefix the logger writes after the timestamp.
func colorFor(line string) rl.Color {
	switch {
	case containsLevel(line, "WARN "):
		return warnColor
	case containsLevel(line, "ERROR "):
		return errorColor
	}
	return normalColor
}

// containsLevel checks for the level marker right after "[yyyy-mm-dd hh:mm:ss] ".
func containsLevel(line, level string) bool {
	const stampLen = len("[2006-01-02 15:04:05] ")
	return len(line) >= stampLen+len(level) && line[stampLen:stampLen+len(level)] == level
}

func truncate(line string) string {
	if len(line) <= maxLineLength {
		return line
	}
	return line[:maxLineLength-3] + "..."
}

// Contains reports whether p is over the open console.
func (t *Terminal) Contains(p rl.Vector2) bool {
	if !t.open {
		return false
	}
	top := float32(rl.GetScreenHeight() - BarHeight - maxLinesOnScreen*lineHeight)
	return p.Y >= top
}

// Draw draws the input bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - BarHeight

	logHeight := int32(maxLinesOnScreen * lineHeight)
	logY := barY - logHeight
	if logY < 0 {
		logHeight, logY = barY, 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, logY, screenW, logHeight, logBgColor)
	}
	lines := t.log.Lines()
	start := max(len(lines)-maxLinesOnScreen, 0)
	for i := start; i < len(lines); i++ {
		y := logY + int32(i-start)*lineHeight + padding
		t.drawText(truncate(lines[i]), padding, y, colorFor(lines[i]))
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	t.drawText(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) drawText(text string, x, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
		return
	}
	rl.DrawText(text, x, y, fontSize, c)
}
