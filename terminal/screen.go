package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Color modes
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// NewScreen creates and initializes a tcell screen with mouse motion reporting
func NewScreen(colorMode string) (tcell.Screen, error) {
	// tcell reads these during initialization
	switch colorMode {
	case Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorTrueColor:
		if os.Getenv("COLORTERM") == "" {
			os.Setenv("COLORTERM", "truecolor")
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Setup(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Setup initializes an existing screen for play
func Setup(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	return nil
}
