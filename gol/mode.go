package gol

import (
	"fmt"
	"strings"
)

// Mode governs how input is interpreted each frame.
type Mode int

const (
	DesignMode Mode = iota
	SimulationMode
	HelpMode
)

// toggled swaps Design and Simulation. Help is left alone.
func (m Mode) toggled() Mode {
	switch m {
	case DesignMode:
		return SimulationMode
	case SimulationMode:
		return DesignMode
	default:
		return m
	}
}

func (m Mode) String() string {
	switch m {
	case DesignMode:
		return "design"
	case SimulationMode:
		return "simulation"
	case HelpMode:
		return "help"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "design":
		return DesignMode, nil
	case "simulation":
		return SimulationMode, nil
	case "help":
		return HelpMode, nil
	}
	return HelpMode, fmt.Errorf("unknown mode %q", s)
}
