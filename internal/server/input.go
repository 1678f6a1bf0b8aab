package server

import "unicode/utf8"

// Action is one key command from a preview session.
type Action int

const (
	ActionNone Action = iota
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut
	ActionNextBasis
	ActionNextKind
	ActionNextMetric
	ActionNextRamp
	ActionMoreOctaves
	ActionFewerOctaves
	ActionReseed
	ActionQuit
)

// parseInput converts raw bytes into session actions.
// Handles WASD, arrow key escape sequences, the field keys, Q, and Ctrl-C.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionPanUp)
			case 'B':
				actions = append(actions, ActionPanDown)
			case 'C':
				actions = append(actions, ActionPanRight)
			case 'D':
				actions = append(actions, ActionPanLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, ActionPanUp)
		case 's', 'S':
			actions = append(actions, ActionPanDown)
		case 'a', 'A':
			actions = append(actions, ActionPanLeft)
		case 'd', 'D':
			actions = append(actions, ActionPanRight)
		case '+', '=':
			actions = append(actions, ActionZoomIn)
		case '-', '_':
			actions = append(actions, ActionZoomOut)
		case 'b', 'B':
			actions = append(actions, ActionNextBasis)
		case 'f', 'F':
			actions = append(actions, ActionNextKind)
		case 'm', 'M':
			actions = append(actions, ActionNextMetric)
		case 'c', 'C':
			actions = append(actions, ActionNextRamp)
		case ']':
			actions = append(actions, ActionMoreOctaves)
		case '[':
			actions = append(actions, ActionFewerOctaves)
		case 'r', 'R':
			actions = append(actions, ActionReseed)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
