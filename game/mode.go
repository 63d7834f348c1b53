package game

import "fmt"

type Mode uint8

const (
	ModeUnset Mode = iota
	ModeSinglePlayer
	ModeMultiplayer
)

func (m Mode) String() string {
	switch m {
	case ModeSinglePlayer:
		return "Single Player"
	case ModeMultiplayer:
		return "Multiplayer"
	default:
		return "Unset"
	}
}

func NewModeFromName(name string) (Mode, error) {
	switch name {
	case "single":
		return ModeSinglePlayer, nil
	case "multi":
		return ModeMultiplayer, nil
	default:
		return ModeUnset, fmt.Errorf("unknown game mode %q", name)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case ModeSinglePlayer:
		return []byte("single"), nil
	case ModeMultiplayer:
		return []byte("multi"), nil
	default:
		return []byte("unset"), nil
	}
}

func (m *Mode) UnmarshalText(text []byte) error {
	if string(text) == "unset" {
		*m = ModeUnset
		return nil
	}
	mode, err := NewModeFromName(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
