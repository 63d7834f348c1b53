package board

import "fmt"

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (s Side) MarshalText() ([]byte, error) {
	switch s {
	case SideWhite:
		return []byte("white"), nil
	case SideBlack:
		return []byte("black"), nil
	default:
		return nil, fmt.Errorf("cannot encode side %d", uint8(s))
	}
}

func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*s = SideWhite
	case "black":
		*s = SideBlack
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}
