package game

// Direction is shared by player input, paddle movement and serves.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionUp
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	}
	return "none"
}

// Controls holds the last vertical direction requested by the player.
// There is no release: a direction stays active until the opposite one arrives.
type Controls struct {
	Up   bool
	Down bool
}

func (c *Controls) SetDirection(direction Direction) {
	switch direction {
	case DirectionDown:
		c.Down = true
		c.Up = false
	case DirectionUp:
		c.Down = false
		c.Up = true
	}
}

// Direction resolves the flags into a paddle direction, up first.
func (c *Controls) Direction() Direction {
	if c.Up {
		return DirectionUp
	} else if c.Down {
		return DirectionDown
	}
	return DirectionNone
}
