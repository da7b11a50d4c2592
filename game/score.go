package game

import "fmt"

const (
	SideLeft  = 0 // player
	SideRight = 1 // computer
)

// Score is indexed by side and lives as long as the match.
type Score [2]int

func (s *Score) Point(side int) {
	s[side]++
}

// Text renders a side's points as at least two digits.
func (s Score) Text(side int) string {
	return fmt.Sprintf("%02d", s[side])
}
