package reservation

import (
	"errors"
	"slices"
)

var ErrInvalidSeatNumber = errors.New("seat number must be positive")

// SeatNumber is 1-based.
type SeatNumber int

func (s SeatNumber) Int() int {
	return int(s)
}

func (s SeatNumber) IsValid() bool {
	return s > 0
}

// NextFreeSeat returns the lowest seat in 1..totalSeats that is not in reserved.
// Gaps left by cancellations are therefore reused before any higher number.
// ok is false when every seat is taken. reserved may be unsorted and may contain
// numbers outside the range; those are ignored.
func NextFreeSeat(totalSeats int, reserved []int) (SeatNumber, bool) {
	if totalSeats <= 0 {
		return 0, false
	}

	taken := slices.Clone(reserved)
	slices.Sort(taken)

	candidate := 1
	for _, s := range taken {
		if s < candidate {
			continue
		}
		if s > candidate {
			break
		}
		candidate++
	}

	if candidate > totalSeats {
		return 0, false
	}
	return SeatNumber(candidate), true
}
