package domain

import (
	"time"

	"github.com/m04kA/salon-booking/pkg/types"
)

// DaySnapshot is the availability ledger of one stylist on one date
type DaySnapshot struct {
	StylistID     int64
	Date          time.Time
	DayBlocked    bool
	BlockedSlots  []types.TimeString
	OccupiedSlots []types.TimeString
}

// IsBlocked returns true if t has a slot-level block
func (s *DaySnapshot) IsBlocked(t types.TimeString) bool {
	return containsTime(s.BlockedSlots, t)
}

// IsOccupied returns true if a pending or confirmed appointment holds t
func (s *DaySnapshot) IsOccupied(t types.TimeString) bool {
	return containsTime(s.OccupiedSlots, t)
}

// IsFree returns true if a new appointment could take t
func (s *DaySnapshot) IsFree(t types.TimeString) bool {
	return !s.DayBlocked && !s.IsBlocked(t) && !s.IsOccupied(t)
}

// FreeSlots filters the grid down to free times, preserving grid order
func (s *DaySnapshot) FreeSlots(grid []types.TimeString) []types.TimeString {
	free := make([]types.TimeString, 0, len(grid))
	if s.DayBlocked {
		return free
	}
	for _, t := range grid {
		if s.IsFree(t) {
			free = append(free, t)
		}
	}
	return free
}

func containsTime(list []types.TimeString, t types.TimeString) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}
