package manager

import (
	"time"
)

// GameRecord is one finished life.
type GameRecord struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Cause     string
}

// StateManager keeps in-memory statistics for the current run of the
// program. Nothing is written to disk.
type StateManager struct {
	played     int
	bestLength int
	history    []GameRecord
	maxHistory int
}

func NewStateManager(maxHistory int) *StateManager {
	return &StateManager{
		history:    make([]GameRecord, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// AddGame records a finished life, dropping the oldest record when full.
func (sm *StateManager) AddGame(rec GameRecord) {
	sm.played++
	if rec.Length > sm.bestLength {
		sm.bestLength = rec.Length
	}
	if sm.maxHistory > 0 && len(sm.history) >= sm.maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, rec)
}

// Stats summarises the run so far.
type Stats struct {
	Played     int
	BestLength int
	LastCause  string
}

func (sm *StateManager) Stats() Stats {
	st := Stats{Played: sm.played, BestLength: sm.bestLength}
	if last, ok := sm.Last(); ok {
		st.LastCause = last.Cause
	}
	return st
}

func (sm *StateManager) GetBestLength() int {
	return sm.bestLength
}

// GetHistory returns a copy of the recorded lives, oldest first.
func (sm *StateManager) GetHistory() []GameRecord {
	out := make([]GameRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

// Last returns the most recent record.
func (sm *StateManager) Last() (GameRecord, bool) {
	if len(sm.history) == 0 {
		return GameRecord{}, false
	}
	return sm.history[len(sm.history)-1], true
}

// AverageLength is the mean final length over the kept history.
func (sm *StateManager) AverageLength() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range sm.history {
		sum += rec.Length
	}
	return float64(sum) / float64(len(sm.history))
}
