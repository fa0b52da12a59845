package outcomes

import (
	"errors"
	"fmt"
)

// ErrNoHistory is matched by every HistoryError.
var ErrNoHistory = errors.New("outcomes: no played matches")

// HistoryError names the team that has no played match to learn from.
type HistoryError struct {
	TeamID int
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("outcomes: team %d has no played matches", e.TeamID)
}

func (e *HistoryError) Is(target error) bool {
	return target == ErrNoHistory
}
