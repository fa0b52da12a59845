package stats

import (
	"errors"
	"fmt"
)

// ErrMisaligned is matched by every AlignmentError.
var ErrMisaligned = errors.New("stats: team categories are not aligned")

// AlignmentError reports where two teams' category lists diverge.
// Index is -1 when the lists differ only in length.
type AlignmentError struct {
	TeamA, TeamB int
	LenA, LenB   int
	Index        int
	NameA, NameB string
}

func (e *AlignmentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("stats: team %d reports %d categories, team %d reports %d", e.TeamA, e.LenA, e.TeamB, e.LenB)
	}
	return fmt.Sprintf("stats: category %d differs (team %d %q, team %d %q)", e.Index, e.TeamA, e.NameA, e.TeamB, e.NameB)
}

func (e *AlignmentError) Is(target error) bool {
	return target == ErrMisaligned
}
