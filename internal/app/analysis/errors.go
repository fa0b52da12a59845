package analysis

import (
	"errors"
	"fmt"

	"github.com/foot-analises/foot-stats-service/internal/providers"
)

// ErrNotFound is returned when a competition, round, match or fundamental does not exist.
var ErrNotFound = errors.New("not found")

// notFoundOr translates an upstream 404 into ErrNotFound and passes other errors through.
func notFoundOr(err error, what string, id int) error {
	if st, ok := providers.AsStatusError(err); ok && st.NotFound() {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("%s %d: %w", what, id, err)
}
