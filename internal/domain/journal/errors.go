package journal

import "errors"

// ErrNotEnoughEntries is returned when weekly statistics are requested
// with fewer than seven stored entries.
var ErrNotEnoughEntries = errors.New("journal: not enough entries for weekly stats")
