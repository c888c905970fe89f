package valto

import (
	"time"

	"github.com/google/uuid"
)

// UUIDOf decodes a canonical UUID string.
func UUIDOf() Func[uuid.UUID] {
	return Via(StringOf(), func(s string) (uuid.UUID, error) {
		return uuid.Parse(s)
	})
}

// TimeOf decodes a timestamp string in the given layout.
func TimeOf(layout string) Func[time.Time] {
	return Via(StringOf(), func(s string) (time.Time, error) {
		return time.Parse(layout, s)
	})
}

// RFC3339Of is TimeOf(time.RFC3339).
func RFC3339Of() Func[time.Time] { return TimeOf(time.RFC3339) }
