package ports

import "time"

// Clock provides the current time to handlers that stamp reservations and
// sweep expirations. Abstracted so tests can pin it.
type Clock interface {
	Now() time.Time
}
