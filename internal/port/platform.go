package port

import "time"

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewTransactionID(at time.Time) string
}
