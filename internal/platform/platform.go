package platform

import (
	"fmt"
	"time"

	"bankops/internal/port"

	"github.com/google/uuid"
)

const (
	StrategyTime = "time"
	StrategyUUID = "uuid"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimeIDGenerator derives transaction ids from the processing instant.
// Two ids generated within the same millisecond collide.
type TimeIDGenerator struct{}

func (TimeIDGenerator) NewTransactionID(at time.Time) string {
	return fmt.Sprintf("txn_%d", at.UnixMilli())
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewTransactionID(_ time.Time) string {
	return "txn_" + uuid.NewString()
}

func NewIDGenerator(strategy string) (port.IDGenerator, error) {
	switch strategy {
	case "", StrategyTime:
		return TimeIDGenerator{}, nil
	case StrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown transaction id strategy %q", strategy)
	}
}
