package usecase

import (
	"errors"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms).
var deadlockBackoffs = []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

func backoffFor(attempt int) time.Duration {
	idx := attempt - 1
	if idx >= len(deadlockBackoffs) {
		idx = len(deadlockBackoffs) - 1
	}
	base := deadlockBackoffs[idx]
	// ±20% jitter
	jitter := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
	return jitter
}
