package health

import (
	"context"
	"time"

	"magazyn-plikow/internal/cache"
)

const (
	probeKey      = "test"
	probeTimeout  = 2 * time.Second
	probeCapacity = 10
	probeCacheTTL = 60 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the /ping payload. Access times are in seconds.
type Status struct {
	Cache              bool    `json:"cache"`
	CacheAccessTime    float64 `json:"cache_access_time"`
	Database           bool    `json:"database"`
	DatabaseAccessTime float64 `json:"database_access_time"`
}

type Checker struct {
	db Pinger
}

func NewChecker(db Pinger) *Checker {
	return &Checker{db: db}
}

func (c *Checker) Check(ctx context.Context) Status {
	var st Status
	st.CacheAccessTime = timed(func() { st.Cache = checkCache() })
	st.DatabaseAccessTime = timed(func() { st.Database = c.checkDatabase(ctx) })
	return st
}

// checkCache exercises a scratch cache the same way logins use the session cache.
func checkCache() bool {
	probe := cache.New[string, string](probeCapacity, probeCacheTTL)
	probe.Put(probeKey, probeKey)
	v, ok := probe.Get(probeKey)
	probe.Delete(probeKey)
	return ok && v == probeKey && probe.Len() == 0
}

func (c *Checker) checkDatabase(ctx context.Context) bool {
	if c.db == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return c.db.Ping(ctx) == nil
}

func timed(fn func()) float64 {
	start := time.Now()
	fn()
	return time.Since(start).Seconds()
}
