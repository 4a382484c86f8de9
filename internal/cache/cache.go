package cache

import (
	"time"

	"TradingJournal/internal/services/analytics"

	"github.com/dgraph-io/ristretto"
)

// Dashboards keeps computed dashboards for a TTL. Every entry costs 1, so
// maxCost is the number of dashboards held.
type Dashboards struct {
	c   *ristretto.Cache
	ttl time.Duration
}

func New(maxCost int64, ttl time.Duration) (*Dashboards, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Dashboards{c: c, ttl: ttl}, nil
}

func (d *Dashboards) Get(key string) (*analytics.Dashboard, bool) {
	v, ok := d.c.Get(key)
	if !ok {
		return nil, false
	}
	dash, ok := v.(*analytics.Dashboard)
	return dash, ok
}

// Set stores dash. Writes are buffered; call Wait when a following Get must see them.
func (d *Dashboards) Set(key string, dash *analytics.Dashboard) {
	if dash == nil {
		return
	}
	d.c.SetWithTTL(key, dash, 1, d.ttl)
}

func (d *Dashboards) Wait() { d.c.Wait() }

func (d *Dashboards) Del(key string) { d.c.Del(key) }

// Clear drops every entry. Any dashboard may include a written trade.
func (d *Dashboards) Clear() { d.c.Clear() }

func (d *Dashboards) Close() { d.c.Close() }
