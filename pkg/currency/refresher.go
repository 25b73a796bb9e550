package currency

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher periodically reloads a registry from a Lister on a cron
// schedule. Failures are logged and the previous table contents are kept
// until the next successful run.
type Refresher struct {
	registry *Registry
	lister   Lister
	timeout  time.Duration

	cron *cron.Cron
	log  *logrus.Entry
}

// NewRefresher schedules a periodic Registry.Refresh. The spec uses the
// standard 5-field cron syntax, e.g. "*/30 * * * *" for every 30 minutes.
func NewRefresher(registry *Registry, lister Lister, spec string) (*Refresher, error) {
	r := &Refresher{
		registry: registry,
		lister:   lister,
		timeout:  time.Minute,
		cron:     cron.New(),
		log:      logrus.StandardLogger().WithField("type", "currency/refresher"),
	}

	if _, err := r.cron.AddFunc(spec, r.refresh); err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins running the schedule in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop halts the schedule. A refresh already in flight runs to completion.
func (r *Refresher) Stop() {
	r.cron.Stop()
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.registry.Refresh(ctx, r.lister); err != nil {
		r.log.WithError(err).Warn("currency refresh failed")
		return
	}

	r.log.WithField("size", r.registry.Size()).Debug("currency registry refreshed")
}
