package currency

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRefresherInvalidSpec(t *testing.T) {
	_, err := NewRefresher(New(), ListerFunc(nil), "not a cron spec")
	assert.Error(t, err)
}

func TestRefresherRefreshes(t *testing.T) {
	registry := New()

	lister := ListerFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{"XPD": "Palladium"}, nil
	})

	refresher, err := NewRefresher(registry, lister, "@hourly")
	require.NoError(t, err)

	refresher.refresh()
	assert.Equal(t, DefaultCurrencyCount+1, registry.Size())
}

func TestRefresherKeepsTableOnFailure(t *testing.T) {
	registry := New()

	lister := ListerFunc(func(ctx context.Context) (map[string]string, error) {
		return nil, errors.New("unreachable")
	})

	refresher, err := NewRefresher(registry, lister, "@hourly")
	require.NoError(t, err)

	refresher.refresh()
	assert.Equal(t, DefaultCurrencyCount, registry.Size())
}

func TestRefresherStartStop(t *testing.T) {
	registry := New()

	lister := ListerFunc(func(ctx context.Context) (map[string]string, error) {
		return map[string]string{}, nil
	})

	refresher, err := NewRefresher(registry, lister, "@every 1h")
	require.NoError(t, err)

	refresher.Start()
	refresher.Stop()
}
