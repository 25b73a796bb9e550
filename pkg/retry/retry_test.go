package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ethauvin/frankfurter-go/pkg/retry/backoff"
)

type testSleeper struct {
	sleepTimes []time.Duration
}

func (t *testSleeper) Sleep(d time.Duration) { t.sleepTimes = append(t.sleepTimes, d) }

func TestRetrier(t *testing.T) {
	retriableErr := errors.New("retriable")
	r := NewRetrier(Limit(5), RetriableErrors(retriableErr))

	// Happy path always goes through
	attempts, err := r.Retry(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, uint(1), attempts)

	// Test ordering does not matter, by triggering 1 filter, then the other.
	attempts, err = r.Retry(func() error { return errors.New("unknown") })
	assert.Error(t, err)
	assert.Equal(t, uint(1), attempts)

	attempts, err = r.Retry(func() error { return retriableErr })
	assert.EqualError(t, retriableErr, err.Error())
	assert.Equal(t, uint(5), attempts)
}

func TestLimit(t *testing.T) {
	strategy := Limit(2)

	// One iteration has been executed. Try again.
	assert.True(t, strategy(1, errors.New("test")))
	// Two iterations have been executed. Do not try again.
	assert.False(t, strategy(2, errors.New("test")))

	counter, err := Retry(func() error {
		return errors.New("test")
	}, Limit(2))

	assert.EqualError(t, err, "test")
	assert.Equal(t, uint(2), counter)
}

func TestNonRetriableErrors(t *testing.T) {
	nonRetriable := errors.New("non retriable")
	strategy := NonRetriableErrors(nonRetriable)

	assert.False(t, strategy(1, nonRetriable))
	assert.True(t, strategy(1, errors.New("other")))
}

func TestBackoff(t *testing.T) {
	ts := &testSleeper{}
	sleeperImpl = ts
	defer func() { sleeperImpl = &realSleeper{} }()

	_, err := Retry(func() error { return errors.New("err") },
		Limit(4),
		Backoff(backoff.Linear(time.Second), 2*time.Second),
	)

	assert.Error(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 2 * time.Second}, ts.sleepTimes)
}
