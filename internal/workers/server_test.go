package workers_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/workers"
)

type fakeRegistrar struct {
	specs map[string]string
	err   error
}

func (r *fakeRegistrar) Register(cronspec string, task *asynq.Task, _ ...asynq.Option) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.specs[task.Type()] = cronspec
	return task.Type(), nil
}

func TestRegisterPeriodic(t *testing.T) {
	t.Run("skips_empty_specs", func(t *testing.T) {
		r := &fakeRegistrar{specs: map[string]string{}}
		err := workers.RegisterPeriodic(r, workers.Schedules{
			ExpireVisits:   "@every 1h",
			CatalogRefresh: "@every 10m",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			workers.TypeExpireVisits:   "@every 1h",
			workers.TypeCatalogRefresh: "@every 10m",
		}, r.specs)
	})

	t.Run("register_failure", func(t *testing.T) {
		r := &fakeRegistrar{err: errors.New("bad spec")}
		err := workers.RegisterPeriodic(r, workers.Schedules{ExpireVisits: "nonsense"})
		assert.ErrorContains(t, err, workers.TypeExpireVisits)
	})
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		retry int
		want  time.Duration
	}{
		{0, time.Second},
		{3, 8 * time.Second},
		{9, 512 * time.Second},
		{10, 10 * time.Minute},
		{64, 10 * time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, workers.ExponentialBackoff(tt.retry, nil, nil), "retry %d", tt.retry)
	}
}
