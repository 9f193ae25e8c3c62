package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitabhanmolpain/realestate-be/internal/core/domain"
	"github.com/amitabhanmolpain/realestate-be/internal/workers"
	"github.com/amitabhanmolpain/realestate-be/test/helpers"
)

type enqueued struct {
	task *asynq.Task
	opts map[asynq.OptionType]interface{}
}

type fakeClient struct {
	tasks []enqueued
	err   error
}

func (c *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}
	e := enqueued{task: task, opts: map[asynq.OptionType]interface{}{}}
	for _, o := range opts {
		e.opts[o.Type()] = o.Value()
	}
	c.tasks = append(c.tasks, e)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default"}, nil
}

func TestEnqueuer(t *testing.T) {
	ctx := context.Background()
	seller := helpers.SessionUser("seller")
	interest := &domain.Interest{ID: uuid.New(), SellerID: seller.ID, PropertyTitle: "Villa"}
	visit := &domain.Visit{ID: uuid.New(), SellerID: seller.ID, PropertyTitle: "Villa"}

	tests := []struct {
		name      string
		enqueue   func(*workers.Enqueuer) error
		taskType  string
		queue     string
		checkOpts func(*testing.T, map[asynq.OptionType]interface{})
	}{
		{
			name:     "interest_uses_stable_task_id",
			enqueue:  func(e *workers.Enqueuer) error { return e.NotifyInterest(ctx, interest) },
			taskType: workers.TypeNotifyInterest,
			queue:    workers.QueueCritical,
			checkOpts: func(t *testing.T, opts map[asynq.OptionType]interface{}) {
				assert.Equal(t, "interest:"+interest.ID.String(), opts[asynq.TaskIDOpt])
			},
		},
		{
			name:     "visit_uses_stable_task_id",
			enqueue:  func(e *workers.Enqueuer) error { return e.NotifyVisit(ctx, visit) },
			taskType: workers.TypeNotifyVisit,
			queue:    workers.QueueCritical,
			checkOpts: func(t *testing.T, opts map[asynq.OptionType]interface{}) {
				assert.Equal(t, "visit:"+visit.ID.String(), opts[asynq.TaskIDOpt])
			},
		},
		{
			name:     "refresh_is_unique",
			enqueue:  func(e *workers.Enqueuer) error { return e.RefreshCatalog(ctx) },
			taskType: workers.TypeCatalogRefresh,
			queue:    workers.QueueLow,
			checkOpts: func(t *testing.T, opts map[asynq.OptionType]interface{}) {
				assert.Contains(t, opts, asynq.UniqueOpt)
			},
		},
		{
			name:     "import_has_timeout",
			enqueue:  func(e *workers.Enqueuer) error { return e.ImportListings(ctx, seller, "imports/a.xlsx") },
			taskType: workers.TypeListingImport,
			queue:    workers.QueueDefault,
			checkOpts: func(t *testing.T, opts map[asynq.OptionType]interface{}) {
				assert.Contains(t, opts, asynq.TimeoutOpt)
			},
		},
		{
			name:     "brochure_has_timeout",
			enqueue:  func(e *workers.Enqueuer) error { return e.ExtractBrochure(ctx, uuid.NewString(), "brochures/a.pdf") },
			taskType: workers.TypeBrochureExtract,
			queue:    workers.QueueDefault,
			checkOpts: func(t *testing.T, opts map[asynq.OptionType]interface{}) {
				assert.Contains(t, opts, asynq.TimeoutOpt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			e := workers.NewEnqueuer(client, 5, helpers.TestLogger())

			require.NoError(t, tt.enqueue(e))
			require.Len(t, client.tasks, 1)

			got := client.tasks[0]
			assert.Equal(t, tt.taskType, got.task.Type())
			assert.Equal(t, tt.queue, got.opts[asynq.QueueOpt])
			assert.Equal(t, 5, got.opts[asynq.MaxRetryOpt])
			tt.checkOpts(t, got.opts)
		})
	}
}

func TestEnqueuer_PayloadRoundTrip(t *testing.T) {
	client := &fakeClient{}
	e := workers.NewEnqueuer(client, 0, helpers.TestLogger())
	seller := helpers.SessionUser("seller")

	require.NoError(t, e.ImportListings(context.Background(), seller, "imports/x.xlsx"))
	require.Len(t, client.tasks, 1)

	var payload workers.ImportPayload
	require.NoError(t, json.Unmarshal(client.tasks[0].task.Payload(), &payload))
	assert.Equal(t, seller, payload.Seller)
	assert.Equal(t, "imports/x.xlsx", payload.ObjectKey)
	assert.Equal(t, 3, client.tasks[0].opts[asynq.MaxRetryOpt])
}

func TestEnqueuer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "duplicate_task_is_not_an_error", err: asynq.ErrDuplicateTask},
		{name: "task_id_conflict_is_not_an_error", err: asynq.ErrTaskIDConflict},
		{name: "broker_failure", err: errors.New("redis down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := workers.NewEnqueuer(&fakeClient{err: tt.err}, 3, helpers.TestLogger())
			err := e.RefreshCatalog(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMalformedPayloadSkipsRetry(t *testing.T) {
	p := workers.NewNotificationProcessor(nil, nil, helpers.TestLogger())
	err := p.NotifyInterest(context.Background(), asynq.NewTask(workers.TypeNotifyInterest, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
