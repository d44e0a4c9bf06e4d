package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somix-network/somix-ledger/internal/adapter"
	"github.com/somix-network/somix-ledger/internal/mocks"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

func newTestDispatcher(t *testing.T, maxAttempts int) (*Dispatcher, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	d := NewDispatcher(st, adapter.RealClock{}, Options{
		BatchSize:   10,
		WorkerPool:  2,
		MaxAttempts: maxAttempts,
	})
	return d, st
}

func TestDrainMarksDoneOnSuccess(t *testing.T) {
	d, st := newTestDispatcher(t, 3)

	task := schema.OutboxTask{ID: 1, EventID: "01H", Kind: schema.OutboxKindStarCredit, Payload: []byte(`{}`)}
	st.EXPECT().DueOutboxTasks(gomock.Any(), 10, gomock.Any()).Return([]schema.OutboxTask{task}, nil)
	st.EXPECT().MarkOutboxTaskDone(gomock.Any(), uint64(1)).Return(nil)

	var handled bool
	d.Register(schema.OutboxKindStarCredit, func(ctx context.Context, payload []byte) error {
		handled = true
		return nil
	})

	require.NoError(t, d.Drain(context.Background()))
	assert.True(t, handled)
}

func TestDrainReschedulesOnFailure(t *testing.T) {
	d, st := newTestDispatcher(t, 3)

	task := schema.OutboxTask{ID: 2, Kind: schema.OutboxKindNotification, Payload: []byte(`{}`), Attempts: 0}
	st.EXPECT().DueOutboxTasks(gomock.Any(), 10, gomock.Any()).Return([]schema.OutboxTask{task}, nil)
	st.EXPECT().RescheduleOutboxTask(gomock.Any(), uint64(2), 1, gomock.Any(), gomock.Any()).Return(nil)

	d.Register(schema.OutboxKindNotification, func(ctx context.Context, payload []byte) error {
		return errors.New("downstream unavailable")
	})

	require.NoError(t, d.Drain(context.Background()))
}

func TestDrainFailsTaskAfterAttemptBudget(t *testing.T) {
	d, st := newTestDispatcher(t, 3)

	task := schema.OutboxTask{ID: 3, Kind: schema.OutboxKindNotification, Payload: []byte(`{}`), Attempts: 2}
	st.EXPECT().DueOutboxTasks(gomock.Any(), 10, gomock.Any()).Return([]schema.OutboxTask{task}, nil)
	st.EXPECT().MarkOutboxTaskFailed(gomock.Any(), uint64(3), 3, gomock.Any()).Return(nil)

	d.Register(schema.OutboxKindNotification, func(ctx context.Context, payload []byte) error {
		return errors.New("still broken")
	})

	require.NoError(t, d.Drain(context.Background()))
}

func TestDrainFailsUnknownKind(t *testing.T) {
	d, st := newTestDispatcher(t, 3)

	task := schema.OutboxTask{ID: 4, Kind: schema.OutboxKind("mystery"), Payload: []byte(`{}`), Attempts: 0}
	st.EXPECT().DueOutboxTasks(gomock.Any(), 10, gomock.Any()).Return([]schema.OutboxTask{task}, nil)
	st.EXPECT().MarkOutboxTaskFailed(gomock.Any(), uint64(4), 1, gomock.Any()).Return(nil)

	require.NoError(t, d.Drain(context.Background()))
}

func TestDrainEmptyBatch(t *testing.T) {
	d, st := newTestDispatcher(t, 3)

	st.EXPECT().DueOutboxTasks(gomock.Any(), 10, gomock.Any()).Return(nil, nil)
	require.NoError(t, d.Drain(context.Background()))
}

func TestRetryDelayDoublesAndCaps(t *testing.T) {
	assert.Equal(t, time.Second, retryDelay(1))
	assert.Equal(t, 2*time.Second, retryDelay(2))
	assert.Equal(t, 4*time.Second, retryDelay(3))
	assert.Equal(t, 5*time.Minute, retryDelay(20))
}
