package kafkapub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockWriter struct{ mock.Mock }

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return m.Called(ctx, msgs).Error(0)
}

func (m *mockWriter) Close() error { return m.Called().Error(0) }

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	hostID := kernel.NewUUID()
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		HostID:     &hostID,
		From:       order.Drafted,
		To:         order.Confirmed,
		OccurredAt: at,
	}

	var sent []kafka.Message
	writer := &mockWriter{}
	writer.On("WriteMessages", ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil).Once()

	p := newPublisher(writer, zap.NewNop())
	require.NoError(t, p.Publish(ctx, []order.StatusChanged{event}))

	require.Len(t, sent, 1)
	assert.Equal(t, event.OrderID.String(), string(sent[0].Key))

	var msg StatusChangedMessage
	require.NoError(t, json.Unmarshal(sent[0].Value, &msg))
	assert.Equal(t, "Drafted", msg.From)
	assert.Equal(t, "Confirmed", msg.To)
	require.NotNil(t, msg.HostID)
	assert.Equal(t, hostID.String(), *msg.HostID)
	assert.True(t, at.Equal(msg.OccurredAt))
	writer.AssertExpectations(t)
}

func TestPublisher_Publish_NothingToSend(t *testing.T) {
	writer := &mockWriter{}
	p := newPublisher(writer, zap.NewNop())

	require.NoError(t, p.Publish(t.Context(), nil))
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Publish_WriteError(t *testing.T) {
	writeErr := errors.New("broker down")
	writer := &mockWriter{}
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(writeErr).Once()

	p := newPublisher(writer, zap.NewNop())
	err := p.Publish(t.Context(), []order.StatusChanged{{
		OrderID:    kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		From:       order.Unknown,
		To:         order.Drafted,
		OccurredAt: time.Now(),
	}})

	require.ErrorIs(t, err, writeErr)
}
