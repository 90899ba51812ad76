package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCreateAndList(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	created, err := svc.Create(context.Background(), 3, "New order received")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = svc.Create(context.Background(), 99, "Someone else's")
	require.NoError(t, err)

	notifications, err := svc.ListByProvider(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New order received", notifications[0].Message)

	empty, err := svc.ListByProvider(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
