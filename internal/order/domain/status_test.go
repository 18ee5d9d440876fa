package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPartition(t *testing.T) {
	deducted := []OrderStatus{StatusPending, StatusConfirmed, StatusShipping, StatusCompleted}
	restocked := []OrderStatus{StatusCancelled, StatusReturned, StatusRestocked}

	for _, s := range deducted {
		assert.Equal(t, PartitionDeducted, StatusPartition(s), "status %q", s)
	}
	for _, s := range restocked {
		assert.Equal(t, PartitionRestocked, StatusPartition(s), "status %q", s)
	}

	assert.Equal(t, PartitionUnknown, StatusPartition("archived"))
	assert.Equal(t, PartitionUnknown, StatusPartition(""))
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusRestocked.Valid())
	assert.False(t, OrderStatus("archived").Valid())
	assert.False(t, OrderStatus("PENDING").Valid())
}

func TestTransitionAction(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want StockAction
	}{
		{"deducted to restocked", StatusShipping, StatusCancelled, ActionRestock},
		{"deducted to restocked via return", StatusPending, StatusReturned, ActionRestock},
		{"restocked to deducted", StatusCancelled, StatusConfirmed, ActionDeduct},
		{"restocked to deducted via pending", StatusReturned, StatusPending, ActionDeduct},
		{"within deducted", StatusPending, StatusCompleted, ActionNone},
		{"within restocked", StatusReturned, StatusRestocked, ActionNone},
		{"same status", StatusShipping, StatusShipping, ActionNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TransitionAction(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransitionActionUnknownStatus(t *testing.T) {
	_, err := TransitionAction(StatusPending, "archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStatus))

	_, err = TransitionAction("archived", StatusPending)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStatus))

	// Unknown on both sides still fails rather than no-oping.
	_, err = TransitionAction("draft", "archived")
	require.Error(t, err)
}
