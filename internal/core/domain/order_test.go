package domain_test

import (
	"testing"

	"github.com/hanifwid/printmart/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{domain.OrderStatusPending, domain.OrderStatusPaid, true},
		{domain.OrderStatusPending, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPending, domain.OrderStatusShipped, false},
		{domain.OrderStatusPending, domain.OrderStatusCompleted, false},
		{domain.OrderStatusPaid, domain.OrderStatusShipped, true},
		{domain.OrderStatusPaid, domain.OrderStatusCancelled, true},
		{domain.OrderStatusPaid, domain.OrderStatusPending, false},
		{domain.OrderStatusShipped, domain.OrderStatusCompleted, true},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled, true},
		{domain.OrderStatusShipped, domain.OrderStatusPaid, false},
		{domain.OrderStatusCompleted, domain.OrderStatusCancelled, false},
		{domain.OrderStatusCancelled, domain.OrderStatusPending, false},
	}

	for _, test := range tests {
		t.Run(string(test.from)+" to "+string(test.to), func(t *testing.T) {
			assert.Equal(t, test.allowed, test.from.CanTransitionTo(test.to))
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, domain.OrderStatusPending.Valid())
	assert.True(t, domain.OrderStatusCancelled.Valid())
	assert.False(t, domain.OrderStatus("LOST").Valid())
	assert.False(t, domain.OrderStatus("").Valid())
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, domain.OrderStatusCompleted.Terminal())
	assert.True(t, domain.OrderStatusCancelled.Terminal())
	assert.False(t, domain.OrderStatusPending.Terminal())
	assert.False(t, domain.OrderStatus("LOST").Terminal())
}

func TestOrderShortID(t *testing.T) {
	o := domain.Order{ID: "3f2504e0-4f89-41d3-9a0c-0305e82c3301"}
	assert.Equal(t, "3f2504e0", o.ShortID())

	short := domain.Order{ID: "abc"}
	assert.Equal(t, "abc", short.ShortID())
}
