package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveComputation(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveComputation("get_available_slots", nil, 12)
	m.ObserveComputation("get_available_slots", nil, 0)
	m.ObserveComputation("get_available_slots", errors.New("db down"), -1)
	m.ObserveComputation("is_slot_available", nil, -1)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.AvailabilityComputations.WithLabelValues("get_available_slots", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AvailabilityComputations.WithLabelValues("get_available_slots", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AvailabilityComputations.WithLabelValues("is_slot_available", "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AvailabilitySlots))
}

func TestObserveComputation_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveComputation("get_available_slots", nil, 3)
	})
}
