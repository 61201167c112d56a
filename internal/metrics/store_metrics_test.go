package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"example.com/order-management/internal/domain/validation"
)

func TestObserve_CountsByLabels(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewStoreMetricsWithRegisterer(registry)

	m.Observe("order", "save", ResultOK, time.Now())
	m.Observe("order", "save", ResultOK, time.Now())
	m.Observe("item", "get", ResultNotFound, time.Now())

	require.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("order", "save", ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("item", "get", ResultNotFound)))
	require.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestNewStoreMetrics_ReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewStoreMetricsWithRegisterer(registry)
	second := NewStoreMetricsWithRegisterer(registry)

	first.Observe("item", "delete", ResultOK, time.Now())

	require.Same(t, first.operations, second.operations)
	require.Equal(t, 1.0, testutil.ToFloat64(second.operations.WithLabelValues("item", "delete", ResultOK)))
}

func TestObserve_NilIsNoop(t *testing.T) {
	var m *StoreMetrics

	require.NotPanics(t, func() {
		m.Observe("order", "all", ResultOK, time.Now())
	})
}

func TestResult(t *testing.T) {
	notFound := errors.New("not found")

	require.Equal(t, ResultOK, Result(nil))
	require.Equal(t, ResultInvalid, Result(validation.MissingField("item", "name")))
	require.Equal(t, ResultNotFound, Result(fmt.Errorf("get: %w", notFound), notFound))
	require.Equal(t, ResultError, Result(errors.New("disk full"), notFound))
}
