package prommetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/groupseq"
)

type task struct {
	queue string
	name  string
}

func (t *task) GroupKey() string { return t.queue }

func TestCollector(t *testing.T) {
	t.Run("RecordsMutations", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := New(func(o *Options) {
			o.Registerer = reg
		})

		col := groupseq.New[string, *task](groupseq.WithMetricsCollector(collector))

		_, err := col.Add(&task{queue: "q1", name: "t1"})
		require.NoError(t, err)
		_, err = col.Add(&task{queue: "q1", name: "t2"})
		require.NoError(t, err)
		_, err = col.Add(&task{queue: "q2", name: "t3"})
		require.NoError(t, err)

		require.NoError(t, col.RemoveAt(0))
		col.ClearGroup("q1")

		assert.Equal(t, float64(3), testutil.ToFloat64(collector.mutations.WithLabelValues("add", "success")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.mutations.WithLabelValues("remove", "success")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.mutations.WithLabelValues("clear", "success")))
		assert.Equal(t, float64(1), testutil.ToFloat64(collector.clearedItems))
	})

	t.Run("RecordsErrors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := New(func(o *Options) {
			o.Registerer = reg
		})

		col := groupseq.New[string, *task](groupseq.WithMetricsCollector(collector))

		err := col.RemoveAt(5)
		require.Error(t, err)

		assert.Equal(t, float64(1), testutil.ToFloat64(collector.mutations.WithLabelValues("remove", "error")))
	})

	t.Run("LatencySeriesPerOpAndStatus", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := New(func(o *Options) {
			o.Registerer = reg
		})

		collector.RecordAdd(time.Millisecond, nil)
		collector.RecordAdd(2*time.Millisecond, assert.AnError)
		collector.RecordSet(time.Millisecond, nil)

		assert.Equal(t, 3, testutil.CollectAndCount(collector.opLatency))
	})

	t.Run("ClearItemsAccumulate", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := New(func(o *Options) {
			o.Registerer = reg
		})

		collector.RecordClear(4, time.Millisecond)
		collector.RecordClear(2, time.Millisecond)

		assert.Equal(t, float64(6), testutil.ToFloat64(collector.clearedItems))
	})

	t.Run("Namespace", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := New(func(o *Options) {
			o.Registerer = reg
			o.Namespace = "myapp"
		})

		collector.RecordAdd(time.Millisecond, nil)

		families, err := reg.Gather()
		require.NoError(t, err)

		var names []string
		for _, fam := range families {
			names = append(names, fam.GetName())
		}
		assert.Contains(t, names, "myapp_mutations_total")
		assert.Contains(t, names, "myapp_operation_latency_seconds")
	})
}
