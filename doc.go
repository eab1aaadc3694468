// Package groupseq provides an embeddable grouped sequence container for Go.
//
// A Collection stores items that each report a group key, and presents them
// as one flat, order-preserving, randomly indexable sequence. Items of the
// same group stay contiguous; groups appear in first-use order. Lookups by
// group are O(1), lookups by flat index cost a walk over the group chain,
// and every mutation keeps the flat indices of all later groups correct
// without rescanning item data.
//
// # Quick Start
//
//	type Task struct {
//	    Queue string
//	    Name  string
//	}
//
//	func (t *Task) GroupKey() string { return t.Queue }
//
//	col := groupseq.New[string, *Task]()
//	col.Add(&Task{Queue: "billing", Name: "invoice"}) // flat index 0
//	col.Add(&Task{Queue: "mail", Name: "welcome"})    // flat index 1
//	col.Add(&Task{Queue: "billing", Name: "dunning"}) // flat index 1, mail shifts to 2
//
//	for i, task := range col.All() {
//	    fmt.Println(i, task.Name)
//	}
//
// # Flat View
//
// The flat sequence is the concatenation of the group sub-sequences in the
// order the groups first received an item. Adding to an earlier group shifts
// the apparent index of every item in later groups; the shift is applied to
// per-group offsets, never to item data.
//
// # Notifications
//
// Observers registered via OnItemAdded and OnItemRemoved run synchronously
// after each mutation, receiving the affected item and its flat index.
// Mutating the collection from inside an observer panics.
//
// # Concurrency
//
// A Collection is not safe for concurrent use. Guard it with a mutex when
// sharing across goroutines. Read-only access from multiple goroutines is
// safe once mutations have stopped, because reads never write shared state.
//
// # Observability
//
// Operations report to a pluggable MetricsCollector and a structured Logger:
//
//	metrics := &groupseq.BasicMetricsCollector{}
//	col := groupseq.New[string, *Task](
//	    groupseq.WithMetricsCollector(metrics),
//	    groupseq.WithLogger(groupseq.NewTextLogger(slog.LevelDebug)),
//	)
//
// The prommetrics subpackage adapts MetricsCollector to Prometheus.
package groupseq
