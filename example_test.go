package groupseq_test

import (
	"fmt"

	"github.com/hupe1980/groupseq"
)

type Task struct {
	Queue string
	Name  string
}

func (t *Task) GroupKey() string { return t.Queue }

// Example demonstrates the flat view over grouped items.
func Example() {
	col := groupseq.New[string, *Task]()

	col.Add(&Task{Queue: "billing", Name: "invoice"})
	col.Add(&Task{Queue: "mail", Name: "welcome"})
	col.Add(&Task{Queue: "billing", Name: "dunning"})

	for i, task := range col.All() {
		fmt.Println(i, task.Queue, task.Name)
	}
	// Output:
	// 0 billing invoice
	// 1 billing dunning
	// 2 mail welcome
}

// Example_groups demonstrates per-group access and iteration.
func Example_groups() {
	col := groupseq.New[string, *Task]()

	col.Add(&Task{Queue: "billing", Name: "invoice"})
	col.Add(&Task{Queue: "mail", Name: "welcome"})
	col.Add(&Task{Queue: "billing", Name: "dunning"})

	fmt.Println("billing count:", col.CountOf("billing"))

	for queue, tasks := range col.Groups() {
		fmt.Println(queue, len(tasks))
	}
	// Output:
	// billing count: 2
	// billing 2
	// mail 1
}

// Example_notifications demonstrates observing mutations with flat indices.
func Example_notifications() {
	col := groupseq.New[string, *Task]()

	col.OnItemAdded(func(task *Task, index int) {
		fmt.Println("added", task.Name, "at", index)
	})
	col.OnItemRemoved(func(task *Task, index int) {
		fmt.Println("removed", task.Name, "at", index)
	})

	col.Add(&Task{Queue: "billing", Name: "invoice"})
	col.Add(&Task{Queue: "mail", Name: "welcome"})
	col.Add(&Task{Queue: "billing", Name: "dunning"})

	col.RemoveGroup("billing")
	// Output:
	// added invoice at 0
	// added welcome at 1
	// added dunning at 1
	// removed dunning at 1
	// removed invoice at 0
}

// Example_indexBitmap demonstrates group selection as a Roaring bitmap.
func Example_indexBitmap() {
	col := groupseq.New[string, *Task]()

	col.Add(&Task{Queue: "billing", Name: "invoice"})
	col.Add(&Task{Queue: "mail", Name: "welcome"})
	col.Add(&Task{Queue: "billing", Name: "dunning"})

	rb := col.IndexBitmap("billing")
	fmt.Println("billing occupies", rb.String())
	// Output:
	// billing occupies {0,1}
}
