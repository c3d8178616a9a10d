package solver

import "github.com/beka-birhanu/vinom-solver/maze"

type openItem struct {
	cell  maze.CellPosition
	g     int
	f     float64
	seq   uint64 // insertion order, breaks f ties
	index int
}

// openQueue is a container/heap min-heap ordered by f, then insertion order.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
