package search

import "container/heap"

type openItem struct {
	cell  Cell
	f     int
	seq   int
	index int
}

// openQueue orders by fScore, then by insertion sequence so ties resolve to
// the cell that entered the frontier first.
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
	*q = old[:n-1]
	item.index = -1
	return item
}

// openSet is the frontier: a heap plus a membership index.
type openSet struct {
	queue   openQueue
	members map[Cell]*openItem
	nextSeq int
}

func newOpenSet() *openSet {
	return &openSet{members: make(map[Cell]*openItem)}
}

func (s *openSet) Len() int { return s.queue.Len() }

// Upsert inserts the cell or re-scores it in place, keeping its original sequence.
func (s *openSet) Upsert(c Cell, f int) {
	if item, ok := s.members[c]; ok {
		item.f = f
		heap.Fix(&s.queue, item.index)
		return
	}
	item := &openItem{cell: c, f: f, seq: s.nextSeq}
	s.nextSeq++
	heap.Push(&s.queue, item)
	s.members[c] = item
}

func (s *openSet) PopMin() Cell {
	item := heap.Pop(&s.queue).(*openItem)
	delete(s.members, item.cell)
	return item.cell
}
