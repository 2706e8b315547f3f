package kernel

// pidNode is one arena slot of a Queue. next is the index of the
// following node, or -1 at the tail; it is also reused to thread the
// free list when a node is returned, so Queue never shrinks its
// backing arena once grown (spec.md §9: index-based storage replaces
// the original's malloc'd linked list nodes).
type pidNode struct {
	pid  PID
	next int32
}

// Queue is an insertion-ordered FIFO of PIDs with O(1) head/tail
// access, shared by ready queues and semaphore wait queues
// (spec.md §4.1). A PID already present may be enqueued again by a
// caller that doesn't follow single-instance discipline; Queue itself
// does not deduplicate, matching the original's plain linked list.
type Queue struct {
	nodes     []pidNode
	free      int32
	head, tail int32
}

const queueNil = -1

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{free: queueNil, head: queueNil, tail: queueNil}
}

// Enqueue appends pid to the tail in O(1) amortized.
func (q *Queue) Enqueue(pid PID) {
	idx := q.alloc(pid)
	if q.tail == queueNil {
		q.head = idx
	} else {
		q.nodes[q.tail].next = idx
	}
	q.tail = idx
}

// Dequeue removes and returns the head, or (0, false) if empty.
func (q *Queue) Dequeue() (PID, bool) {
	if q.head == queueNil {
		return 0, false
	}
	idx := q.head
	pid := q.nodes[idx].pid
	q.head = q.nodes[idx].next
	if q.head == queueNil {
		q.tail = queueNil
	}
	q.release(idx)
	return pid, true
}

// Head peeks the front of the queue without removing it.
func (q *Queue) Head() (PID, bool) {
	if q.head == queueNil {
		return 0, false
	}
	return q.nodes[q.head].pid, true
}

// Empty reports whether the queue holds no entries.
func (q *Queue) Empty() bool {
	return q.head == queueNil
}

func (q *Queue) alloc(pid PID) int32 {
	if q.free != queueNil {
		idx := q.free
		q.free = q.nodes[idx].next
		q.nodes[idx] = pidNode{pid: pid, next: queueNil}
		return idx
	}
	q.nodes = append(q.nodes, pidNode{pid: pid, next: queueNil})
	return int32(len(q.nodes) - 1)
}

func (q *Queue) release(idx int32) {
	q.nodes[idx].next = q.free
	q.free = idx
}
