package engine

import (
	"container/heap"
	"errors"
	"fmt"
	"time"
)

// ErrNonPositiveDelay is returned when a delay function yields a delay <= 0
var ErrNonPositiveDelay = errors.New("non-positive reschedule delay")

// DelayFunc computes the delay until the next run, evaluated each time a task is rescheduled
type DelayFunc func() (time.Duration, error)

// CancelToken identifies a scheduled recurring task
type CancelToken uint64

// scheduledTask is one recurring task in the due-time heap
type scheduledTask struct {
	token CancelToken
	due   time.Time
	seq   uint64 // FIFO order among equal due times
	task  func()
	delay DelayFunc
	index int
}

type taskQueue []*scheduledTask

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*scheduledTask)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs self-rescheduling tasks on the caller's goroutine
// Tasks fire only inside RunDue, so tasks and game ticks never interleave
// Not safe for concurrent use
type Scheduler struct {
	clock TimeProvider
	queue taskQueue
	tasks map[CancelToken]*scheduledTask

	nextToken CancelToken
	seq       uint64
}

// NewScheduler creates a scheduler reading time from clock
func NewScheduler(clock TimeProvider) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make(map[CancelToken]*scheduledTask),
	}
}

// RunEveryCalculated schedules task to run at the next RunDue, then again after
// each delay returned by delay, which is evaluated after every run
func (s *Scheduler) RunEveryCalculated(task func(), delay DelayFunc) CancelToken {
	s.nextToken++
	t := &scheduledTask{
		token: s.nextToken,
		due:   s.clock.Now(),
		task:  task,
		delay: delay,
	}
	s.push(t)
	s.tasks[t.token] = t
	return t.token
}

// Cancel removes a task, returns false if it was not scheduled
func (s *Scheduler) Cancel(token CancelToken) bool {
	t, ok := s.tasks[token]
	if !ok {
		return false
	}
	delete(s.tasks, token)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// CancelAll cancels every given token and returns how many were still scheduled
func (s *Scheduler) CancelAll(tokens ...CancelToken) int {
	n := 0
	for _, tok := range tokens {
		if s.Cancel(tok) {
			n++
		}
	}
	return n
}

// Pending returns the number of scheduled tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// NextDue returns the earliest due time
func (s *Scheduler) NextDue() (time.Time, bool) {
	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].due, true
}

// RunDue runs every task due at or before now and reschedules it
// A delay error cancels the failing task and is returned immediately
func (s *Scheduler) RunDue(now time.Time) error {
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(*scheduledTask)

		t.task()

		// Task may have cancelled itself or everything
		if _, live := s.tasks[t.token]; !live {
			continue
		}

		d, err := t.delay()
		if err == nil && d <= 0 {
			err = fmt.Errorf("%w: %v", ErrNonPositiveDelay, d)
		}
		if err != nil {
			delete(s.tasks, t.token)
			return fmt.Errorf("task %d: %w", t.token, err)
		}

		t.due = now.Add(d)
		s.push(t)
	}
	return nil
}

func (s *Scheduler) push(t *scheduledTask) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}
