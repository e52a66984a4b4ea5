package host

import "sync"

// DefaultSchedulerBufferSize is the default queue depth of a SerialScheduler.
const DefaultSchedulerBufferSize = 64

// SerialScheduler implements receiver.Scheduler on a single background
// goroutine, so all deliveries scheduled through it run sequentially in
// submission order.
//
// Example:
//
//	s := host.NewSerialScheduler()
//	defer s.Close()
//
//	_, err := receiver.RegisterWith(ctx, h, rcv, filter, "", s, receiver.NotExported)
type SerialScheduler struct {
	fns  chan func()
	done chan struct{}
	once sync.Once
}

// NewSerialScheduler creates and starts a SerialScheduler.
func NewSerialScheduler() *SerialScheduler {
	s := &SerialScheduler{
		fns:  make(chan func(), DefaultSchedulerBufferSize),
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *SerialScheduler) run() {
	for {
		select {
		case fn := <-s.fns:
			fn()
		case <-s.done:
			// Drain what was queued before shutdown.
			for {
				select {
				case fn := <-s.fns:
					fn()
				default:
					return
				}
			}
		}
	}
}

// Schedule queues fn for sequential execution. Calls made after Close are
// dropped.
func (s *SerialScheduler) Schedule(fn func()) {
	select {
	case <-s.done:
	case s.fns <- fn:
	}
}

// Close stops the scheduler after draining queued work. Safe to call
// multiple times.
func (s *SerialScheduler) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}
