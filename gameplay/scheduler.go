package gameplay

import "time"

// Job is a callback registered with a Scheduler.
type Job struct {
	seq      uint64
	due      time.Duration
	interval time.Duration // 0 for one-shot jobs
	fn       func()
	done     bool
}

// Cancel stops the job from firing again. Safe on nil and finished jobs.
func (j *Job) Cancel() {
	if j != nil {
		j.done = true
	}
}

// Active reports whether the job will still fire.
func (j *Job) Active() bool {
	return j != nil && !j.done
}

// Scheduler runs delayed and periodic callbacks on a virtual clock that the
// frame loop advances. Callbacks run on the caller's goroutine inside Advance.
type Scheduler struct {
	now  time.Duration
	seq  uint64
	jobs []*Job
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, delay after the current clock.
func (s *Scheduler) After(delay time.Duration, fn func()) *Job {
	if delay < 0 {
		delay = 0
	}
	return s.add(delay, 0, fn)
}

// Every runs fn each interval. Due times advance by exactly one interval per
// run, so a long Advance fires every missed run and the schedule never drifts.
// A non-positive interval schedules nothing and returns nil.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Job {
	if interval <= 0 {
		return nil
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) *Job {
	s.seq++
	j := &Job{seq: s.seq, due: s.now + delay, interval: interval, fn: fn}
	s.jobs = append(s.jobs, j)
	return j
}

// Advance moves the clock forward by dt, firing due jobs in due-time order.
// Jobs with equal due times fire in the order they were scheduled.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	end := s.now + dt
	for {
		j := s.nextDue(end)
		if j == nil {
			break
		}
		s.now = j.due
		if j.interval > 0 {
			j.due += j.interval
		} else {
			j.done = true
		}
		j.fn()
	}
	s.now = end
	s.compact()
}

func (s *Scheduler) nextDue(end time.Duration) *Job {
	var next *Job
	for _, j := range s.jobs {
		if j.done || j.due > end {
			continue
		}
		if next == nil || j.due < next.due || (j.due == next.due && j.seq < next.seq) {
			next = j
		}
	}
	return next
}

func (s *Scheduler) compact() {
	live := s.jobs[:0]
	for _, j := range s.jobs {
		if !j.done {
			live = append(live, j)
		}
	}
	for i := len(live); i < len(s.jobs); i++ {
		s.jobs[i] = nil
	}
	s.jobs = live
}

// Pending returns the number of jobs that will still fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, j := range s.jobs {
		if !j.done {
			n++
		}
	}
	return n
}

// Clear cancels every job.
func (s *Scheduler) Clear() {
	for _, j := range s.jobs {
		j.done = true
	}
	s.compact()
}
