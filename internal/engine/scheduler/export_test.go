package scheduler

// JobStatuses returns a copy of the status of every job of the last run.
// This is exported for testing purposes only.
func (s *Scheduler) JobStatuses() []JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]JobStatus(nil), s.jobStatus...)
}
