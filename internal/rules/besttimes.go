package rules

import "sync"

// MemoryBestTimes is a BestTimeStore that lives for the process. It backs
// time trials when no database is available.
type MemoryBestTimes struct {
	mu    sync.Mutex
	times map[string]float64
}

func NewMemoryBestTimes() *MemoryBestTimes {
	return &MemoryBestTimes{times: make(map[string]float64)}
}

func (s *MemoryBestTimes) BestTime(key string) (float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.times[key]
	return t, ok, nil
}

func (s *MemoryBestTimes) SaveBestTime(key string, seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.times[key] = seconds
	return nil
}
