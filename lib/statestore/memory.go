package statestore

// Memory is an in-memory Store for tests.
type Memory struct {
	statuses map[string]string
}

func NewMemory() *Memory {
	return &Memory{statuses: map[string]string{}}
}

func (s *Memory) Load() map[string]string {
	out := make(map[string]string, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}

func (s *Memory) Save(statuses map[string]string) error {
	out := make(map[string]string, len(statuses))
	for k, v := range statuses {
		out[k] = v
	}
	s.statuses = out
	return nil
}
