package view

// Status is the loading state of one independently fetched page section.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// Section tracks one asynchronous result. Every Begin issues a new sequence
// number and only the result carrying the latest one is applied, so a slow
// earlier request can never overwrite a newer one.
type Section[T any] struct {
	Status Status `json:"status"`
	Seq    uint64 `json:"seq"`
	Value  T      `json:"value"`
	Error  string `json:"error,omitempty"`
}

// Begin marks the section loading under a fresh sequence number.
func (s Section[T]) Begin() Section[T] {
	var zero T
	s.Seq++
	s.Status = StatusLoading
	s.Value = zero
	s.Error = ""
	return s
}

// Succeed applies value if seq is the pending request. The boolean reports
// whether the result was applied.
func (s Section[T]) Succeed(seq uint64, value T) (Section[T], bool) {
	if !s.pending(seq) {
		return s, false
	}
	s.Status = StatusSuccess
	s.Value = value
	return s, true
}

// Fail records a user-visible message and a fallback value if seq is the
// pending request.
func (s Section[T]) Fail(seq uint64, fallback T, message string) (Section[T], bool) {
	if !s.pending(seq) {
		return s, false
	}
	s.Status = StatusError
	s.Value = fallback
	s.Error = message
	return s, true
}

func (s Section[T]) pending(seq uint64) bool {
	return s.Status == StatusLoading && seq == s.Seq
}
