package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/cond/pkg/cond"
	"gopkg.in/yaml.v3"
)

// Decision is one evaluation of a watched predicate
type Decision struct {
	Step  int       `yaml:"step"`
	Label string    `yaml:"label"`
	Value bool      `yaml:"value"`
	At    time.Time `yaml:"at"`
}

type Recorder struct {
	mu        sync.Mutex
	id        uuid.UUID
	createdAt time.Time
	decisions []Decision
}

type report struct {
	ID        string     `yaml:"id"`
	CreatedAt time.Time  `yaml:"created_at"`
	Decisions []Decision `yaml:"decisions"`
}

func NewRecorder() *Recorder {
	return &Recorder{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Watch wraps p so that every call is recorded under label. p is still
// called once per evaluation; a panic in p is not recorded.
func (r *Recorder) Watch(label string, p cond.Predicate) cond.Predicate {
	return func() bool {
		v := p()
		r.record(label, v)
		return v
	}
}

func (r *Recorder) record(label string, v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decisions = append(r.decisions, Decision{
		Step:  len(r.decisions) + 1,
		Label: label,
		Value: v,
		At:    time.Now().UTC(),
	})
}

// Decisions returns a copy of the recorded decisions in evaluation order
func (r *Recorder) Decisions() []Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Decision, len(r.decisions))
	copy(out, r.decisions)
	return out
}

// Taken returns the first decision that evaluated to true
func (r *Recorder) Taken() (Decision, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.decisions {
		if d.Value {
			return d, true
		}
	}
	return Decision{}, false
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.decisions = nil
}

func (r *Recorder) ID() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r *Recorder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Recorder) YAML() ([]byte, error) {
	return yaml.Marshal(report{
		ID:        r.id.String(),
		CreatedAt: r.createdAt,
		Decisions: r.Decisions(),
	})
}
