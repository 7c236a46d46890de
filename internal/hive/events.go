package hive

import (
	"fmt"

	"github.com/google/uuid"
)

// SyncEventType classifies roster and cycle events.
type SyncEventType string

const (
	EventWorkerAdded    SyncEventType = "worker_added"
	EventWorkerExists   SyncEventType = "worker_exists"
	EventWorkerRemoved  SyncEventType = "worker_removed"
	EventWorkerNotFound SyncEventType = "worker_not_found"
	EventSyncCycle      SyncEventType = "sync_cycle"
)

// SyncEvent records a notable hive occurrence. Roster mutations and sync
// cycles each emit one.
type SyncEvent struct {
	ID        string        `json:"id"`
	Timestamp float64       `json:"timestamp"`
	Type      SyncEventType `json:"type"`
	WorkerID  string        `json:"worker_id,omitempty"`
	Phase     float64       `json:"phase"`
	Coherence float64       `json:"coherence"`
	Message   string        `json:"message"`
}

func newEvent(q QueenState, kind SyncEventType, workerID, message string) SyncEvent {
	return SyncEvent{
		ID:        uuid.NewString(),
		Timestamp: q.Time,
		Type:      kind,
		WorkerID:  workerID,
		Phase:     q.Phase,
		Coherence: q.Coherence,
		Message:   message,
	}
}

// AddWorker appends a worker to the roster, recomputes coherence, and emits
// an event. Adding an id that already exists leaves the hive unchanged and
// reports it in the event instead of failing.
func AddWorker(q QueenState, w WorkerState) (QueenState, SyncEvent) {
	for _, existing := range q.Workers {
		if existing.ID == w.ID {
			return q, newEvent(q, EventWorkerExists, w.ID,
				fmt.Sprintf("worker %q already present", w.ID))
		}
	}
	workers := make([]WorkerState, len(q.Workers), len(q.Workers)+1)
	copy(workers, q.Workers)
	q.Workers = append(workers, w)
	q.Coherence = MeasureHiveCoherence(q)
	return q, newEvent(q, EventWorkerAdded, w.ID,
		fmt.Sprintf("worker %q joined the hive", w.ID))
}

// RemoveWorker drops a worker by id, recomputes coherence, and emits an
// event. An unknown id is a no-op that still emits a "not found" event.
func RemoveWorker(q QueenState, id string) (QueenState, SyncEvent) {
	idx := -1
	for i, w := range q.Workers {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return q, newEvent(q, EventWorkerNotFound, id,
			fmt.Sprintf("worker %q not found", id))
	}
	workers := make([]WorkerState, 0, len(q.Workers)-1)
	workers = append(workers, q.Workers[:idx]...)
	workers = append(workers, q.Workers[idx+1:]...)
	q.Workers = workers
	q.Coherence = MeasureHiveCoherence(q)
	return q, newEvent(q, EventWorkerRemoved, id,
		fmt.Sprintf("worker %q left the hive", id))
}
