package knowledge_test

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/procurra/procurra-api/internal/app/knowledge"
	"github.com/procurra/procurra-api/internal/domain"
)

// TestReadinessMonotonic verifies that for any number of PROCESSING
// observations followed by any terminal observation, the ready handle is
// published exactly when ACTIVE is observed and never changes afterwards.
func TestReadinessMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		processing := rapid.IntRange(0, 10).Draw(rt, "processing_polls")
		terminal := rapid.SampledFrom([]domain.SourceState{
			domain.StateActive,
			domain.StateFailed,
			domain.StateSubmitted, // anything non-PROCESSING/non-ACTIVE is terminal failure
		}).Draw(rt, "terminal_state")

		states := make([]domain.SourceState, 0, processing+1)
		for i := 0; i < processing; i++ {
			states = append(states, domain.StateProcessing)
		}
		states = append(states, terminal)

		store := &scriptedStore{states: states}
		mgr := knowledge.NewManager(store, time.Microsecond)

		src, err := mgr.Submit(context.Background(), "doc.pdf", "application/pdf", "Test Doc")
		if err != nil {
			rt.Fatalf("Submit failed: %v", err)
		}

		ready, err := mgr.AwaitReady(context.Background(), src)

		if terminal == domain.StateActive {
			if err != nil {
				rt.Fatalf("expected success on ACTIVE, got %v", err)
			}
			if !ready.Ready() {
				rt.Fatalf("expected ready source, got %+v", ready)
			}
			if mgr.Handle() != ready {
				rt.Fatal("handle must be the source AwaitReady returned")
			}
		} else {
			if err == nil {
				rt.Fatalf("expected failure on terminal state %s", terminal)
			}
			if mgr.Handle() != nil {
				rt.Fatal("handle must stay nil on failure")
			}
		}

		// exactly one poll per observation, no hidden retries of the terminal state
		if got := store.pollCount(); got != processing+1 {
			rt.Fatalf("expected %d polls, got %d", processing+1, got)
		}

		// the published handle never regresses
		before := mgr.Handle()
		_, _ = store.GetState(context.Background(), src.Name)
		if mgr.Handle() != before {
			rt.Fatal("handle changed after AwaitReady completed")
		}
	})
}
