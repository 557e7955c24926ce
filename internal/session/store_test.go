package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RevCBH/refinery/internal/finalspec"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	for _, iterations := range []int{0, 1, 10} {
		t.Run(fmt.Sprintf("%d_iterations", iterations), func(t *testing.T) {
			store := newTestStore(t)
			sess := New(sampleDraft())
			s := sampleSuggestion("s-1")

			for i := 1; i <= iterations; i++ {
				sess.RecordIteration(Iteration{
					Number:               i,
					SuggestionsPresented: 2,
					Feedback: Feedback{
						Decisions: []Decision{
							NewDecision(s, ActionAccept, "good"),
							NewCustomDecision(s, "extra requirement", "added"),
						},
						OverallSatisfaction: 4,
						WantsToContinue:     i < iterations,
					},
					ChangesApplied:  2,
					Timestamp:       time.Now(),
					DurationSeconds: 1.5,
				})
			}

			require.NoError(t, store.Save(sess))

			loaded, err := store.Load(sess.ID)
			require.NoError(t, err)

			assert.Equal(t, sess.ID, loaded.ID)
			assert.Equal(t, sess.Finalized, loaded.Finalized)
			require.Len(t, loaded.Iterations, iterations)
			require.Len(t, loaded.Decisions, iterations*2)
			assert.InDelta(t, sess.AcceptanceRate(), loaded.AcceptanceRate(), 1e-9)

			if iterations > 0 {
				last := loaded.Iterations[iterations-1]
				assert.Equal(t, iterations, last.Number)
				assert.Equal(t, 4, last.Feedback.OverallSatisfaction)
				assert.InDelta(t, 1.5, last.DurationSeconds, 1e-9)
				require.NotNil(t, last.Feedback.Decisions[0].Suggestion.Content.EdgeCase)
				assert.Equal(t, "ec-1", last.Feedback.Decisions[0].Suggestion.Content.EdgeCase.EdgeCaseID)
				assert.Equal(t, "extra requirement", last.Feedback.Decisions[1].CustomContent)
			}
		})
	}
}

func TestStore_RoundTripFinalized(t *testing.T) {
	store := newTestStore(t)
	sess := New(sampleDraft())
	sess.Finalize(&finalspec.Spec{
		SessionID:        sess.ID,
		ConfidenceScore:  0.85,
		ReadyForDispatch: true,
	})

	require.NoError(t, store.Save(sess))

	loaded, err := store.Load(sess.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Finalized)
	require.NotNil(t, loaded.FinalSpec)
	assert.InDelta(t, 0.85, loaded.FinalSpec.ConfidenceScore, 1e-9)
}

func TestStore_LoadMissingReturnsErrNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load("01JUNKJUNKJUNKJUNKJUNKJUNK")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_ListSkipsMalformedFiles(t *testing.T) {
	store := newTestStore(t)

	first := New(sampleDraft())
	require.NoError(t, store.Save(first))

	second := New(sampleDraft())
	second.Finalize(&finalspec.Spec{SessionID: second.ID})
	require.NoError(t, store.Save(second))

	// Garbage alongside real sessions.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "junk.yaml"), []byte("{{{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "notes.txt"), []byte("ignore"), 0644))

	summaries, err := store.List()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ids := map[string]bool{}
	for _, s := range summaries {
		ids[s.ID] = true
	}
	assert.True(t, ids[first.ID])
	assert.True(t, ids[second.ID])

	for _, s := range summaries {
		if s.ID == second.ID {
			assert.True(t, s.Finalized)
		}
	}
}
