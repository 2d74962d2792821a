package lending_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-lending/internal/core"
	"library-lending/internal/lending"
	"library-lending/internal/memory"
)

type recordingMetrics struct {
	mu       sync.Mutex
	counters map[string]map[string]string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counters: make(map[string]map[string]string)}
}

func (m *recordingMetrics) IncrementCounter(metric string, labels map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[metric] = labels
}

func (m *recordingMetrics) RecordDuration(string, time.Duration, map[string]string) {}

func (m *recordingMetrics) lastLabels(metric string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[metric]
}

func Test_NewEngine_RejectsNilUnitOfWork(t *testing.T) {
	_, err := lending.NewEngine(nil)

	assert.ErrorIs(t, err, lending.ErrNilUnitOfWork)
}

func Test_Engine_CountsTransactionOutcomes(t *testing.T) {
	// arrange
	metrics := newRecordingMetrics()
	stores := memory.NewStores()

	engine, err := lending.NewEngine(memory.NewUnitOfWork(stores), lending.WithMetrics(metrics))
	require.NoError(t, err)

	member, err := engine.RegisterMember(context.Background(), "Anna Reader", "555-0100", "1 Library Lane", core.RoleMember)
	require.NoError(t, err)

	book, err := engine.AddBook(context.Background(), "Effective Java", "Joshua Bloch")
	require.NoError(t, err)

	// act: one success, then one rejection
	_, err = engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindCheckOut)
	require.NoError(t, err)

	successLabels := metrics.lastLabels("lending_transactions_total")

	_, err = engine.RecordTransaction(context.Background(), member.ID, book.ID, core.KindCheckOut)
	require.Error(t, err)

	rejectedLabels := metrics.lastLabels("lending_transactions_total")

	// assert
	require.NotNil(t, successLabels)
	assert.Equal(t, "success", successLabels["outcome"])
	assert.Equal(t, "CheckOut", successLabels["kind"])

	require.NotNil(t, rejectedLabels)
	assert.Equal(t, "rejected", rejectedLabels["outcome"], "Domain rejections must not count as infrastructure errors")
}
