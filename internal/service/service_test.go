package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/repository"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 1, 1, 10, 0, 0, 123_000_000, time.UTC)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	s, err := db.NewStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func newIntake(t *testing.T) (*IntakeService, *db.Store) {
	t.Helper()
	store := newTestStore(t)
	svc := NewIntakeService(
		repository.NewSubmissionRepo(store),
		repository.NewReferralRepo(store),
		clockwork.NewFakeClockAt(testNow),
	)
	return svc, store
}
