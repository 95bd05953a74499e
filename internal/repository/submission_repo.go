package repository

import (
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/models"
)

const SubmissionsCollection = "submissions"

type SubmissionRepo struct {
	store *db.Store
}

func NewSubmissionRepo(store *db.Store) *SubmissionRepo {
	return &SubmissionRepo{store: store}
}

func (r *SubmissionRepo) Create(sub *models.Submission) error {
	return appendRecord(r.store, SubmissionsCollection, sub)
}

func (r *SubmissionRepo) List() []db.Record {
	return r.store.Read(SubmissionsCollection)
}
