package repository

import (
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/models"
)

const StepsCollection = "steps"

type StepRepo struct {
	store *db.Store
}

func NewStepRepo(store *db.Store) *StepRepo {
	return &StepRepo{store: store}
}

func (r *StepRepo) List() []db.Record {
	return r.store.Read(StepsCollection)
}

func (r *StepRepo) Create(step *models.Step) (db.Record, error) {
	rec, err := toRecord(step)
	if err != nil {
		return nil, err
	}
	err = r.store.Update(StepsCollection, func(records []db.Record) ([]db.Record, error) {
		return append(records, rec), nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Merge copies every key of patch over the first record whose id matches,
// including the id itself. Keys absent from patch are left untouched.
func (r *StepRepo) Merge(id string, patch map[string]any) (db.Record, error) {
	var merged db.Record
	err := r.store.Update(StepsCollection, func(records []db.Record) ([]db.Record, error) {
		for i, rec := range records {
			if rec == nil || idString(rec["id"]) != id {
				continue
			}
			for k, v := range patch {
				rec[k] = v
			}
			records[i] = rec
			merged = rec
			return records, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
