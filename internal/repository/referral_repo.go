package repository

import (
	"github.com/parisxmas/foreverfamily/internal/db"
	"github.com/parisxmas/foreverfamily/internal/models"
)

const ReferralsCollection = "referrals"

type ReferralRepo struct {
	store *db.Store
}

func NewReferralRepo(store *db.Store) *ReferralRepo {
	return &ReferralRepo{store: store}
}

func (r *ReferralRepo) Create(ref *models.Referral) error {
	return appendRecord(r.store, ReferralsCollection, ref)
}

func (r *ReferralRepo) List() []db.Record {
	return r.store.Read(ReferralsCollection)
}
