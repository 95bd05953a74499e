package service

import (
	"encoding/json"
	"path/filepath"
	"testing"

	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
	"github.com/parisxmas/foreverfamily/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin_StoresRecord(t *testing.T) {
	svc, store := newIntake(t)

	sub, err := svc.Join(JoinRequest{Name: "A", Email: "a@x.com", City: "X", Interest: "volunteer"})
	require.NoError(t, err)

	assert.Equal(t, testNow.UnixMilli(), sub.ID)
	assert.Equal(t, "2025-01-01T10:00:00.123Z", sub.Timestamp)

	stored := store.Read(repository.SubmissionsCollection)
	require.Len(t, stored, 1)
	assert.Equal(t, json.Number("1735725600123"), stored[0]["id"])
	assert.Equal(t, "A", stored[0]["name"])
	assert.Equal(t, "a@x.com", stored[0]["email"])
	assert.Equal(t, "X", stored[0]["city"])
	assert.Equal(t, "volunteer", stored[0]["interest"])
	assert.Equal(t, "", stored[0]["phone"])
	assert.Equal(t, "", stored[0]["message"])
}

func TestJoin_MissingRequiredField(t *testing.T) {
	full := JoinRequest{Name: "A", Email: "a@x.com", City: "X", Interest: "volunteer"}
	tests := map[string]func(r *JoinRequest){
		"name":     func(r *JoinRequest) { r.Name = "" },
		"email":    func(r *JoinRequest) { r.Email = "" },
		"city":     func(r *JoinRequest) { r.City = "" },
		"interest": func(r *JoinRequest) { r.Interest = "" },
	}
	for field, mutate := range tests {
		t.Run(field, func(t *testing.T) {
			svc, store := newIntake(t)
			req := full
			mutate(&req)

			_, err := svc.Join(req)

			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.TypeValidation, appErr.Type)
			assert.Equal(t, "Required fields missing.", appErr.Message)
			assert.NoFileExists(t, filepath.Join(store.Dir(), "submissions.json"))
		})
	}
}

func TestReferral_Defaults(t *testing.T) {
	svc, store := newIntake(t)

	ref, err := svc.Referral(ReferralRequest{Name: "A", ReferralName: "B", Situation: "needs help"})
	require.NoError(t, err)

	assert.Equal(t, "unspecified", ref.Urgency)
	assert.Equal(t, "", ref.Relationship)
	stored := store.Read(repository.ReferralsCollection)
	require.Len(t, stored, 1)
	assert.Equal(t, "unspecified", stored[0]["urgency"])
	assert.Equal(t, "needs help", stored[0]["situation"])
}

func TestReferral_KeepsGivenUrgency(t *testing.T) {
	svc, _ := newIntake(t)

	ref, err := svc.Referral(ReferralRequest{Name: "A", ReferralName: "B", Situation: "s", Urgency: "high", Relationship: "friend"})
	require.NoError(t, err)

	assert.Equal(t, "high", ref.Urgency)
	assert.Equal(t, "friend", ref.Relationship)
}

func TestReferral_MissingRequiredField(t *testing.T) {
	svc, store := newIntake(t)

	_, err := svc.Referral(ReferralRequest{Name: "A", Situation: "s"})

	assert.Equal(t, apperrors.TypeValidation, apperrors.As(err).Type)
	assert.NoFileExists(t, filepath.Join(store.Dir(), "referrals.json"))
}
