package ruleinput

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/fixtures"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRuleInputRepo struct {
	byCode map[string]ruleinput.RuleInput
	order  []string
}

func (r *memRuleInputRepo) GetByID(_ context.Context, id string, companyID string) (ruleinput.RuleInput, error) {
	for _, ri := range r.byCode {
		if ri.ID == id && ri.CompanyID == companyID {
			return ri, nil
		}
	}
	return ruleinput.RuleInput{}, ruleinput.ErrRuleInputNotFound
}

func (r *memRuleInputRepo) List(_ context.Context, companyID string, concept *ruleinput.TypeConcept) ([]ruleinput.RuleInput, error) {
	var out []ruleinput.RuleInput
	for _, code := range r.order {
		ri := r.byCode[code]
		if ri.CompanyID != companyID {
			continue
		}
		if concept != nil && ri.Input.TypeConcept != *concept {
			continue
		}
		out = append(out, ri)
	}
	return out, nil
}

func (r *memRuleInputRepo) Upsert(_ context.Context, ri ruleinput.RuleInput) (ruleinput.RuleInput, error) {
	key := ri.CompanyID + "/" + ri.Code
	if existing, ok := r.byCode[key]; ok {
		ri.ID = existing.ID
	} else {
		ri.ID = fmt.Sprintf("ri-%d", len(r.order)+1)
		r.order = append(r.order, key)
	}
	r.byCode[key] = ri
	return ri, nil
}

func newRuleInputTestService(t *testing.T) (ruleinput.RuleInputService, *memRuleInputRepo, context.Context) {
	t.Helper()
	repo := &memRuleInputRepo{byCode: make(map[string]ruleinput.RuleInput)}
	svc := NewRuleInputService(passthroughTransactor{}, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ja := jwtauth.New("HS256", []byte("secret"), nil)
	ctx, err := jwt.NewContext(context.Background(), ja, "user-1", "company-1")
	require.NoError(t, err)
	return svc, repo, ctx
}

func TestRuleInputService_SeedIsIdempotent(t *testing.T) {
	svc, repo, ctx := newRuleInputTestService(t)

	first, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	second, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Seeded, second.Seeded)
	assert.Len(t, repo.order, first.Seeded)
}

func TestRuleInputService_List(t *testing.T) {
	svc, _, ctx := newRuleInputTestService(t)
	_, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	deductions, err := svc.List(ctx, "deduction")
	require.NoError(t, err)

	assert.Len(t, deductions, len(fixtures.DefaultDeductionRuleInputs()))
	assert.Len(t, all, len(fixtures.DefaultRuleInputs("company-1")))
	for _, d := range deductions {
		assert.Equal(t, "deduction", d.TypeConcept)
	}

	_, err = svc.List(ctx, "bonus")
	assert.ErrorIs(t, err, ruleinput.ErrInvalidTypeConcept)
}
