package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pest-assess-be/internal/config"
	"pest-assess-be/internal/dto"
	"pest-assess-be/internal/entity"
	"pest-assess-be/internal/pkg/logger"
	"pest-assess-be/internal/pkg/mailer"
	"pest-assess-be/internal/repository/specification"
)

type fakeLeadRepo struct {
	leads      []*entity.Lead
	created    []*entity.Lead
	findSpecs  []specification.Specification
	countSpecs []specification.Specification
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entity.Lead) error {
	r.created = append(r.created, lead)
	return nil
}

func (r *fakeLeadRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (r *fakeLeadRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.Lead, error) {
	return nil, nil
}

func (r *fakeLeadRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	r.findSpecs = specs
	return r.leads, nil
}

func (r *fakeLeadRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	r.countSpecs = specs
	return int64(len(r.leads)), nil
}

type fakeMailer struct{}

func (fakeMailer) SendRecommendations(string, string, string, []string, []mailer.PestRecommendations) error {
	return nil
}
func (fakeMailer) SendLeadNotification(string, string, string, string, string) error { return nil }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

func TestListLeadsAppliesFilters(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo, fakeMailer{}, nil, nopLogger{}, &config.Config{})

	sessionId := uuid.New()
	_, err := svc.ListLeads(context.Background(), dto.ListLeadsQuery{
		Status:    "scheduled",
		Tier:      "Severe",
		SessionId: &sessionId,
		Limit:     10,
	})
	require.NoError(t, err)

	assert.Contains(t, repo.findSpecs, specification.ByStatus{Status: "scheduled"})
	assert.Contains(t, repo.findSpecs, specification.BySeverityTier{Tier: "Severe"})
	assert.Contains(t, repo.findSpecs, specification.BySessionID{SessionID: sessionId})
	assert.Contains(t, repo.findSpecs, specification.Pagination{Limit: 10, Offset: 0})

	// The total reflects the same filters, not the page bounds.
	assert.Contains(t, repo.countSpecs, specification.ByStatus{Status: "scheduled"})
	assert.Contains(t, repo.countSpecs, specification.BySeverityTier{Tier: "Severe"})
	assert.Contains(t, repo.countSpecs, specification.BySessionID{SessionID: sessionId})
	assert.NotContains(t, repo.countSpecs, specification.Pagination{Limit: 10, Offset: 0})
}

func TestListLeadsClampsLimit(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo, fakeMailer{}, nil, nopLogger{}, &config.Config{})

	_, err := svc.ListLeads(context.Background(), dto.ListLeadsQuery{Limit: 500})
	require.NoError(t, err)

	assert.Contains(t, repo.findSpecs, specification.Pagination{Limit: 20, Offset: 0})
	assert.Empty(t, repo.countSpecs, "an unfiltered count scans the whole table")
}
