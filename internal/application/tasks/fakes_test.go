package tasks

import (
	"context"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/pkg/logger"
	"github.com/rs/zerolog"
)

// Fakes en memoria compartidos por los tests del paquete.

func testLogger() *logger.Logger {
	return logger.FromZerolog(zerolog.Nop())
}

type fakeTaskRepo struct {
	tasks     map[string]*entity.Task
	created   []*entity.Task
	updates   map[string]repository.TaskStatusUpdate
	updateErr error
	batchErr  error
}

func newFakeTaskRepo(seed ...*entity.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{
		tasks:   make(map[string]*entity.Task),
		updates: make(map[string]repository.TaskStatusUpdate),
	}
	for _, t := range seed {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	r.created = append(r.created, task)
	return nil
}

func (r *fakeTaskRepo) CreateBatch(_ context.Context, tasks []*entity.Task) error {
	if r.batchErr != nil {
		return r.batchErr
	}
	for _, t := range tasks {
		r.tasks[t.ID] = t
		r.created = append(r.created, t)
	}
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	return r.tasks[id], nil
}

func (r *fakeTaskRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, id := range ids {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, id string, upd repository.TaskStatusUpdate) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updates[id] = upd
	if t, ok := r.tasks[id]; ok {
		t.Status = upd.Status
		t.CompletedAt = upd.CompletedAt
		t.CompletedBy = upd.CompletedBy
	}
	return nil
}

func (r *fakeTaskRepo) ListByCompany(_ context.Context, companyID, status string, limit, offset int) ([]*entity.Task, int, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.CompanyID == companyID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	return out, len(out), nil
}

func (r *fakeTaskRepo) ListPastDueUncompleted(_ context.Context, before time.Time) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.Status != entity.TaskStatusCompleted && t.DueDate.Before(before) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	entries   []*entity.ActivityLog
	insertErr error
}

func (r *fakeActivityRepo) Insert(_ context.Context, entry *entity.ActivityLog) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeActivityRepo) ListByUser(_ context.Context, _ string, _ int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(seed ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	for _, c := range seed {
		r.companies[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) GetByIDAndUser(_ context.Context, id, userID string) (*entity.Company, error) {
	c := r.companies[id]
	if c == nil || c.UserID != userID {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) GetByFiscalCode(_ context.Context, userID, fiscalCode string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.UserID == userID && c.FiscalCode == fiscalCode {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) ListByUser(_ context.Context, userID, status string, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTemplateRepo struct {
	templates []*entity.TaskTemplate
}

func (r *fakeTemplateRepo) Create(_ context.Context, tpl *entity.TaskTemplate) error {
	r.templates = append(r.templates, tpl)
	return nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, id string) (*entity.TaskTemplate, error) {
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, tpl *entity.TaskTemplate) error {
	return nil
}

func (r *fakeTemplateRepo) List(_ context.Context, activeOnly bool) ([]*entity.TaskTemplate, error) {
	if !activeOnly {
		return r.templates, nil
	}
	var out []*entity.TaskTemplate
	for _, t := range r.templates {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeOverrideRepo struct {
	overrides map[string]*entity.TaskTemplateOverride // clave companyID+"/"+templateID
}

func newFakeOverrideRepo(seed ...*entity.TaskTemplateOverride) *fakeOverrideRepo {
	r := &fakeOverrideRepo{overrides: make(map[string]*entity.TaskTemplateOverride)}
	for _, ov := range seed {
		r.overrides[ov.CompanyID+"/"+ov.TemplateID] = ov
	}
	return r
}

func (r *fakeOverrideRepo) Get(_ context.Context, companyID, templateID string) (*entity.TaskTemplateOverride, error) {
	return r.overrides[companyID+"/"+templateID], nil
}

func (r *fakeOverrideRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.TaskTemplateOverride, error) {
	var out []*entity.TaskTemplateOverride
	for _, ov := range r.overrides {
		if ov.CompanyID == companyID {
			out = append(out, ov)
		}
	}
	return out, nil
}

func (r *fakeOverrideRepo) Upsert(_ context.Context, ov *entity.TaskTemplateOverride) (*entity.TaskTemplateOverride, error) {
	r.overrides[ov.CompanyID+"/"+ov.TemplateID] = ov
	return ov, nil
}

func (r *fakeOverrideRepo) Delete(_ context.Context, companyID, templateID string) error {
	delete(r.overrides, companyID+"/"+templateID)
	return nil
}

type fakeReminderRepo struct {
	candidates []repository.ReminderCandidate
	inserted   []*entity.SentReminder
}

func (r *fakeReminderRepo) ListCandidates(_ context.Context, _ time.Time) ([]repository.ReminderCandidate, error) {
	return r.candidates, nil
}

func (r *fakeReminderRepo) Insert(_ context.Context, rec *entity.SentReminder) error {
	r.inserted = append(r.inserted, rec)
	return nil
}

type fakeNotificationRepo struct {
	prefs map[string]*entity.NotificationPreferences
}

func (r *fakeNotificationRepo) GetByUser(_ context.Context, userID string) (*entity.NotificationPreferences, error) {
	if r.prefs == nil {
		return nil, nil
	}
	return r.prefs[userID], nil
}

func (r *fakeNotificationRepo) Upsert(_ context.Context, prefs *entity.NotificationPreferences) error {
	if r.prefs == nil {
		r.prefs = make(map[string]*entity.NotificationPreferences)
	}
	r.prefs[prefs.UserID] = prefs
	return nil
}

type fakeMailer struct {
	sent    []repository.ReminderCandidate
	failFor map[string]error // por TaskID
}

func (m *fakeMailer) SendReminder(_ context.Context, to string, c repository.ReminderCandidate) error {
	if err, ok := m.failFor[c.TaskID]; ok {
		return err
	}
	m.sent = append(m.sent, c)
	return nil
}
