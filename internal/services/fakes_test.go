package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
)

// fakeUnitOfWork executa fn direto; rollbacks contam quantas vezes fn falhou
type fakeUnitOfWork struct {
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(context.Context) error { return nil }
func (u *fakeUnitOfWork) Rollback(context.Context) error { return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	return nil
}

type fakeProfessionalRepo struct {
	mu    sync.Mutex
	items map[string]*entities.Professional
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{items: make(map[string]*entities.Professional)}
}

func (r *fakeProfessionalRepo) Create(_ context.Context, p *entities.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	copied := *p
	r.items[p.ID] = &copied
	return nil
}

func (r *fakeProfessionalRepo) FindByID(_ context.Context, id string) (*entities.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.items[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeProfessionalRepo) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeProfessionalRepo) Update(_ context.Context, p *entities.Professional) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return domainerrors.ErrProfessionalNotFound
	}
	copied := *p
	r.items[p.ID] = &copied
	return nil
}

func (r *fakeProfessionalRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainerrors.ErrProfessionalNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProfessionalRepo) List(_ context.Context, _ repositories.ProfessionalFilters) ([]*entities.Professional, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entities.Professional, 0, len(r.items))
	for _, p := range r.items {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

type fakeConsultationRepo struct {
	mu        sync.Mutex
	items     map[string]*entities.Consultation
	createErr error
}

func newFakeConsultationRepo() *fakeConsultationRepo {
	return &fakeConsultationRepo{items: make(map[string]*entities.Consultation)}
}

func (r *fakeConsultationRepo) Create(_ context.Context, c *entities.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = uuid.NewString()
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *fakeConsultationRepo) FindByID(_ context.Context, id string) (*entities.Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.items[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeConsultationRepo) FindBySlot(_ context.Context, professionalID string, scheduledAt time.Time, excludeID string) (*entities.Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate := &entities.Consultation{ProfessionalID: professionalID, ScheduledAt: scheduledAt}
	for _, c := range r.items {
		if c.ID != excludeID && c.SameSlot(candidate) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeConsultationRepo) Update(_ context.Context, c *entities.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return domainerrors.ErrConsultationNotFound
	}
	copied := *c
	r.items[c.ID] = &copied
	return nil
}

func (r *fakeConsultationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domainerrors.ErrConsultationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeConsultationRepo) DeleteByProfessional(_ context.Context, professionalID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, c := range r.items {
		if c.ProfessionalID == professionalID {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeConsultationRepo) List(_ context.Context, filters repositories.ConsultationFilters) ([]*entities.Consultation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entities.Consultation, 0)
	for _, c := range r.items {
		if filters.ProfessionalID != "" && c.ProfessionalID != filters.ProfessionalID {
			continue
		}
		if filters.Status != nil && c.Status != *filters.Status {
			continue
		}
		copied := *c
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ScheduledAt.Before(result[j].ScheduledAt) })
	return result, int64(len(result)), nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Username == u.Username {
			return errors.New("duplicated username")
		}
	}
	copied := *u
	r.items[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok && !u.IsDeleted() {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Username == username && !u.IsDeleted() {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *u
	r.items[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.items[id]; ok {
		u.SoftDelete()
	}
	return nil
}
