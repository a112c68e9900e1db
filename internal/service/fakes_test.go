package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/notify"
	"github.com/spec-kit/equipment-support/internal/repository"
)

type fakeRequestRepo struct {
	mu       sync.Mutex
	nextID   int64
	requests []domain.SupportRequest
	now      func() time.Time
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{nextID: 1, now: time.Now}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req *domain.SupportRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.now()
	req.ID = f.nextID
	f.nextID++
	req.CreatedAt = now
	req.UpdatedAt = now
	f.requests = append(f.requests, *req)
	return nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, id int64, patch repository.RequestPatch) (*domain.SupportRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID != id {
			continue
		}
		req := &f.requests[i]
		if patch.Status != nil {
			req.Status = *patch.Status
		}
		if patch.AssignedTechnician != nil {
			req.AssignedTechnician = patch.AssignedTechnician
		}
		if patch.Priority != nil {
			req.Priority = *patch.Priority
		}
		if patch.Description != nil {
			req.Description = *patch.Description
		}
		if patch.Location != nil {
			req.Location = *patch.Location
		}
		if patch.ContactNumber != nil {
			req.ContactNumber = patch.ContactNumber
		}
		req.UpdatedAt = f.now()
		copied := *req
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id int64) (*domain.SupportRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].ID == id {
			copied := f.requests[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeRequestRepo) List(ctx context.Context) ([]domain.SupportRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := append([]domain.SupportRequest{}, f.requests...)
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type fakeTechnicianRepo struct {
	mu          sync.Mutex
	nextID      int64
	technicians []domain.Technician
	createErr   error
}

func newFakeTechnicianRepo(seed ...domain.Technician) *fakeTechnicianRepo {
	repo := &fakeTechnicianRepo{nextID: 1}
	for _, tech := range seed {
		tech.ID = repo.nextID
		repo.nextID++
		repo.technicians = append(repo.technicians, tech)
	}
	return repo
}

func (f *fakeTechnicianRepo) Create(ctx context.Context, tech *domain.Technician) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	tech.ID = f.nextID
	f.nextID++
	f.technicians = append(f.technicians, *tech)
	return nil
}

func (f *fakeTechnicianRepo) Update(ctx context.Context, id int64, patch repository.TechnicianPatch) (*domain.Technician, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.technicians {
		if f.technicians[i].ID != id {
			continue
		}
		tech := &f.technicians[i]
		if patch.Name != nil {
			tech.Name = *patch.Name
		}
		if patch.Phone != nil {
			tech.Phone = patch.Phone
		}
		if patch.Specialty != nil {
			tech.Specialty = *patch.Specialty
		}
		if patch.Status != nil {
			tech.Status = *patch.Status
		}
		if patch.ActiveRequests != nil {
			tech.ActiveRequests = *patch.ActiveRequests
		}
		copied := *tech
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTechnicianRepo) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.technicians {
		if f.technicians[i].ID == id {
			copied := f.technicians[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTechnicianRepo) List(ctx context.Context) ([]domain.Technician, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Technician{}, f.technicians...), nil
}

func (f *fakeTechnicianRepo) ListAvailable(ctx context.Context) ([]domain.Technician, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Technician
	for _, tech := range f.technicians {
		if tech.Status == domain.TechnicianStatusAvailable {
			result = append(result, tech)
		}
	}
	return result, nil
}

type fakeKnowledgeRepo struct {
	mu       sync.Mutex
	articles []domain.KnowledgeBaseArticle
	calls    int
}

func (f *fakeKnowledgeRepo) List(ctx context.Context) ([]domain.KnowledgeBaseArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return append([]domain.KnowledgeBaseArticle{}, f.articles...), nil
}

type fakeSystemRepo struct {
	mu      sync.Mutex
	rows    []domain.SystemNotification
	touches []domain.IntegrationType
}

func (f *fakeSystemRepo) List(ctx context.Context) ([]domain.SystemNotification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SystemNotification{}, f.rows...), nil
}

func (f *fakeSystemRepo) Update(ctx context.Context, id int64, patch repository.SystemNotificationPatch) (*domain.SystemNotification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID != id {
			continue
		}
		row := &f.rows[i]
		if patch.Status != nil {
			row.Status = *patch.Status
		}
		if patch.LastActivity != nil {
			row.LastActivity = patch.LastActivity
		}
		copied := *row
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeSystemRepo) TouchActivity(ctx context.Context, integration domain.IntegrationType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touches = append(f.touches, integration)
	return nil
}

func (f *fakeSystemRepo) touched(integration domain.IntegrationType) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.touches {
		if t == integration {
			return true
		}
	}
	return false
}

type sentMessage struct {
	Channel   notify.Channel
	Recipient string
	Subject   string
	Body      string
}

type fakeSender struct {
	mu      sync.Mutex
	sends   []sentMessage
	failFor map[string]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{failFor: map[string]bool{}}
}

func (f *fakeSender) Send(ctx context.Context, channel notify.Channel, recipient, subject, body string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentMessage{Channel: channel, Recipient: recipient, Subject: subject, Body: body})
	return !f.failFor[recipient]
}

func (f *fakeSender) byChannel(channel notify.Channel) []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []sentMessage
	for _, msg := range f.sends {
		if msg.Channel == channel {
			result = append(result, msg)
		}
	}
	return result
}
