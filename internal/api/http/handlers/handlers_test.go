package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/equipment-support/internal/api/http"
	"github.com/spec-kit/equipment-support/internal/api/http/handlers"
	"github.com/spec-kit/equipment-support/internal/api/validation"
	"github.com/spec-kit/equipment-support/internal/domain"
	"github.com/spec-kit/equipment-support/internal/events"
	"github.com/spec-kit/equipment-support/internal/notify"
	"github.com/spec-kit/equipment-support/internal/observability"
	"github.com/spec-kit/equipment-support/internal/repository"
	"github.com/spec-kit/equipment-support/internal/service"
	"github.com/spec-kit/equipment-support/internal/worker"
)

type memRequestRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.SupportRequest
}

func (m *memRequestRepo) Create(ctx context.Context, req *domain.SupportRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	req.ID = m.nextID
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	m.rows = append(m.rows, *req)
	return nil
}

func (m *memRequestRepo) Update(ctx context.Context, id int64, patch repository.RequestPatch) (*domain.SupportRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		row := &m.rows[i]
		if patch.Status != nil {
			row.Status = *patch.Status
		}
		if patch.AssignedTechnician != nil {
			row.AssignedTechnician = patch.AssignedTechnician
		}
		if patch.Priority != nil {
			row.Priority = *patch.Priority
		}
		if patch.Description != nil {
			row.Description = *patch.Description
		}
		if patch.Location != nil {
			row.Location = *patch.Location
		}
		if patch.ContactNumber != nil {
			row.ContactNumber = patch.ContactNumber
		}
		row.UpdatedAt = time.Now()
		copied := *row
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memRequestRepo) GetByID(ctx context.Context, id int64) (*domain.SupportRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			copied := m.rows[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memRequestRepo) List(ctx context.Context) ([]domain.SupportRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]domain.SupportRequest, 0, len(m.rows))
	for i := len(m.rows) - 1; i >= 0; i-- {
		result = append(result, m.rows[i])
	}
	return result, nil
}

type memTechRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.Technician
}

func (m *memTechRepo) Create(ctx context.Context, tech *domain.Technician) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	tech.ID = m.nextID
	m.rows = append(m.rows, *tech)
	return nil
}

func (m *memTechRepo) Update(ctx context.Context, id int64, patch repository.TechnicianPatch) (*domain.Technician, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		row := &m.rows[i]
		if patch.Status != nil {
			row.Status = *patch.Status
		}
		if patch.Phone != nil {
			row.Phone = patch.Phone
		}
		if patch.Name != nil {
			row.Name = *patch.Name
		}
		if patch.Specialty != nil {
			row.Specialty = *patch.Specialty
		}
		if patch.ActiveRequests != nil {
			row.ActiveRequests = *patch.ActiveRequests
		}
		copied := *row
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memTechRepo) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			copied := m.rows[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memTechRepo) List(ctx context.Context) ([]domain.Technician, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Technician{}, m.rows...), nil
}

func (m *memTechRepo) ListAvailable(ctx context.Context) ([]domain.Technician, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []domain.Technician
	for _, tech := range m.rows {
		if tech.Status == domain.TechnicianStatusAvailable {
			result = append(result, tech)
		}
	}
	return result, nil
}

type memKnowledgeRepo struct {
	rows []domain.KnowledgeBaseArticle
}

func (m *memKnowledgeRepo) List(ctx context.Context) ([]domain.KnowledgeBaseArticle, error) {
	return append([]domain.KnowledgeBaseArticle{}, m.rows...), nil
}

type memSystemRepo struct {
	mu   sync.Mutex
	rows []domain.SystemNotification
}

func (m *memSystemRepo) List(ctx context.Context) ([]domain.SystemNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SystemNotification{}, m.rows...), nil
}

func (m *memSystemRepo) Update(ctx context.Context, id int64, patch repository.SystemNotificationPatch) (*domain.SystemNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID != id {
			continue
		}
		if patch.Status != nil {
			m.rows[i].Status = *patch.Status
		}
		if patch.LastActivity != nil {
			m.rows[i].LastActivity = patch.LastActivity
		}
		copied := m.rows[i]
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *memSystemRepo) TouchActivity(ctx context.Context, integration domain.IntegrationType) error {
	return nil
}

type recordingSender struct {
	mu    sync.Mutex
	sends []notify.Channel
}

func (r *recordingSender) Send(ctx context.Context, channel notify.Channel, recipient, subject, body string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sends = append(r.sends, channel)
	return true
}

type testEnv struct {
	app         *fiber.App
	requestRepo *memRequestRepo
	techRepo    *memTechRepo
	sender      *recordingSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	requestRepo := &memRequestRepo{}
	techRepo := &memTechRepo{}
	knowledgeRepo := &memKnowledgeRepo{}
	systemRepo := &memSystemRepo{}
	sender := &recordingSender{}

	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()

	notificationService := service.NewNotificationService(service.NotificationDependencies{
		TechnicianRepo:         techRepo,
		SystemNotificationRepo: systemRepo,
		Sender:                 sender,
		Dispatcher:             dispatcher,
		Logger:                 logger,
	})
	worker.StartNotificationWorker(notificationService)

	requestService := service.NewRequestService(service.RequestDependencies{
		RequestRepo:            requestRepo,
		SystemNotificationRepo: systemRepo,
		Dispatcher:             dispatcher,
		Logger:                 logger,
	})

	validate := validation.New()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler("equipment-support", "test", nil, nil),
		Requests:     handlers.NewRequestsHandler(requestService, validate),
		Technicians:  handlers.NewTechniciansHandler(service.NewTechnicianService(techRepo), validate),
		Knowledge:    handlers.NewKnowledgeHandler(service.NewKnowledgeService(knowledgeRepo, nil, 0, logger)),
		SystemStatus: handlers.NewSystemStatusHandler(service.NewSystemStatusService(systemRepo), validate),
		Stats:        handlers.NewStatsHandler(service.NewStatsService(requestRepo, techRepo)),
		Alerts:       handlers.NewAlertsHandler(requestService, validate),
	})

	return &testEnv{app: app, requestRepo: requestRepo, techRepo: techRepo, sender: sender}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	decoded := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestCreateSupportRequestValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/support-requests", map[string]any{
		"serialNumber": "VENT-4471",
		"priority":     "high",
		"description":  "too short",
		"location":     "ICU Ward 3",
		"submittedBy":  "Nurse Adams",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Contains(t, details, "description")

	// nothing persisted
	assert.Empty(t, env.requestRepo.rows)
}

func TestCreateSupportRequestSuccess(t *testing.T) {
	env := newTestEnv(t)
	env.techRepo.rows = []domain.Technician{
		{ID: 1, Name: "Rivera", Email: "rivera@hospital.example", Status: domain.TechnicianStatusAvailable},
	}

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/support-requests", map[string]any{
		"serialNumber": "VENT-4471",
		"priority":     "high",
		"description":  "Ventilator alarm panel flickers intermittently",
		"location":     "ICU Ward 3",
		"submittedBy":  "Nurse Adams",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "open", data["status"])
	assert.Nil(t, data["assignedTechnician"])
	assert.EqualValues(t, 1, data["id"])

	// fan-out ran for the single available technician
	assert.Len(t, env.sender.sends, 1)
}

func TestGetSupportRequestNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/support-requests/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestPatchSupportRequestStatus(t *testing.T) {
	env := newTestEnv(t)
	_, created := doJSON(t, env.app, http.MethodPost, "/api/support-requests", map[string]any{
		"serialNumber": "MON-220",
		"priority":     "low",
		"description":  "Monitor screen shows artifacts on channel two",
		"location":     "Ward 2",
		"submittedBy":  "Dr. Patel",
	})
	id := created["data"].(map[string]any)["id"].(float64)

	resp, body := doJSON(t, env.app, http.MethodPatch,
		"/api/support-requests/1", map[string]any{"status": "resolved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.EqualValues(t, id, body["data"].(map[string]any)["id"])
	assert.Equal(t, "resolved", body["data"].(map[string]any)["status"])
}

func TestPatchSupportRequestUnknownStatusRejected(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, http.MethodPatch,
		"/api/support-requests/1", map[string]any{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
}

func TestPatchSupportRequestNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doJSON(t, env.app, http.MethodPatch,
		"/api/support-requests/42", map[string]any{"status": "closed"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t)
	env.techRepo.rows = []domain.Technician{
		{ID: 1, Name: "Rivera", Email: "rivera@hospital.example", Status: domain.TechnicianStatusAvailable},
		{ID: 2, Name: "Chen", Email: "chen@hospital.example", Status: domain.TechnicianStatusBusy},
		{ID: 3, Name: "Okafor", Email: "okafor@hospital.example", Status: domain.TechnicianStatusOffDuty},
	}

	_, _ = doJSON(t, env.app, http.MethodPost, "/api/support-requests", map[string]any{
		"serialNumber": "VENT-4471",
		"priority":     "high",
		"description":  "Ventilator alarm panel flickers intermittently",
		"location":     "ICU Ward 3",
		"submittedBy":  "Nurse Adams",
	})

	// only the available technician got paged
	require.Len(t, env.sender.sends, 1)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/dashboard-stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["activeRequests"])
	assert.EqualValues(t, 1, data["urgentRequests"])
	assert.EqualValues(t, 1, data["availableTechs"])
	assert.EqualValues(t, 3, data["totalTechs"])
	assert.NotEmpty(t, data["avgResponseTime"])
}

func TestEmergencyAlertRequiresLocation(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/emergency-alert", map[string]any{
		"message": "oxygen supply failure",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	details := body["error"].(map[string]any)["details"].(map[string]any)
	assert.Contains(t, details, "location")
}

func TestEmergencyAlertFanOut(t *testing.T) {
	env := newTestEnv(t)
	phone := "+15550100"
	env.techRepo.rows = []domain.Technician{
		{ID: 1, Name: "Rivera", Email: "rivera@hospital.example", Phone: &phone, Status: domain.TechnicianStatusAvailable},
	}

	resp, _ := doJSON(t, env.app, http.MethodPost, "/api/emergency-alert", map[string]any{
		"message":  "oxygen supply failure",
		"location": "Ward 5",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// one email plus one sms for the phone-carrying technician
	assert.Len(t, env.sender.sends, 2)
}

func TestIntegrationWebhookCreatesRequest(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/integration-webhook", map[string]any{
		"message":      "pump error E42 on ward 5",
		"phone":        "+15550123",
		"deviceSerial": "PUMP-88",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["requestId"])

	stored := env.requestRepo.rows[0]
	assert.Equal(t, "PUMP-88", stored.SerialNumber)
	assert.Equal(t, domain.RequestPriorityMedium, stored.Priority)
	assert.Equal(t, service.IntegrationSubmitter, stored.SubmittedBy)
}

func TestListTechnicians(t *testing.T) {
	env := newTestEnv(t)
	env.techRepo.rows = []domain.Technician{
		{ID: 1, Name: "Rivera", Email: "rivera@hospital.example", Specialty: "imaging", Status: domain.TechnicianStatusAvailable},
	}

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/technicians", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Rivera", items[0].(map[string]any)["name"])
}
