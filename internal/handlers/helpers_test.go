package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"costmanager/internal/config"
	"costmanager/internal/models"
	"costmanager/internal/services"
	"costmanager/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn     func(ctx context.Context, input services.CreateUserInput) (*models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	getUserDetailsFn func(ctx context.Context, id int64) (*services.UserDetails, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, input services.CreateUserInput) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, input)
	}
	return &models.User{ID: input.ID, FirstName: input.FirstName, LastName: input.LastName, Birthday: input.Birthday}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return []models.User{}, nil
}

func (m *mockUserService) GetUserDetails(ctx context.Context, id int64) (*services.UserDetails, error) {
	if m.getUserDetailsFn != nil {
		return m.getUserDetailsFn(ctx, id)
	}
	return &services.UserDetails{ID: id}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

type mockCostService struct {
	createCostFn func(ctx context.Context, input services.CreateCostInput) (*models.Cost, error)
}

func (m *mockCostService) CreateCost(ctx context.Context, input services.CreateCostInput) (*models.Cost, error) {
	if m.createCostFn != nil {
		return m.createCostFn(ctx, input)
	}
	createdAt := time.Now().UTC()
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}
	return &models.Cost{
		Description: input.Description,
		Category:    input.Category,
		UserID:      input.UserID,
		Sum:         input.Sum,
		CreatedAt:   createdAt,
	}, nil
}

var _ services.CostServicer = (*mockCostService)(nil)

type mockReportService struct {
	getMonthlyReportFn func(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error)
}

func (m *mockReportService) GetMonthlyReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error) {
	if m.getMonthlyReportFn != nil {
		return m.getMonthlyReportFn(ctx, userID, year, month)
	}
	return &models.MonthlyReport{UserID: userID, Year: year, Month: month, Costs: []models.CategoryCosts{}}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

type mockLogService struct {
	mu       sync.Mutex
	recorded []models.Log
	listFn   func(ctx context.Context) ([]models.Log, error)
}

func (m *mockLogService) Record(_ context.Context, entry *models.Log) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, *entry)
}

func (m *mockLogService) List(ctx context.Context) ([]models.Log, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.Log{}, nil
}

var _ services.LogServicer = (*mockLogService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register(config.DefaultCategories)
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	if result["error"] != code {
		t.Errorf("expected error code %q, got %v (message: %v)", code, result["error"], result["message"])
	}
}

func TestParseFlexibleTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2025-09-01", want: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-09-01T10:00:00Z", want: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-09-01T10:00:00.000Z", want: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "2025-09-01T12:00:00+02:00", want: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), ok: true},
		{in: "yesterday", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, err := parseFlexibleTime(tt.in)
		if tt.ok && (err != nil || !got.Equal(tt.want)) {
			t.Errorf("parseFlexibleTime(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("parseFlexibleTime(%q) expected error", tt.in)
		}
	}
}
