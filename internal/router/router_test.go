package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"costmanager/internal/config"
	"costmanager/internal/logger"
	"costmanager/internal/models"
	"costmanager/internal/report"
	"costmanager/internal/services"
	"costmanager/internal/store"
	"costmanager/internal/testutil"
	"costmanager/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
	validator.Register(config.DefaultCategories)
}

func testConfig() *config.Config {
	return &config.Config{
		Env:           "test",
		Categories:    config.DefaultCategories,
		ReportOrder:   config.DefaultReportOrder,
		Location:      time.UTC,
		CreatedAtSkew: 5 * time.Second,
		Team:          []config.TeamMember{{FirstName: "Emil", LastName: "Davidov"}},
	}
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := testConfig()
	st := store.NewReportStore(db)
	cache := report.NewCache(report.NewBuilder(st, cfg.ReportOrder, cfg.Location), st, logger.Named("report"))

	router, err := Setup(cfg, Services{
		Users:   services.NewUserService(db),
		Costs:   services.NewCostService(db, cfg.Categories, cfg.CreatedAtSkew),
		Reports: services.NewReportService(cache),
		Logs:    services.NewLogService(db),
	})
	if err != nil {
		t.Fatalf("failed to set up router: %v", err)
	}

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func TestCostFlow_CurrentMonth(t *testing.T) {
	app := setupApp(t)
	now := time.Now().UTC()

	// Step 1: Add a user
	rec := app.request("POST", "/api/add",
		`{"id":123123,"first_name":"mosh","last_name":"israeli","birthday":"2000-01-02"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 2: Add two costs for the current month
	rec = app.request("POST", "/api/add", `{"userid":123123,"description":"milk","category":"food","sum":8}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/add", `{"userid":123123,"description":"gym","category":"sports","sum":"30"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 3: The current month report reflects both costs
	path := fmt.Sprintf("/api/report?id=123123&year=%d&month=%d", now.Year(), int(now.Month()))
	rec = app.request("GET", path, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got models.MonthlyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if len(got.Costs) != len(config.DefaultReportOrder) {
		t.Fatalf("expected %d categories, got %d", len(config.DefaultReportOrder), len(got.Costs))
	}
	if got.Costs[0].Category != "food" || len(got.Costs[0].Items) != 1 || got.Costs[0].Items[0].Description != "milk" {
		t.Errorf("unexpected food group %+v", got.Costs[0])
	}

	// Step 4: A new cost shows up immediately and nothing is cached
	rec = app.request("POST", "/api/add", `{"userid":123123,"description":"bread","category":"food","sum":4}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", path, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if len(got.Costs[0].Items) != 2 {
		t.Errorf("expected 2 food items, got %d", len(got.Costs[0].Items))
	}
	var cached int64
	app.DB.Model(&models.CachedReport{}).Count(&cached)
	if cached != 0 {
		t.Errorf("expected no cached reports for the current month, got %d", cached)
	}

	// Step 5: User details total all costs
	rec = app.request("GET", "/api/users/123123", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total"].(float64) != 42 {
		t.Errorf("expected total 42, got %v", result["total"])
	}

	// Step 6: Logs hold both request and endpoint access entries
	rec = app.request("GET", "/api/logs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var logs []models.Log
	if err := json.Unmarshal(rec.Body.Bytes(), &logs); err != nil {
		t.Fatalf("failed to decode logs: %v", err)
	}
	messages := map[string]int{}
	for _, l := range logs {
		messages[l.Message]++
	}
	if messages[models.LogMessageHTTPRequest] == 0 || messages[models.LogMessageEndpointAccess] == 0 {
		t.Errorf("expected both log kinds, got %v", messages)
	}
}

func TestCostFlow_PastCostRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/api/add",
		`{"userid":123123,"description":"old example","category":"food","sum":3.5,"createdAt":"2020-08-30T10:00:00.000Z"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["error"] != "validation_error" || result["message"] != "createdAt cannot belong to the past" {
		t.Errorf("unexpected error body %v", result)
	}

	var count int64
	app.DB.Model(&models.Cost{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no stored costs, got %d", count)
	}
}

func TestReportFlow_ClosedMonthIsCached(t *testing.T) {
	app := setupApp(t)

	testutil.CreateTestCost(t, app.DB, 123123, "food", 12, time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
	testutil.CreateTestCost(t, app.DB, 123123, "housing", 3000, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	rec := app.request("GET", "/api/report?id=123123&year=2025&month=6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	first := rec.Body.String()

	// Removing the source costs must not change the stored report.
	if err := app.DB.Where("user_id = ?", 123123).Delete(&models.Cost{}).Error; err != nil {
		t.Fatalf("failed to delete costs: %v", err)
	}

	rec = app.request("GET", "/api/report?id=123123&year=2025&month=6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != first {
		t.Errorf("expected identical report\n%s\ngot\n%s", first, rec.Body.String())
	}

	var cached int64
	app.DB.Model(&models.CachedReport{}).Count(&cached)
	if cached != 1 {
		t.Errorf("expected 1 cached report, got %d", cached)
	}
}

func TestReportFlow_EmptyMonth(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/report?id=5&year=2024&month=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	want := `{"userid":5,"year":2024,"month":2,"costs":[{"food":[]},{"education":[]},{"health":[]},{"housing":[]},{"sports":[]}]}`
	if rec.Body.String() != want {
		t.Errorf("expected %s, got %s", want, rec.Body.String())
	}
}

func TestRoutes(t *testing.T) {
	app := setupApp(t)

	t.Run("health", func(t *testing.T) {
		rec := app.request("GET", "/health", "")
		if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
			t.Errorf("unexpected health response %d %s", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("expected security headers")
		}
	})

	t.Run("landing page", func(t *testing.T) {
		rec := app.request("GET", "/", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Cost Manager") || !strings.Contains(body, "food, health, housing, sports, education") {
			t.Errorf("unexpected landing page: %s", body)
		}
	})

	t.Run("about", func(t *testing.T) {
		rec := app.request("GET", "/api/about", "")
		if rec.Body.String() != `[{"first_name":"Emil","last_name":"Davidov"}]` {
			t.Errorf("unexpected about body %s", rec.Body.String())
		}
	})

	t.Run("add rejects GET", func(t *testing.T) {
		rec := app.request("GET", "/api/add", "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405, got %d", rec.Code)
		}
		if rec.Header().Get("Allow") != "POST" {
			t.Errorf("expected Allow: POST, got %q", rec.Header().Get("Allow"))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := app.request("GET", "/api/users/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if parseJSON(t, rec)["error"] != "not_found" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := app.request("GET", "/api/nothing", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if parseJSON(t, rec)["error"] != "not_found" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("swagger document", func(t *testing.T) {
		rec := app.request("GET", "/swagger/doc.json", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "/api/report") {
			t.Error("expected report path in swagger document")
		}
	})
}
