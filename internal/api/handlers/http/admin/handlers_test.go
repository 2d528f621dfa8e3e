package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"qrpatrol/internal/api/handlers/http/admin"
	mock_admin "qrpatrol/internal/api/handlers/http/admin/mocks"
	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
)

var (
	testAdminID      = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	testSupervisorID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	return &config.Config{
		Env:      "test",
		Geofence: config.GeofenceConfig{RadiusMeters: 50},
		Cache: config.CacheConfig{
			LocationTTL:     5 * time.Minute,
			RefreshInterval: 30 * time.Second,
		},
	}
}

type handlerMocks struct {
	directory *mock_admin.MockDirectoryAdmin
	reports   *mock_admin.MockReportAdmin
}

func newHandler(ctrl *gomock.Controller) (*admin.Handler, handlerMocks) {
	m := handlerMocks{
		directory: mock_admin.NewMockDirectoryAdmin(ctrl),
		reports:   mock_admin.NewMockReportAdmin(ctrl),
	}
	return admin.NewHandler(newTestLogger(), m.directory, m.reports, testConfig()), m
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSupervisorCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	wantReq := domain.CreateSupervisorRequest{
		Email:       "sup@example.com",
		Name:        "Priya Sharma",
		AreaCity:    "Bengaluru",
		AreaState:   "Karnataka",
		AreaCountry: "India",
		SheetID:     "sheet-42",
	}

	m.directory.EXPECT().
		CreateSupervisor(gomock.Any(), wantReq).
		Return(&domain.SupervisorProfile{
			Supervisor: domain.Supervisor{ID: testSupervisorID, AreaCity: "Bengaluru", SheetID: "sheet-42"},
			Email:      "sup@example.com",
			Name:       "Priya Sharma",
			IsActive:   true,
		}, nil).
		Times(1)

	body := `{"email":"sup@example.com","name":"Priya Sharma","area_city":"Bengaluru","area_state":"Karnataka","area_country":"India","sheet_id":"sheet-42"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/supervisors", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.SupervisorCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var got domain.SupervisorProfile
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != testSupervisorID || got.Email != "sup@example.com" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestSupervisorCreate_Duplicate_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.directory.EXPECT().
		CreateSupervisor(gomock.Any(), gomock.Any()).
		Return(nil, e.ErrConflict).
		Times(1)

	body := `{"email":"sup@example.com","name":"Priya Sharma","area_city":"Bengaluru","area_state":"Karnataka","area_country":"India"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/supervisors", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.SupervisorCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestGuardCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.directory.EXPECT().
		CreateGuard(gomock.Any(), domain.CreateGuardRequest{
			Email:        "guard@example.com",
			Name:         "Ravi Kumar",
			SupervisorID: testSupervisorID.String(),
			Shift:        "NIGHT",
			PhoneNumber:  "+91-9876543210",
		}).
		Return(&domain.GuardProfile{
			Guard:    domain.Guard{SupervisorID: testSupervisorID, Shift: "NIGHT"},
			Email:    "guard@example.com",
			Name:     "Ravi Kumar",
			AreaCity: "Bengaluru",
			IsActive: true,
		}, nil).
		Times(1)

	body := `{"email":"guard@example.com","name":"Ravi Kumar","supervisor_id":"` + testSupervisorID.String() + `","shift":"NIGHT","phone_number":"+91-9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/guards", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.GuardCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var got domain.GuardProfile
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.AreaCity != "Bengaluru" {
		t.Fatalf("area not inherited: %+v", got)
	}
}

func TestUserList_FiltersParsed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.directory.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ListUsersRequest) ([]domain.User, error) {
			if req.Role != "GUARD" {
				t.Fatalf("role filter lost: %+v", req)
			}
			if req.Active == nil || *req.Active != true {
				t.Fatalf("active filter lost: %+v", req)
			}
			if req.Limit != 10 {
				t.Fatalf("limit lost: %+v", req)
			}
			return []domain.User{{Role: domain.RoleGuard, IsActive: true}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?role=GUARD&active=true&limit=10", nil)
	rr := httptest.NewRecorder()

	h.UserList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestUserDisable_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	userID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	m.directory.EXPECT().
		DisableUser(gomock.Any(), testAdminID, userID).
		Return(nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/"+userID.String(), nil)
	req.Header.Set("X-Admin-ID", testAdminID.String())
	req = withURLParam(req, "id", userID.String())
	rr := httptest.NewRecorder()

	h.UserDisable(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestUserDisable_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.UserDisable(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestUserDisable_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	userID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	m.directory.EXPECT().
		DisableUser(gomock.Any(), gomock.Any(), userID).
		Return(e.ErrForbidden).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/users/"+userID.String(), nil)
	req = withURLParam(req, "id", userID.String())
	rr := httptest.NewRecorder()

	h.UserDisable(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestAreaReport_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.reports.EXPECT().
		AreaReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.AreaReportRequest) ([]domain.AreaReportRow, error) {
			if req.AreaCity != "Bengaluru" {
				t.Fatalf("area filter lost: %+v", req)
			}
			if !req.EndDate.After(req.StartDate) {
				t.Fatalf("range lost: %+v", req)
			}
			return []domain.AreaReportRow{
				{GuardName: "Ravi Kumar", LocationName: "Main Gate", IsWithinRadius: true},
			}, nil
		})

	body := `{"start_date":"2026-08-01T00:00:00Z","end_date":"2026-08-22T00:00:00Z","area_city":"Bengaluru"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reports/area", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AreaReport(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got struct {
		Rows  []domain.AreaReportRow `json:"rows"`
		Count int                    `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Count != 1 || got.Rows[0].GuardName != "Ravi Kumar" {
		t.Fatalf("unexpected report %+v", got)
	}
}

func TestDashboard_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.directory.EXPECT().
		AdminDashboard(gomock.Any()).
		Return(&domain.AdminDashboard{
			TotalUsers:       12,
			ActiveUsers:      10,
			TotalSupervisors: 2,
			TotalGuards:      9,
			TodayScans:       77,
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	rr := httptest.NewRecorder()

	h.Dashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.AdminDashboard
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.TodayScans != 77 {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}

func TestSystemConfig_NoSecretsExposed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.APIKey = "super-secret"
	cfg.Geocode.APIKey = "tomtom-secret"

	m := mock_admin.NewMockDirectoryAdmin(ctrl)
	h := admin.NewHandler(newTestLogger(), m, mock_admin.NewMockReportAdmin(ctrl), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/system/config", nil)
	rr := httptest.NewRecorder()

	h.SystemConfig(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("secret")) {
		t.Fatalf("secret leaked in response: %s", rr.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got["geocode_enabled"] != true {
		t.Fatalf("expected geocode_enabled=true, got %+v", got)
	}
	if got["radius_meters"] != float64(50) {
		t.Fatalf("unexpected radius %+v", got)
	}
}
