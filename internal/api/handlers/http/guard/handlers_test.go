package guard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"qrpatrol/internal/api/handlers/http/guard"
	mock_guard "qrpatrol/internal/api/handlers/http/guard/mocks"
	"qrpatrol/internal/domain"
	"qrpatrol/internal/middleware"
	"qrpatrol/pkg/e"
)

var (
	testGuardID      = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testSupervisorID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func testActor() domain.GuardIdentity {
	return domain.GuardIdentity{
		GuardID:      testGuardID,
		SupervisorID: testSupervisorID,
		Email:        "guard@example.com",
		Name:         "Ravi Kumar",
	}
}

type guardResolverStub struct {
	actor domain.GuardIdentity
}

func (s guardResolverStub) ResolveGuard(_ context.Context, _ string) (*domain.GuardIdentity, error) {
	return &s.actor, nil
}

// authedRequest runs the request through the guard auth middleware so the
// identity lands in the context exactly the way the router wires it.
func authedRequest(r *http.Request, actor domain.GuardIdentity) *http.Request {
	r.Header.Set("X-Guard-Email", actor.Email)
	var out *http.Request
	mw := middleware.GuardAuth(guardResolverStub{actor: actor}, newTestLogger())
	mw(http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
		out = req
	})).ServeHTTP(httptest.NewRecorder(), r)
	return out
}

type handlerMocks struct {
	scanner   *mock_guard.MockScanner
	reports   *mock_guard.MockReporter
	locations *mock_guard.MockLocationLister
	directory *mock_guard.MockProfileProvider
}

func newHandler(ctrl *gomock.Controller) (*guard.Handler, handlerMocks) {
	m := handlerMocks{
		scanner:   mock_guard.NewMockScanner(ctrl),
		reports:   mock_guard.NewMockReporter(ctrl),
		locations: mock_guard.NewMockLocationLister(ctrl),
		directory: mock_guard.NewMockProfileProvider(ctrl),
	}
	return guard.NewHandler(newTestLogger(), m.scanner, m.reports, m.locations, m.directory), m
}

func TestGuardScan_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	wantReq := domain.ScanRequest{QRID: "QR-MG-001", Lat: 12.9716, Lng: 77.5946}

	m.scanner.EXPECT().
		Scan(gomock.Any(), actor, wantReq).
		Return(domain.ScanVerdict{
			Success:        true,
			QRID:           "QR-MG-001",
			IsWithinRadius: true,
			Message:        "QR code scanned successfully",
		}, nil).
		Times(1)

	body := `{"qr_id":"QR-MG-001","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/guard/scan", bytes.NewBufferString(body))
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.Scan(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestGuardScan_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	body := `{"qr_id":"QR-MG-001","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/guard/scan", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Scan(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestGuardScan_StorageUnavailable_503(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	m.scanner.EXPECT().
		Scan(gomock.Any(), actor, gomock.Any()).
		Return(domain.ScanVerdict{}, e.ErrStorageUnavailable).
		Times(1)

	body := `{"qr_id":"QR-MG-001","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/guard/scan", bytes.NewBufferString(body))
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.Scan(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d got %d body=%s", http.StatusServiceUnavailable, rr.Code, rr.Body.String())
	}
}

func TestScanHistory_FiltersParsed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	m.reports.EXPECT().
		ScanHistory(gomock.Any(), testGuardID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req domain.ScanHistoryRequest) ([]domain.ScanEvent, error) {
			if req.QRID != "QR-MG-001" {
				t.Fatalf("qr_id filter lost: %+v", req)
			}
			if req.WithinRadiusOnly == nil || !*req.WithinRadiusOnly {
				t.Fatalf("within_radius_only filter lost: %+v", req)
			}
			if req.From == nil || req.From.Year() != 2026 {
				t.Fatalf("from filter lost: %+v", req)
			}
			if req.Limit != 25 {
				t.Fatalf("limit lost: %+v", req)
			}
			return []domain.ScanEvent{{QRID: "QR-MG-001"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/guard/scan-history?qr_id=QR-MG-001&within_radius_only=true&from=2026-08-01&limit=25", nil)
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.ScanHistory(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestDashboard_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	m.reports.EXPECT().
		GuardDashboard(gomock.Any(), actor).
		Return(&domain.GuardDashboard{
			Statistics: domain.GuardStatistics{TotalScans: 40, WithinRadiusPercent: 75},
			GuardInfo:  actor,
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guard/dashboard", nil)
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.Dashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.GuardDashboard
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Statistics.TotalScans != 40 {
		t.Fatalf("unexpected dashboard %+v", got)
	}
}

func TestPatrolSummary_BadDate_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guard/patrol-summary?date=yesterday", nil)
	req = authedRequest(req, testActor())
	rr := httptest.NewRecorder()

	h.PatrolSummary(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestProfile_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	m.directory.EXPECT().
		GuardProfile(gomock.Any(), testGuardID).
		Return(&domain.GuardProfile{
			Guard:    domain.Guard{ID: testGuardID, SupervisorID: testSupervisorID, Shift: "NIGHT"},
			Email:    "guard@example.com",
			Name:     "Ravi Kumar",
			AreaCity: "Bengaluru",
			IsActive: true,
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guard/profile", nil)
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.Profile(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var got domain.GuardProfile
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != testGuardID || got.Shift != "NIGHT" || got.AreaCity != "Bengaluru" {
		t.Fatalf("unexpected profile %+v", got)
	}
}

func TestProfile_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guard/profile", nil)
	rr := httptest.NewRecorder()

	h.Profile(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestLocationList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)
	actor := testActor()

	m.locations.EXPECT().
		ActiveForSupervisor(gomock.Any(), testSupervisorID).
		Return([]domain.CachedLocation{{QRID: "QR-MG-001", LocationName: "Main Gate"}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/guard/locations", nil)
	req = authedRequest(req, actor)
	rr := httptest.NewRecorder()

	h.LocationList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}
