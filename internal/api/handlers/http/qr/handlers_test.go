package qr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"qrpatrol/internal/api/handlers/http/qr"
	mock_qr "qrpatrol/internal/api/handlers/http/qr/mocks"
	"qrpatrol/internal/domain"
	"qrpatrol/internal/middleware"
	"qrpatrol/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type handlerMocks struct {
	scanner   *mock_qr.MockPublicScanner
	locations *mock_qr.MockLocationProvider
	generator *mock_qr.MockQRGenerator
}

func newHandler(ctrl *gomock.Controller) (*qr.Handler, handlerMocks) {
	m := handlerMocks{
		scanner:   mock_qr.NewMockPublicScanner(ctrl),
		locations: mock_qr.NewMockLocationProvider(ctrl),
		generator: mock_qr.NewMockQRGenerator(ctrl),
	}
	return qr.NewHandler(newTestLogger(), m.scanner, m.locations, m.generator), m
}

func TestPublicScan_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	eventID := uuid.MustParse("99999999-9999-9999-9999-999999999999")
	wantReq := domain.PublicScanRequest{
		GuardEmail: "guard@example.com",
		QRID:       "QR-MG-001",
		Lat:        12.9716,
		Lng:        77.5946,
	}

	m.scanner.EXPECT().
		PublicScan(gomock.Any(), wantReq).
		Return(domain.ScanVerdict{
			ScanEventID:    eventID,
			Success:        true,
			QRID:           "QR-MG-001",
			IsWithinRadius: true,
			DistanceFromQR: 1.56,
			Message:        "QR code scanned successfully",
		}, nil).
		Times(1)

	body := `{"guard_email":"guard@example.com","qr_id":"QR-MG-001","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/public/scan", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.PublicScan(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ScanVerdict](t, rr)
	if got.ScanEventID != eventID || !got.Success || !got.IsWithinRadius {
		t.Fatalf("unexpected verdict: %+v", got)
	}
}

func TestPublicScan_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/public/scan", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.PublicScan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicScan_InvalidCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.scanner.EXPECT().
		PublicScan(gomock.Any(), gomock.Any()).
		Return(domain.ScanVerdict{}, e.ErrInvalidCoordinates).
		Times(1)

	body := `{"guard_email":"guard@example.com","qr_id":"QR-MG-001","latitude":95,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/public/scan", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.PublicScan(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPublicScan_UnknownQR_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.scanner.EXPECT().
		PublicScan(gomock.Any(), gomock.Any()).
		Return(domain.ScanVerdict{}, e.ErrNotFound).
		Times(1)

	body := `{"guard_email":"guard@example.com","qr_id":"QR-GONE","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/public/scan", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.PublicScan(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestPublicScan_StorageUnavailable_503(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.scanner.EXPECT().
		PublicScan(gomock.Any(), gomock.Any()).
		Return(domain.ScanVerdict{}, e.ErrStorageUnavailable).
		Times(1)

	body := `{"guard_email":"guard@example.com","qr_id":"QR-MG-001","latitude":12.9716,"longitude":77.5946}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/public/scan", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.PublicScan(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d got %d body=%s", http.StatusServiceUnavailable, rr.Code, rr.Body.String())
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	m.locations.EXPECT().
		ValidateQR(gomock.Any(), "QR-MG-001").
		Return(domain.QRValidation{QRID: "QR-MG-001", Valid: true, Message: "QR code is valid and active"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/qr/validate/QR-MG-001", nil)
	req = withURLParam(req, "qr_id", "QR-MG-001")
	rr := httptest.NewRecorder()

	h.Validate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.QRValidation](t, rr)
	if !got.Valid {
		t.Fatalf("unexpected validation %+v", got)
	}
}

func supervisorContext(r *http.Request, sup domain.Supervisor) *http.Request {
	rr := httptest.NewRecorder()
	var out *http.Request
	mw := middleware.SupervisorAuth(stubSupervisorResolver{sup: sup}, newTestLogger())
	mw(http.HandlerFunc(func(_ http.ResponseWriter, req *http.Request) {
		out = req
	})).ServeHTTP(rr, r)
	return out
}

type stubSupervisorResolver struct {
	sup domain.Supervisor
}

func (s stubSupervisorResolver) ResolveSupervisor(_ context.Context, _ string) (*domain.Supervisor, error) {
	return &s.sup, nil
}

func TestGenerate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	supID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	m.generator.EXPECT().
		Generate(gomock.Any(), supID, domain.GenerateQRRequest{QRID: "QR-MG-001", Size: 10}).
		Return(&domain.GeneratedQR{
			QRID:        "QR-MG-001",
			QRCodeImage: "data:image/png;base64,abc",
			Size:        10,
		}, nil).
		Times(1)

	body := `{"qr_id":"QR-MG-001","size":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/generate", bytes.NewBufferString(body))
	req.Header.Set("X-Supervisor-Email", "sup@example.com")
	req = supervisorContext(req, domain.Supervisor{ID: supID, AreaCity: "Bengaluru"})
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestGenerate_NoSupervisorIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newHandler(ctrl)

	body := `{"qr_id":"QR-MG-001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/qr/generate", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Generate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestLocationDeactivate_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newHandler(ctrl)

	supID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	m.locations.EXPECT().
		Deactivate(gomock.Any(), supID, "QR-GONE").
		Return(e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/qr/locations/QR-GONE", nil)
	req.Header.Set("X-Supervisor-Email", "sup@example.com")
	req = supervisorContext(req, domain.Supervisor{ID: supID})
	req = withURLParam(req, "qr_id", "QR-GONE")
	rr := httptest.NewRecorder()

	h.LocationDeactivate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
