package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"qrpatrol/internal/domain"
	"qrpatrol/internal/service"
	"qrpatrol/pkg/e"

	mock_service "qrpatrol/internal/service/mocks"
)

func TestGenerateQR_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locations := mock_service.NewMockLocationDirectory(ctrl)
	svc := service.NewQRCodeService(testLogger(), locations)

	locations.EXPECT().
		ResolveActive(gomock.Any(), "QR-MG-001", testSupervisorID).
		Return(testLocation(), nil)

	qr, err := svc.Generate(context.Background(), testSupervisorID, domain.GenerateQRRequest{
		QRID: "QR-MG-001",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !strings.HasPrefix(qr.QRCodeImage, "data:image/png;base64,") {
		t.Fatalf("expected a PNG data URI, got %q", qr.QRCodeImage[:32])
	}
	if qr.Size != 10 {
		t.Fatalf("expected default size 10, got %d", qr.Size)
	}
	if qr.LocationName != "Main Gate" {
		t.Fatalf("unexpected qr payload %+v", qr)
	}
}

func TestGenerateQR_UnknownLocation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locations := mock_service.NewMockLocationDirectory(ctrl)
	svc := service.NewQRCodeService(testLogger(), locations)

	locations.EXPECT().
		ResolveActive(gomock.Any(), "QR-GONE", testSupervisorID).
		Return(nil, e.ErrNotFound)

	_, err := svc.Generate(context.Background(), testSupervisorID, domain.GenerateQRRequest{QRID: "QR-GONE"})
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBulkGenerate_AllActiveLocations(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locations := mock_service.NewMockLocationDirectory(ctrl)
	svc := service.NewQRCodeService(testLogger(), locations)

	a := *testLocation()
	b := *testLocation()
	b.QRID = "QR-MG-002"
	b.LocationName = "Back Gate"

	locations.EXPECT().
		ListActive(gomock.Any(), testSupervisorID).
		Return([]domain.QRLocation{a, b}, nil)

	bulk, err := svc.BulkGenerate(context.Background(), testSupervisorID, "Bengaluru", 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if bulk.TotalQRCodes != 2 || len(bulk.QRCodes) != 2 {
		t.Fatalf("unexpected bulk result %+v", bulk)
	}
	if bulk.SupervisorArea != "Bengaluru" {
		t.Fatalf("unexpected area %q", bulk.SupervisorArea)
	}
}

func TestBulkGenerate_SizeOutOfRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locations := mock_service.NewMockLocationDirectory(ctrl)
	svc := service.NewQRCodeService(testLogger(), locations)

	_, err := svc.BulkGenerate(context.Background(), testSupervisorID, "Bengaluru", 99)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
