package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"qrpatrol/internal/config"
	"qrpatrol/internal/domain"
	"qrpatrol/internal/service"
	"qrpatrol/pkg/e"

	mock_service "qrpatrol/internal/service/mocks"
)

func newLocationService(ctrl *gomock.Controller) (service.LocationService, *mock_service.MockLocationDirectory, *mock_service.MockLocationCache) {
	locations := mock_service.NewMockLocationDirectory(ctrl)
	cache := mock_service.NewMockLocationCache(ctrl)
	svc := service.NewLocationService(testLogger(), locations, cache, config.CacheConfig{
		LocationTTL:     5 * time.Minute,
		RefreshInterval: 30 * time.Second,
	})
	return svc, locations, cache
}

func TestLocationCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, locations, cache := newLocationService(ctrl)

	locations.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *domain.QRLocation) error {
			if loc.SupervisorID != testSupervisorID || !loc.IsActive {
				t.Fatalf("bad location row: %+v", loc)
			}
			return nil
		})
	locations.EXPECT().
		ListActive(gomock.Any(), testSupervisorID).
		Return([]domain.QRLocation{}, nil)
	cache.EXPECT().
		SetActive(gomock.Any(), testSupervisorID, gomock.Any(), 5*time.Minute).
		Return(nil)

	loc, err := svc.Create(context.Background(), testSupervisorID, domain.CreateLocationRequest{
		QRID:         "QR-MG-001",
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc.QRID != "QR-MG-001" || !loc.IsActive {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestLocationCreate_BadCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newLocationService(ctrl)

	_, err := svc.Create(context.Background(), testSupervisorID, domain.CreateLocationRequest{
		QRID:         "QR-MG-001",
		LocationName: "Main Gate",
		Lat:          123.45,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	})
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateQR_Active(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, locations, _ := newLocationService(ctrl)

	locations.EXPECT().
		GetActiveByQRID(gomock.Any(), "QR-MG-001").
		Return(testLocation(), nil)

	v, err := svc.ValidateQR(context.Background(), "QR-MG-001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !v.Valid || v.LocationName != "Main Gate" {
		t.Fatalf("unexpected validation %+v", v)
	}
}

func TestValidateQR_Unknown_NotAnError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, locations, _ := newLocationService(ctrl)

	locations.EXPECT().
		GetActiveByQRID(gomock.Any(), "QR-GONE").
		Return(nil, e.ErrNotFound)

	v, err := svc.ValidateQR(context.Background(), "QR-GONE")
	if err != nil {
		t.Fatalf("lookup miss should not error: %v", err)
	}
	if v.Valid {
		t.Fatalf("unknown code must be invalid, got %+v", v)
	}
}

func TestActiveForSupervisor_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cache := newLocationService(ctrl)

	cached := []domain.CachedLocation{{QRID: "QR-MG-001", LocationName: "Main Gate"}}
	cache.EXPECT().
		GetActive(gomock.Any(), testSupervisorID).
		Return(cached, nil)

	got, err := svc.ActiveForSupervisor(context.Background(), testSupervisorID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].QRID != "QR-MG-001" {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestActiveForSupervisor_CacheMiss_Repopulates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, locations, cache := newLocationService(ctrl)

	cache.EXPECT().
		GetActive(gomock.Any(), testSupervisorID).
		Return(nil, nil)
	locations.EXPECT().
		ListActive(gomock.Any(), testSupervisorID).
		Return([]domain.QRLocation{*testLocation()}, nil)
	cache.EXPECT().
		SetActive(gomock.Any(), testSupervisorID, gomock.Any(), 5*time.Minute).
		Return(nil)

	got, err := svc.ActiveForSupervisor(context.Background(), testSupervisorID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].QRID != "QR-MG-001" {
		t.Fatalf("unexpected listing %+v", got)
	}
}

func TestDeactivate_NotFoundPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, locations, _ := newLocationService(ctrl)

	locations.EXPECT().
		Deactivate(gomock.Any(), "QR-GONE", testSupervisorID).
		Return(e.ErrNotFound)

	err := svc.Deactivate(context.Background(), testSupervisorID, "QR-GONE")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
