//go:build integration

package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"qrpatrol/internal/domain"
	"qrpatrol/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY,
			email text NOT NULL UNIQUE,
			name text NOT NULL,
			role text NOT NULL,
			area_city text,
			is_active boolean NOT NULL,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS supervisors (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(id),
			area_city text NOT NULL,
			area_state text NOT NULL,
			area_country text NOT NULL,
			sheet_id text,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS guards (
			id uuid PRIMARY KEY,
			user_id uuid NOT NULL REFERENCES users(id),
			supervisor_id uuid NOT NULL REFERENCES supervisors(id),
			shift text NOT NULL,
			phone_number text NOT NULL,
			emergency_contact text,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS qr_locations (
			id uuid PRIMARY KEY,
			qr_id text NOT NULL,
			supervisor_id uuid NOT NULL REFERENCES supervisors(id),
			location_name text NOT NULL,
			geo_point geography(Point, 4326) NOT NULL,
			address text,
			area_city text NOT NULL,
			area_state text,
			area_country text,
			is_active boolean NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS scan_events (
			id uuid PRIMARY KEY,
			guard_id uuid NOT NULL REFERENCES guards(id),
			supervisor_id uuid NOT NULL REFERENCES supervisors(id),
			qr_location_id uuid NOT NULL REFERENCES qr_locations(id),
			qr_id text NOT NULL,
			location_name text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			address text,
			area_city text,
			area_state text,
			area_country text,
			is_within_radius boolean NOT NULL,
			distance_from_qr double precision NOT NULL,
			scanned_at timestamptz NOT NULL,
			notes text,
			device_info jsonb
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE scan_events, qr_locations, guards, supervisors, users CASCADE`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// seedHierarchy inserts one supervisor and one guard under it, returning the
// role row ids the repos operate on.
func seedHierarchy(t *testing.T) (supID, guardID uuid.UUID) {
	t.Helper()

	dir := NewDirectoryRepo(testPool, testLogger())

	supUser := &domain.User{Email: "sup@example.com", Name: "Priya Sharma", AreaCity: "Bengaluru"}
	sup := &domain.Supervisor{
		AreaCity:    "Bengaluru",
		AreaState:   "Karnataka",
		AreaCountry: "India",
		SheetID:     "sheet-42",
	}
	if err := dir.CreateSupervisor(context.Background(), supUser, sup); err != nil {
		t.Fatalf("CreateSupervisor: %v", err)
	}

	guardUser := &domain.User{Email: "guard@example.com", Name: "Ravi Kumar", AreaCity: "Bengaluru"}
	guard := &domain.Guard{
		SupervisorID: sup.ID,
		Shift:        "NIGHT",
		PhoneNumber:  "+91-9876543210",
	}
	if err := dir.CreateGuard(context.Background(), guardUser, guard); err != nil {
		t.Fatalf("CreateGuard: %v", err)
	}

	return sup.ID, guard.ID
}

func TestLocationRepo_Create_LatLngRoundTrip(t *testing.T) {

	truncateAll(t)
	supID, _ := seedHierarchy(t)

	repo := NewLocationRepo(testPool, testLogger())

	loc := &domain.QRLocation{
		QRID:         "QR-MG-001",
		SupervisorID: supID,
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	}
	if err := repo.Create(context.Background(), loc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if loc.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if !loc.IsActive {
		t.Fatalf("expected IsActive set")
	}

	got, err := repo.ResolveActive(context.Background(), "QR-MG-001", supID)
	if err != nil {
		t.Fatalf("ResolveActive: %v", err)
	}
	if got.Lat != loc.Lat || got.Lng != loc.Lng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.Lat, got.Lng, loc.Lat, loc.Lng)
	}
	if got.LocationName != "Main Gate" {
		t.Fatalf("unexpected row: %+v", got)
	}
}

func TestLocationRepo_ResolveActive_ScopedToSupervisor(t *testing.T) {

	truncateAll(t)
	supID, _ := seedHierarchy(t)

	repo := NewLocationRepo(testPool, testLogger())

	loc := &domain.QRLocation{
		QRID:         "QR-MG-001",
		SupervisorID: supID,
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	}
	if err := repo.Create(context.Background(), loc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.ResolveActive(context.Background(), "QR-MG-001", uuid.New())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign supervisor, got: %v", err)
	}
}

func TestLocationRepo_Deactivate_HidesFromActiveLookups(t *testing.T) {

	truncateAll(t)
	supID, _ := seedHierarchy(t)

	repo := NewLocationRepo(testPool, testLogger())

	loc := &domain.QRLocation{
		QRID:         "QR-MG-001",
		SupervisorID: supID,
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	}
	if err := repo.Create(context.Background(), loc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Deactivate(context.Background(), "QR-MG-001", supID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	_, err := repo.ResolveActive(context.Background(), "QR-MG-001", supID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after deactivate, got: %v", err)
	}

	active, err := repo.ListActive(context.Background(), supID)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active locations, got %d", len(active))
	}

	err = repo.Deactivate(context.Background(), "QR-MG-001", supID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second deactivate, got: %v", err)
	}
}

func TestLocationRepo_ListBySupervisor_Pagination(t *testing.T) {

	truncateAll(t)
	supID, _ := seedHierarchy(t)

	repo := NewLocationRepo(testPool, testLogger())

	for i := 0; i < 3; i++ {
		loc := &domain.QRLocation{
			QRID:         fmt.Sprintf("QR-MG-%03d", i+1),
			SupervisorID: supID,
			LocationName: fmt.Sprintf("Gate %d", i+1),
			Lat:          12.97 + float64(i)/1000,
			Lng:          77.59,
			AreaCity:     "Bengaluru",
		}
		if err := repo.Create(context.Background(), loc); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page1, total, err := repo.ListBySupervisor(context.Background(), supID, true, 2, 0)
	if err != nil {
		t.Fatalf("ListBySupervisor: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 got=%d", total)
	}
	if len(page1) != 2 {
		t.Fatalf("expected len=2 got=%d", len(page1))
	}

	page2, total2, err := repo.ListBySupervisor(context.Background(), supID, true, 2, 2)
	if err != nil {
		t.Fatalf("ListBySupervisor page2: %v", err)
	}
	if total2 != 3 || len(page2) != 1 {
		t.Fatalf("expected total=3 len=1 got total=%d len=%d", total2, len(page2))
	}
}

func TestScanRepo_Insert_RoundTrip(t *testing.T) {

	truncateAll(t)
	supID, guardID := seedHierarchy(t)

	locations := NewLocationRepo(testPool, testLogger())
	scans := NewScanRepo(testPool, testLogger())

	loc := &domain.QRLocation{
		QRID:         "QR-MG-001",
		SupervisorID: supID,
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	}
	if err := locations.Create(context.Background(), loc); err != nil {
		t.Fatalf("Create location: %v", err)
	}

	event := &domain.ScanEvent{
		GuardID:        guardID,
		SupervisorID:   supID,
		QRLocationID:   loc.ID,
		QRID:           "QR-MG-001",
		LocationName:   "Main Gate",
		Lat:            12.9720,
		Lng:            77.5950,
		Address:        "MG Road, Bengaluru",
		AreaCity:       "Bengaluru",
		IsWithinRadius: false,
		DistanceFromQR: 62.04,
		Notes:          "gate locked",
		DeviceInfo:     map[string]string{"model": "Pixel 7"},
	}
	if err := scans.Insert(context.Background(), event); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if event.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if event.ScannedAt.IsZero() {
		t.Fatalf("expected ScannedAt set")
	}

	history, err := scans.History(context.Background(), guardID, domain.ScanHistoryRequest{Limit: 10})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 event got %d", len(history))
	}
	got := history[0]
	if got.ID != event.ID || got.DistanceFromQR != 62.04 || got.IsWithinRadius {
		t.Fatalf("unexpected event: %+v", got)
	}
	if got.Notes != "gate locked" {
		t.Fatalf("notes lost: %+v", got)
	}
}

func TestScanRepo_Insert_RejectsBadCoordinates(t *testing.T) {

	truncateAll(t)
	supID, guardID := seedHierarchy(t)

	scans := NewScanRepo(testPool, testLogger())

	event := &domain.ScanEvent{
		GuardID:      guardID,
		SupervisorID: supID,
		QRLocationID: uuid.New(),
		QRID:         "QR-MG-001",
		Lat:          95,
		Lng:          77.5946,
	}
	err := scans.Insert(context.Background(), event)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestScanRepo_History_Filters(t *testing.T) {

	truncateAll(t)
	supID, guardID := seedHierarchy(t)

	locations := NewLocationRepo(testPool, testLogger())
	scans := NewScanRepo(testPool, testLogger())

	loc := &domain.QRLocation{
		QRID:         "QR-MG-001",
		SupervisorID: supID,
		LocationName: "Main Gate",
		Lat:          12.9716,
		Lng:          77.5946,
		AreaCity:     "Bengaluru",
	}
	if err := locations.Create(context.Background(), loc); err != nil {
		t.Fatalf("Create location: %v", err)
	}

	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	for i, within := range []bool{true, false, true} {
		event := &domain.ScanEvent{
			GuardID:        guardID,
			SupervisorID:   supID,
			QRLocationID:   loc.ID,
			QRID:           "QR-MG-001",
			LocationName:   "Main Gate",
			Lat:            12.9716,
			Lng:            77.5946,
			AreaCity:       "Bengaluru",
			IsWithinRadius: within,
			ScannedAt:      base.Add(time.Duration(i) * time.Hour),
		}
		if err := scans.Insert(context.Background(), event); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	within := true
	filtered, err := scans.History(context.Background(), guardID, domain.ScanHistoryRequest{
		WithinRadiusOnly: &within,
		Limit:            10,
	})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 within-radius events got %d", len(filtered))
	}

	from := base.Add(90 * time.Minute)
	ranged, err := scans.History(context.Background(), guardID, domain.ScanHistoryRequest{
		From:  &from,
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("History from: %v", err)
	}
	if len(ranged) != 1 {
		t.Fatalf("expected 1 event after %v got %d", from, len(ranged))
	}

	totalWithin, err := scans.CountWithinRadius(context.Background(), guardID)
	if err != nil {
		t.Fatalf("CountWithinRadius: %v", err)
	}
	if totalWithin != 2 {
		t.Fatalf("expected 2 got %d", totalWithin)
	}
}

func TestDirectoryRepo_GuardIdentityByEmail(t *testing.T) {

	truncateAll(t)
	supID, guardID := seedHierarchy(t)

	dir := NewDirectoryRepo(testPool, testLogger())

	identity, err := dir.GuardIdentityByEmail(context.Background(), "guard@example.com")
	if err != nil {
		t.Fatalf("GuardIdentityByEmail: %v", err)
	}
	if identity.GuardID != guardID || identity.SupervisorID != supID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.Shift != "NIGHT" || identity.AreaCity != "Bengaluru" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	_, err = dir.GuardIdentityByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestDirectoryRepo_GuardIdentityByEmail_DisabledGuardHidden(t *testing.T) {

	truncateAll(t)
	seedHierarchy(t)

	dir := NewDirectoryRepo(testPool, testLogger())

	identity, err := dir.GuardIdentityByEmail(context.Background(), "guard@example.com")
	if err != nil {
		t.Fatalf("GuardIdentityByEmail: %v", err)
	}

	if err := dir.DisableUser(context.Background(), identity.UserID); err != nil {
		t.Fatalf("DisableUser: %v", err)
	}

	_, err = dir.GuardIdentityByEmail(context.Background(), "guard@example.com")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for disabled guard, got: %v", err)
	}
}

func TestDirectoryRepo_Counts(t *testing.T) {

	truncateAll(t)
	seedHierarchy(t)

	dir := NewDirectoryRepo(testPool, testLogger())

	total, err := dir.CountUsers(context.Background(), false)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 users got %d", total)
	}

	sups, err := dir.CountSupervisors(context.Background())
	if err != nil {
		t.Fatalf("CountSupervisors: %v", err)
	}
	if sups != 1 {
		t.Fatalf("expected 1 supervisor got %d", sups)
	}
}
