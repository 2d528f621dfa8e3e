package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleSupervisor UserRole = "SUPERVISOR"
	RoleGuard      UserRole = "GUARD"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	AreaCity  string    `json:"area_city,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Supervisor struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	AreaCity    string    `json:"area_city"`
	AreaState   string    `json:"area_state"`
	AreaCountry string    `json:"area_country"`
	SheetID     string    `json:"sheet_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Guard struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	SupervisorID     uuid.UUID `json:"supervisor_id"`
	Shift            string    `json:"shift"`
	PhoneNumber      string    `json:"phone_number"`
	EmergencyContact string    `json:"emergency_contact"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// GuardIdentity is the resolved actor of a scan: an active guard joined with
// its user row and owning supervisor. Authentication itself happens outside
// this service; handlers resolve the identity before calling the core.
type GuardIdentity struct {
	GuardID      uuid.UUID `json:"guard_id"`
	UserID       uuid.UUID `json:"user_id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AreaCity     string    `json:"area_city"`
	Shift        string    `json:"shift"`
}

// SupervisorProfile and GuardProfile are role rows joined with user data,
// the shape admin listings respond with.
type SupervisorProfile struct {
	Supervisor
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type GuardProfile struct {
	Guard
	Email    string `json:"email"`
	Name     string `json:"name"`
	AreaCity string `json:"area_city"`
	IsActive bool   `json:"is_active"`
}
