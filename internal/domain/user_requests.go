package domain

type CreateSupervisorRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	AreaCity    string `json:"area_city" validate:"required"`
	AreaState   string `json:"area_state" validate:"required"`
	AreaCountry string `json:"area_country" validate:"required"`
	SheetID     string `json:"sheet_id" validate:"omitempty"`
}

type CreateGuardRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Name             string `json:"name" validate:"required"`
	SupervisorID     string `json:"supervisor_id" validate:"required,uuid"`
	Shift            string `json:"shift" validate:"required,oneof=MORNING EVENING NIGHT"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty"`
}

type ListUsersRequest struct {
	Role   string `query:"role" validate:"omitempty,oneof=ADMIN SUPERVISOR GUARD"`
	Active *bool  `query:"active"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
	Offset int    `query:"offset" validate:"min=0"`
}

type ListSupervisorsRequest struct {
	AreaCity string `query:"area_city"`
	Active   *bool  `query:"active"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
	Offset   int    `query:"offset" validate:"min=0"`
}

type ListGuardsRequest struct {
	SupervisorID string `query:"supervisor_id" validate:"omitempty,uuid"`
	AreaCity     string `query:"area_city"`
	Active       *bool  `query:"active"`
	Limit        int    `query:"limit" validate:"min=1,max=100"`
	Offset       int    `query:"offset" validate:"min=0"`
}
