package handler

// Request/response types owned by the transport layer. They are kept
// separate from ports/domain types so the JSON contract is not coupled
// to internal service changes.

// errorResponse documents the standard error envelope in swag output.
type errorResponse struct {
	Error string `json:"error"`
}

// --- auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- supervisors ---

type registerSupervisorRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type supervisorsResponse struct {
	Supervisors []string `json:"supervisors"`
}

// --- players ---

type addPlayerRequest struct {
	SteamID    string `json:"steam_id"   validate:"required"`
	Name       string `json:"name"       validate:"required"`
	Discord    string `json:"discord"    validate:"required"`
	Supervisor string `json:"supervisor" validate:"required"`
}

type playerResponse struct {
	SteamID    string `json:"steam_id"`
	Name       string `json:"name"`
	Discord    string `json:"discord"`
	Supervisor string `json:"supervisor"`
}

type playersResponse struct {
	Players []playerResponse `json:"players"`
}

// --- statuses ---

type setStatusRequest struct {
	Kind      string `json:"status"     validate:"required,oneof=отпуск мороз"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	ReturnDay string `json:"return_day" validate:"omitempty"`
}

type statusResponse struct {
	SteamID   string `json:"steam_id"`
	Kind      string `json:"status"`
	EndDate   string `json:"end_date"`
	ReturnDay string `json:"return_day,omitempty"`
}

type statusesResponse struct {
	Statuses []statusResponse `json:"statuses"`
}

// --- reports ---

type reportResponse struct {
	Report          string `json:"report"`
	Players         int    `json:"players"`
	MatchedRows     int    `json:"matched_rows"`
	DuplicateUpload bool   `json:"duplicate_upload"`
}
