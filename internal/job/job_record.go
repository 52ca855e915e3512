package job

// JobRecord is the normalized shape every fetch strategy returns. Remote
// documents pass through Normalize before they become one of these; local
// records are stored in this shape directly.
type JobRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Address     string `json:"address"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"` // canonical RFC3339
	IsDone      bool   `json:"is_done"`

	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientNotes string `json:"client_notes"`

	// Photo locators. In local mode entries may be inline data URIs; remote
	// documents only ever carry locators (inline payloads are stripped on
	// read and rejected on write).
	Photos []string `json:"photos"`

	LaborHours   float64 `json:"labor_hours"`
	HourlyRate   float64 `json:"hourly_rate"`
	MaterialCost float64 `json:"material_cost"`

	// Both assignment lineages are retained so downstream consumers can
	// display either: the legacy single-assignee field and the current
	// multi-assignee set.
	AssignedToUID  string   `json:"assigned_to_uid,omitempty"`
	AssignedToUIDs []string `json:"assigned_to_uids"`

	OwnerUID     string `json:"owner_uid,omitempty"`
	CreatedByUID string `json:"created_by_uid,omitempty"`

	// Set only on records sitting in the local trash.
	DeletedAt string `json:"deleted_at,omitempty"`
}

// TotalCost is laborHours*hourlyRate + materialCost. Inputs are already
// normalized so the result can never be NaN.
func (j JobRecord) TotalCost() float64 {
	return j.LaborHours*j.HourlyRate + j.MaterialCost
}

// FetchResult is what the repository hands the screen layer. Failures never
// propagate as errors past this boundary; Partial reports that at least one
// underlying read failed and the list may be incomplete.
type FetchResult struct {
	Jobs    []JobRecord `json:"jobs"`
	Partial bool        `json:"partial"`
}
