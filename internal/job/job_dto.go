package job

type UpsertJobRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=200"`
	Address        string   `json:"address" binding:"omitempty,max=300"`
	Description    string   `json:"description"`
	ClientName     string   `json:"client_name" binding:"omitempty,max=150"`
	ClientPhone    string   `json:"client_phone" binding:"omitempty,max=50"`
	ClientNotes    string   `json:"client_notes"`
	Photos         []string `json:"photos"`
	LaborHours     float64  `json:"labor_hours" binding:"omitempty,gte=0"`
	HourlyRate     float64  `json:"hourly_rate" binding:"omitempty,gte=0"`
	MaterialCost   float64  `json:"material_cost" binding:"omitempty,gte=0"`
	AssignedToUIDs []string `json:"assigned_to_uids"`
}

type MarkDoneRequest struct {
	IsDone *bool `json:"is_done" binding:"required"`
}

type JobResponse struct {
	JobRecord
	TotalCost float64 `json:"total_cost"`
}

type JobListResponse struct {
	Jobs    []JobResponse `json:"jobs"`
	Partial bool          `json:"partial"`
}

func toJobResponse(rec JobRecord) JobResponse {
	return JobResponse{JobRecord: rec, TotalCost: rec.TotalCost()}
}

func toJobListResponse(result FetchResult) JobListResponse {
	jobs := make([]JobResponse, 0, len(result.Jobs))
	for _, rec := range result.Jobs {
		jobs = append(jobs, toJobResponse(rec))
	}
	return JobListResponse{Jobs: jobs, Partial: result.Partial}
}
