package response

import (
	"time"

	"metalmetrics/internal/domain/entities"
)

type JobResponse struct {
	ID           string `json:"id"`
	JobNumber    string `json:"job_number"`
	CustomerName string `json:"customer_name"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Estimate *EstimateResponse `json:"estimate,omitempty"`
	Actuals  *ActualsResponse  `json:"actuals,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	resp := JobResponse{
		ID:           j.ID,
		JobNumber:    j.JobNumber,
		CustomerName: j.CustomerName,
		Description:  j.Description,
		Status:       string(j.Status),
		CompletedAt:  j.CompletedAt,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
	if j.Estimate != nil {
		e := FromCostEstimate(*j.Estimate)
		resp.Estimate = &e
	}
	if j.Actuals != nil {
		a := FromActualsRecord(*j.Actuals)
		resp.Actuals = &a
	}
	return resp
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
