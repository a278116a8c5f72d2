package request

// CreateJobRequest opens a new job in the Quoted state.
type CreateJobRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Description  string `json:"description"`
}
