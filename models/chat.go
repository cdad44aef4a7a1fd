package models

// ChatRequest is the body of the free-form chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the short reply of the free-form chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}

// HealthStatus is the last known liveness of the backend.
type HealthStatus struct {
	Healthy bool
	Err     error
}
