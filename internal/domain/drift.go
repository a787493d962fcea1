package domain

// DriftReport compares the operations this client knows with the ones an
// agent publishes.
type DriftReport struct {
	Source       string `json:"source"`
	AgentVersion string `json:"agent_version,omitempty"`
	Matched      int    `json:"matched"`
	// MissingOnServer are known operations the agent does not publish.
	MissingOnServer []OperationRef `json:"missing_on_server"`
	// Uncovered are published operations with no typed wrapper.
	Uncovered []OperationRef `json:"uncovered"`
}

// InSync reports whether every known operation is published by the agent.
func (r DriftReport) InSync() bool { return len(r.MissingOnServer) == 0 }
