package system_healthcheck

// ApiInfoResponseDTO is the landing payload on GET /.
type ApiInfoResponseDTO struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	DocsURL     string `json:"docs_url"`
	DemoApiKey  string `json:"demo_api_key"`
	KeyHeader   string `json:"key_header"`
}

type MemorySnapshotDTO struct {
	TotalMB     uint64  `json:"total_mb"`
	AvailableMB uint64  `json:"available_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// HealthResponseDTO always comes back with HTTP 200; Status carries
// the verdict so dashboards can poll without special-casing 5xx.
type HealthResponseDTO struct {
	Status    string             `json:"status"`
	Database  string             `json:"database"`
	Hostname  string             `json:"hostname,omitempty"`
	UptimeSec uint64             `json:"uptime_seconds,omitempty"`
	Memory    *MemorySnapshotDTO `json:"memory,omitempty"`
}

type ReadyResponseDTO struct {
	Status string `json:"status"`
}
