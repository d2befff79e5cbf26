package dto

import "time"

const (
	ModeLive = "live"
	ModeDemo = "demo"
)

type HealthResponse struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Environment string    `json:"environment"`
	Mode        string    `json:"mode"`
	AIProvider  string    `json:"ai_provider"`
	Timestamp   time.Time `json:"timestamp"`
}

type InfoResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
