package model

import "time"

// Response is the standard API response envelope.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

// SimulationSpec is the request body for POST /api/v1/simulations.
type SimulationSpec struct {
	InitialPosition int    `json:"initial_position"`
	MaxCylinder     int    `json:"max_cylinder"`
	Requests        []int  `json:"requests"`
	Algorithm       string `json:"algorithm"`
	Direction       string `json:"direction,omitempty"` // scan only
}

// SimulationResult is the computed outcome of one simulation run.
type SimulationResult struct {
	ID              string    `json:"id"`
	Algorithm       string    `json:"algorithm"`
	AlgorithmName   string    `json:"algorithm_name"`
	Direction       string    `json:"direction,omitempty"`
	InitialPosition int       `json:"initial_position"`
	MaxCylinder     int       `json:"max_cylinder"`
	Requests        []int     `json:"requests"`
	Sequence        []int     `json:"sequence"`
	TotalSeek       int       `json:"total_seek"`
	AverageSeek     float64   `json:"average_seek"`
	CreatedAt       time.Time `json:"created_at"`
}

// AlgorithmInfo describes one scheduling policy for discovery clients.
type AlgorithmInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NeedsDirection bool   `json:"needs_direction"`
}
