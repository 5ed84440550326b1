package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/me/seeksim/pkg/disk"
	"github.com/me/seeksim/pkg/model"
)

// handleCreateSimulation runs one scheduling policy over the posted
// request set and returns the computed result. Nothing is stored.
func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var spec model.SimulationSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	result, apiErr := runSimulation(spec)
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	s.logger.Debug("simulation computed",
		"id", result.ID,
		"algorithm", result.Algorithm,
		"requests", len(result.Requests),
		"total_seek", result.TotalSeek,
	)
	respondCreated(w, reqID, result)
}

// handleListAlgorithms describes the four policies.
func (s *Server) handleListAlgorithms(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	policies := []disk.Policy{disk.PolicyFCFS, disk.PolicySSTF, disk.PolicySCAN, disk.PolicyCSCAN}
	infos := make([]model.AlgorithmInfo, 0, len(policies))
	for _, p := range policies {
		infos = append(infos, model.AlgorithmInfo{
			ID:             string(p),
			Name:           p.DisplayName(),
			NeedsDirection: p.NeedsDirection(),
		})
	}
	respondOK(w, reqID, infos)
}

// runSimulation validates a simulation spec, runs the named policy, and
// maps engine errors to field-level API errors.
func runSimulation(spec model.SimulationSpec) (*model.SimulationResult, *model.APIError) {
	policy, err := disk.ParsePolicy(spec.Algorithm)
	if err != nil {
		return nil, model.NewValidationError(err.Error(),
			model.FieldError{Field: "algorithm", Message: err.Error()})
	}

	sched, err := disk.New(spec.InitialPosition, spec.MaxCylinder)
	if err != nil {
		field := "max_cylinder"
		var rangeErr *disk.RangeError
		if errors.As(err, &rangeErr) {
			field = "initial_position"
		}
		return nil, model.NewValidationError(err.Error(),
			model.FieldError{Field: field, Message: err.Error()})
	}
	for _, req := range spec.Requests {
		if err := sched.AddRequest(req); err != nil {
			return nil, model.NewValidationError(err.Error(),
				model.FieldError{Field: "requests", Message: err.Error()})
		}
	}

	direction := disk.Direction(spec.Direction)
	if policy.NeedsDirection() && direction == "" {
		direction = disk.DirectionRight
	}

	res, err := sched.Run(policy, direction)
	if err != nil {
		return nil, model.NewValidationError(err.Error(),
			model.FieldError{Field: "direction", Message: err.Error()})
	}

	out := &model.SimulationResult{
		ID:              "sim_" + uuid.New().String()[:8],
		Algorithm:       string(policy),
		AlgorithmName:   policy.DisplayName(),
		InitialPosition: spec.InitialPosition,
		MaxCylinder:     spec.MaxCylinder,
		Requests:        sched.Requests(),
		Sequence:        res.Sequence,
		TotalSeek:       res.TotalSeek,
		AverageSeek:     res.AverageSeek(),
		CreatedAt:       time.Now().UTC(),
	}
	if policy.NeedsDirection() {
		out.Direction = string(direction)
	}
	return out, nil
}
