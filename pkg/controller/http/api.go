package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
	"github.com/secmon-lab/threatcalc/pkg/utils/errutil"
	"github.com/secmon-lab/threatcalc/pkg/utils/logging"
	"github.com/secmon-lab/threatcalc/pkg/utils/safe"
)

// ErrInvalidRequest is returned for malformed request bodies
var ErrInvalidRequest = goerr.New("invalid request")

type errorResponse struct {
	Error     string `json:"error"`
	Parameter string `json:"parameter,omitempty"`
}

type defaultsResponse struct {
	Threat     model.ThreatProfileInput        `json:"threat"`
	Complexity model.ComplexitySplitParameters `json:"complexity"`
}

type tierRequest struct {
	Probability *float64 `json:"probability"`
}

type tierResponse struct {
	Probability float64        `json:"probability"`
	Tier        types.RiskTier `json:"tier"`
	Label       string         `json:"label"`
}

type batchRequest struct {
	Scenarios []model.NamedScenario `json:"scenarios"`
}

type batchResponse struct {
	Results []model.ScenarioResult `json:"results"`
}

type sweepRequest struct {
	Parameter string                    `json:"parameter"`
	Steps     int                       `json:"steps"`
	Base      *model.ThreatProfileInput `json:"base"`
}

type sweepResponse struct {
	Parameter string             `json:"parameter"`
	Points    []model.SweepPoint `json:"points"`
}

func defaultsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, defaultsResponse{
		Threat:     model.DefaultThreatProfileInput(),
		Complexity: model.DefaultComplexitySplitParameters(),
	})
}

// threatHandler evaluates a threat profile. Omitted fields keep their default value.
func threatHandler(uc ThreatUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := model.DefaultThreatProfileInput()
		if err := decodeJSON(w, r, &input); err != nil {
			writeError(w, r, err)
			return
		}

		profile, err := uc.EvaluateProfile(r.Context(), input)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, profile)
	}
}

func complexityHandler(uc ComplexityUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := model.DefaultComplexitySplitParameters()
		if err := decodeJSON(w, r, &params); err != nil {
			writeError(w, r, err)
			return
		}

		report, err := uc.Evaluate(r.Context(), params)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, report)
	}
}

func tierHandler(uc ThreatUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tierRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Probability == nil {
			writeError(w, r, goerr.Wrap(ErrInvalidRequest, "probability is required"))
			return
		}

		tier, err := uc.Classify(r.Context(), *req.Probability)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, tierResponse{
			Probability: *req.Probability,
			Tier:        tier,
			Label:       tier.Label(),
		})
	}
}

func batchHandler(uc ScenarioUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		results, err := uc.EvaluateBatch(r.Context(), req.Scenarios)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, batchResponse{Results: results})
	}
}

// sweepHandler varies one parameter of base, which defaults field by field to the default profile
func sweepHandler(uc ScenarioUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := model.DefaultThreatProfileInput()
		req := sweepRequest{Base: &base}
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		if req.Base == nil {
			req.Base = &base
		}

		points, err := uc.Sweep(r.Context(), *req.Base, req.Parameter, req.Steps)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, sweepResponse{Parameter: req.Parameter, Points: points})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return goerr.Wrap(ErrInvalidRequest, "failed to decode request body", goerr.V("error", err.Error()))
	}
	return nil
}

// statusOf maps caller mistakes to 400 and everything else to 500
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, model.ErrDomainViolation),
		errors.Is(err, model.ErrUnknownParameter),
		errors.Is(err, model.ErrInvalidSweepSteps),
		errors.Is(err, model.ErrScenarioModel),
		errors.Is(err, model.ErrScenarioNameRequired),
		errors.Is(err, usecase.ErrEmptyBatch),
		errors.Is(err, usecase.ErrDuplicateScenario):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	logging.From(r.Context()).Info("request rejected", "error", err.Error(), "status", status)
	writeJSON(w, r, status, errorResponse{
		Error:     err.Error(),
		Parameter: model.ViolatedParameter(err),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	safe.Respond(r.Context(), w, status, "application/json", data)
}
