package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/config"
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/rvbgo/rentvsbuy-calculator/internal/output"
	"github.com/shopspring/decimal"
)

const maxRequestBody = 1 << 20 // 1 MiB

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	resp := errorResponse{Error: err.Error()}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Error = "invalid inputs"
		resp.Fields = verrs
	}
	s.writeJSON(w, code, resp)
}

// decodeScenario reads and parses the request body as a scenario document.
func (s *Server) decodeScenario(r *http.Request) (*config.ScenarioFile, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return nil, err
	}
	return s.parser.Parse(data)
}

// resolveInputs layers city presets under the request's explicit overrides
// and validates the merged parameter set.
func (s *Server) resolveInputs(sf *config.ScenarioFile) (*domain.SimulationInputs, error) {
	base := domain.DefaultInputs()
	if sf.City != "" {
		profile, err := s.market.City(sf.City)
		if err != nil {
			return nil, err
		}
		overrides := profile.Overrides()
		base = overrides.Apply(base)
	}
	merged := sf.Inputs.Apply(base)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	sf, err := s.decodeScenario(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := s.resolveInputs(sf)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.engine.RunScenario(r.Context(), in)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.metrics.simulationsRun.Inc()
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleComputeFormatted(w http.ResponseWriter, r *http.Request) {
	sf, err := s.decodeScenario(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := s.resolveInputs(sf)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.engine.RunScenario(r.Context(), in)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.metrics.simulationsRun.Inc()

	rec := s.advisor.Advise(result, sf.Context)
	s.writeJSON(w, http.StatusOK, output.BuildDisplayPayload(result, rec))
}

func (s *Server) handleMonteCarlo(w http.ResponseWriter, r *http.Request) {
	sf, err := s.decodeScenario(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	in, err := s.resolveInputs(sf)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	mcCfg := calculation.DefaultMonteCarloConfig()
	if sf.Simulations > 0 {
		mcCfg.NumTrials = sf.Simulations
	}
	if mcCfg.NumTrials > s.cfg.MaxSims {
		mcCfg.NumTrials = s.cfg.MaxSims
	}
	mcCfg.Seed = sf.Seed

	sim := calculation.NewMonteCarloSimulator(s.engine, mcCfg)
	sim.Logger = calculation.ZerologAdapter{L: s.log}

	result, err := sim.Run(r.Context(), in)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, r.Context().Err()) && r.Context().Err() != nil {
			code = http.StatusServiceUnavailable
		}
		s.writeError(w, code, err)
		return
	}
	s.metrics.monteCarloTrials.Add(float64(result.NumTrials))
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]decimal.Decimal{
		"mortgage_rate_annual": s.rates.MortgageRate(),
		"discount_rate":        s.rates.DiscountRate(),
	})
}

func (s *Server) handleCityData(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("city"); name != "" {
		profile, err := s.market.City(name)
		if err != nil {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeJSON(w, http.StatusOK, profile)
		return
	}
	s.writeJSON(w, http.StatusOK, s.market.Cities())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
