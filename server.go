package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/CSA2-Thesis/crossword-solver/models"
)

// Server handles HTTP requests and coordinates between the solver
// backend, run-record storage and the optional ClickHouse mirror.
type Server struct {
	storage models.Storage
	backend *BackendClient
	mirror  *MetricsMirror
}

func NewServer(storage models.Storage, backend *BackendClient, mirror *MetricsMirror) *Server {
	return &Server{
		storage: storage,
		backend: backend,
		mirror:  mirror,
	}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Route("/api", func(r chi.Router) {
		// Puzzle pipeline
		r.Post("/generate", s.handleGenerate)
		r.Post("/solve", s.handleSolve)
		r.Post("/analyze", s.handleAnalyze)

		// Run records
		r.Get("/records", s.handleGetRecords)
		r.Delete("/records", s.handleClearRecords)

		// Aggregated statistics
		r.Get("/stats/algorithms", s.handleAlgorithmStats)
		r.Get("/stats/sizes", s.handleSizeStats)
		r.Get("/stats/matrix", s.handleMatrixStats)
		r.Get("/insights", s.handleInsights)

		r.Get("/server/ping", s.handlePing)

		// Record tags
		r.Route("/records/{recordId}", func(r chi.Router) {
			r.Get("/tags", s.handleGetRecordTags)
			r.Post("/tags", s.handleAddTag)
			r.Post("/star", s.handleToggleStar)
		})
		r.Delete("/tags/{tagId}", s.handleDeleteTag)
	})

	return r
}

// AnalyzeRequest carries a solved grid plus the reference puzzle it
// should be scored against.
type AnalyzeRequest struct {
	Solution models.Grid    `json:"solution"`
	Grid     models.Grid    `json:"grid"`
	Clues    models.ClueSet `json:"clues"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ScoreGrid(req.Solution, req.Grid, req.Clues)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size       int               `json:"size"`
		Difficulty models.Difficulty `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Size <= 0 {
		req.Size = 15
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}

	puzzle, err := s.backend.Generate(r.Context(), req.Size, req.Difficulty)
	if err != nil {
		log.Printf("Generate error: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzle)
}

// SolveAPIRequest is the incoming request for a full solve round:
// proxy to the backend, score the returned solution against the
// reference grid, and record the metrics.
type SolveAPIRequest struct {
	Grid                  models.Grid       `json:"grid"`
	Clues                 models.ClueSet    `json:"clues"`
	Algorithm             models.Algorithm  `json:"algorithm"`
	Difficulty            models.Difficulty `json:"difficulty,omitempty"`
	EnableMemoryProfiling bool              `json:"enable_memory_profiling,omitempty"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Grid) == 0 || req.Clues.Len() == 0 {
		http.Error(w, "missing grid or clues", http.StatusBadRequest)
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = models.AlgorithmHybrid
	}
	if !validAlgorithm(req.Algorithm) {
		http.Error(w, "invalid algorithm", http.StatusBadRequest)
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}

	solveResp, err := s.backend.Solve(r.Context(), req.Grid, req.Clues, req.Algorithm, req.EnableMemoryProfiling)
	if err != nil {
		log.Printf("Solve error: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	analysis := ScoreGrid(solveResp.Solution, req.Grid, req.Clues)

	record, err := buildRunRecord(&req, solveResp, analysis)
	if err != nil {
		log.Printf("Skipping record for unparsable metrics: %v", err)
	}

	stored := false
	if record != nil {
		stored, err = s.storage.Store(record)
		if err != nil {
			log.Printf("Failed to store run record: %v", err)
		}
		if stored && s.mirror != nil {
			// Best effort: an unreachable mirror never fails a solve.
			if err := s.mirror.InsertRecord(r.Context(), record); err != nil {
				log.Printf("Failed to mirror record %s to ClickHouse: %v", record.ID, err)
			}
		}
	}

	response := map[string]interface{}{
		"solution":     solveResp.Solution,
		"method":       solveResp.Method,
		"success":      solveResp.Success,
		"metrics":      solveResp.Metrics,
		"analysis":     analysis,
		"recordStored": stored,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// buildRunRecord distills one solve round into a persistable record.
func buildRunRecord(req *SolveAPIRequest, resp *models.SolveResponse, analysis models.AnalysisResult) (*models.RunRecord, error) {
	executionTime, err := models.ParseExecutionTime(resp.Metrics.ExecutionTime)
	if err != nil {
		return nil, err
	}
	placed, _, err := models.ParseWordsPlaced(resp.Metrics.WordsPlaced)
	if err != nil {
		return nil, err
	}

	puzzleData, _ := json.Marshal(map[string]interface{}{
		"grid":  req.Grid,
		"clues": req.Clues,
	})

	return &models.RunRecord{
		ID:            uuid.New().String(),
		Timestamp:     time.Now(),
		Algorithm:     req.Algorithm,
		Size:          req.Grid.Height(),
		Difficulty:    req.Difficulty,
		CellAccuracy:  analysis.Accuracy,
		WordAccuracy:  analysis.WordAccuracy,
		ExecutionTime: executionTime,
		MemoryUsage:   resp.Metrics.MemoryUsageKB,
		WordsPlaced:   placed,
		PuzzleData:    puzzleData,
	}, nil
}

func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.storage.GetAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*models.RunRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (s *Server) handleClearRecords(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dedupedRecords reads all records and applies the read-time dedup
// pass used by every aggregation endpoint.
func (s *Server) dedupedRecords() ([]*models.RunRecord, error) {
	records, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	return DeduplicateRecords(records), nil
}

func (s *Server) handleAlgorithmStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.dedupedRecords()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := AggregateByAlgorithm(records)
	if summaries == nil {
		summaries = []*models.AlgorithmSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (s *Server) handleSizeStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.dedupedRecords()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := AggregateBySize(records)
	if summaries == nil {
		summaries = []*models.SizeSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (s *Server) handleMatrixStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.dedupedRecords()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := AggregateByAlgorithmAndSize(records)
	if summaries == nil {
		summaries = []*models.AlgorithmSizeSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	records, err := s.dedupedRecords()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summaries := AggregateByAlgorithm(records)
	ranking := RankAlgorithms(summaries)

	response := map[string]interface{}{
		"ranking":  ranking,
		"insights": Insights(ranking, len(summaries)),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"timestamp": time.Now().Unix(),
	}

	if s.mirror == nil {
		response["connected"] = false
		response["mirror"] = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := s.mirror.Ping(ctx)
		response["connected"] = err == nil
		if err != nil {
			response["error"] = err.Error()
			log.Printf("ClickHouse ping failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (s *Server) handleGetRecordTags(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordId")

	tags, err := s.storage.GetRecordTags(recordID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if tags == nil {
		tags = []*models.RecordTag{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tags)
}

func (s *Server) handleAddTag(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordId")

	var req struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, err := s.storage.AddTag(recordID, req.Tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tag)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID := chi.URLParam(r, "tagId")

	if err := s.storage.RemoveTag(tagID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleStar(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordId")

	isStarred, err := s.storage.ToggleStarred(recordID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"starred": isStarred})
}

func validAlgorithm(a models.Algorithm) bool {
	for _, known := range models.AlgorithmOrder() {
		if a == known {
			return true
		}
	}
	return false
}
