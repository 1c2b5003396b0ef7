package httptransport

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/awmpietro/prereq-inference-case/internal/app"
	"github.com/awmpietro/prereq-inference-case/internal/transport/checkdto"
)

type Handler struct {
	svc app.CheckService
}

func NewHandler(svc app.CheckService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	start := time.Now()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in checkdto.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
		return
	}

	verdict, err := h.svc.Check(in.Requirement, in.Student)
	if err != nil {
		log.Printf("http_check request_id=%s status=400 duration=%s error=%q", reqID, time.Since(start), err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "check failed", "details": err.Error()})
		return
	}

	log.Printf("http_check request_id=%s status=200 duration=%s outcome=%s", reqID, time.Since(start), verdict.Outcome)
	writeJSON(w, http.StatusOK, checkdto.CheckResponse{Verdict: verdict})
}

func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	start := time.Now()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in checkdto.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json", "details": err.Error()})
		return
	}

	rendering, err := h.svc.Render(in.Requirement)
	if err != nil {
		log.Printf("http_parse request_id=%s status=400 duration=%s error=%q", reqID, time.Since(start), err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "parse failed", "details": err.Error()})
		return
	}

	log.Printf("http_parse request_id=%s status=200 duration=%s", reqID, time.Since(start))
	writeJSON(w, http.StatusOK, checkdto.ParseResponse{Normalized: rendering.Normalized, DOT: rendering.DOT})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
