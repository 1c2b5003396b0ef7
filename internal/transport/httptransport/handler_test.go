package httptransport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/awmpietro/prereq-inference-case/internal/app"
	"github.com/awmpietro/prereq-inference-case/internal/gate"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
)

type checkSvcStub struct {
	checkFn  func(raw string, st *requirement.StudentRecord) (*app.Verdict, error)
	renderFn func(raw string) (*app.Rendering, error)
}

func (s *checkSvcStub) Check(raw string, st *requirement.StudentRecord) (*app.Verdict, error) {
	return s.checkFn(raw, st)
}

func (s *checkSvcStub) Render(raw string) (*app.Rendering, error) {
	return s.renderFn(raw)
}

func okStub() *checkSvcStub {
	return &checkSvcStub{
		checkFn: func(raw string, st *requirement.StudentRecord) (*app.Verdict, error) {
			return &app.Verdict{Satisfied: true, Outcome: gate.OutcomeEligible}, nil
		},
		renderFn: func(raw string) (*app.Rendering, error) {
			return &app.Rendering{Normalized: raw, DOT: "digraph requirement {}"}, nil
		},
	}
}

func TestHandler_Check_MethodNotAllowed(t *testing.T) {
	h := NewHandler(okStub())

	req := httptest.NewRequest(http.MethodGet, "/check", nil)
	rr := httptest.NewRecorder()

	h.Check(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rr.Code)
	}
}

func TestHandler_Check_InvalidJSON(t *testing.T) {
	h := NewHandler(okStub())

	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()

	h.Check(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandler_Check_ReturnsVerdict(t *testing.T) {
	stub := okStub()
	stub.checkFn = func(raw string, st *requirement.StudentRecord) (*app.Verdict, error) {
		if raw != "MATE3031 O MATE3144" {
			t.Fatalf("unexpected requirement: %q", raw)
		}
		if st == nil || st.Year != 2 {
			t.Fatalf("unexpected student: %#v", st)
		}
		return &app.Verdict{Satisfied: false, Missing: "MATE3031 or MATE3144", Outcome: gate.OutcomeIneligible}, nil
	}
	h := NewHandler(stub)

	body := `{"requirement":"MATE3031 O MATE3144","student":{"year":2}}`
	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Check(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	verdict, ok := out["verdict"].(map[string]any)
	if !ok {
		t.Fatalf("expected verdict object, got %#v", out)
	}
	if verdict["satisfied"] != false || verdict["missing"] != "MATE3031 or MATE3144" {
		t.Fatalf("unexpected verdict: %#v", verdict)
	}
	if verdict["outcome"] != "ineligible" {
		t.Fatalf("unexpected outcome: %#v", verdict["outcome"])
	}
}

func TestHandler_Check_ServiceErrorIsBadRequest(t *testing.T) {
	stub := okStub()
	stub.checkFn = func(raw string, st *requirement.StudentRecord) (*app.Verdict, error) {
		return nil, fmt.Errorf("gate condition failed")
	}
	h := NewHandler(stub)

	body := `{"requirement":"MATE3031","student":{}}`
	req := httptest.NewRequest(http.MethodPost, "/check", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Check(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestHandler_Parse_ReturnsDOT(t *testing.T) {
	h := NewHandler(okStub())

	body := `{"requirement":"MATE3031"}`
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Parse(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["dot"] == "" || out["normalized"] != "MATE3031" {
		t.Fatalf("unexpected response: %#v", out)
	}
}

func TestHandler_Parse_BadRequirementIsBadRequest(t *testing.T) {
	stub := okStub()
	stub.renderFn = func(raw string) (*app.Rendering, error) {
		return nil, &requirement.TokenizeError{Pos: 0, Segment: "MAT3031"}
	}
	h := NewHandler(stub)

	body := `{"requirement":"MAT3031"}`
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.Parse(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
