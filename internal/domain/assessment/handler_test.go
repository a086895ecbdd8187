package assessment

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardiocheck/cardiocheck/internal/risk"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_RunAssessment(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patient_id":"` + uuid.New().String() + `","age":58,"sex":"male","chest_pain_type":"atypical"}`
	c, rec := postJSON(e, "/assessments", body)

	if err := h.RunAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var a Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if a.RiskCategory == "" || a.FinalRiskScore < 1 {
		t.Errorf("incomplete assessment in response: %+v", a)
	}
}

func TestHandler_RunAssessment_MissingAge(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patient_id":"` + uuid.New().String() + `","sex":"male"}`
	c, _ := postJSON(e, "/assessments", body)

	err := h.RunAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for failed profile fallback, got %v", err)
	}
}

func TestHandler_Evaluate(t *testing.T) {
	h, e := newTestHandler()
	body := `{"age":60,"sex":"male","chest_pain_type":"typical","chest_pain_exertional":true,"shortness_of_breath":"severe","syncope":true}`
	c, rec := postJSON(e, "/assessments/evaluate", body)

	if err := h.Evaluate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var result risk.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.LikelihoodScore != 5 {
		t.Errorf("expected likelihood 5, got %d", result.LikelihoodScore)
	}
}

func TestHandler_Evaluate_PreconditionIs422(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, "/assessments/evaluate", `{"age":200,"sex":"male"}`)

	err := h.Evaluate(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestHandler_Evaluate_MalformedBody(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, "/assessments/evaluate", `{"age":`)

	err := h.Evaluate(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHandler_GetAssessment(t *testing.T) {
	h, e := newTestHandler()
	pid := uuid.New()
	a, err := h.svc.Run(nil, pid, fullInput())
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.GetAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_GetAssessment_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetAssessment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestHandler_ListAssessments(t *testing.T) {
	h, e := newTestHandler()
	pid := uuid.New()
	for i := 0; i < 3; i++ {
		if _, err := h.svc.Run(nil, pid, fullInput()); err != nil {
			t.Fatalf("seed assessment: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/?patient_id="+pid.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAssessments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("expected 3 assessments, got %d", resp.Total)
	}
}

func TestHandler_ListAssessments_RequiresPatient(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.ListAssessments(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without patient identity, got %v", err)
	}
}

func TestHandler_GetTrends(t *testing.T) {
	h, e := newTestHandler()
	pid := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/?patient_id="+pid.String()+"&days=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetTrends(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var trends Trends
	if err := json.Unmarshal(rec.Body.Bytes(), &trends); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if trends.Days != 7 {
		t.Errorf("expected 7 day window, got %d", trends.Days)
	}
}

func TestHandler_DeleteAssessment(t *testing.T) {
	h, e := newTestHandler()
	a, err := h.svc.Run(nil, uuid.New(), fullInput())
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(a.ID.String())

	if err := h.DeleteAssessment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if _, err := h.svc.Get(nil, a.ID); err == nil {
		t.Error("expected assessment to be deleted")
	}
}
