package assessment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cardiocheck/cardiocheck/internal/platform/auth"
	"github.com/cardiocheck/cardiocheck/internal/risk"
	"github.com/cardiocheck/cardiocheck/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("patient", "clinician"))
	g.POST("/assessments", h.RunAssessment)
	g.POST("/assessments/evaluate", h.Evaluate)
	g.GET("/assessments", h.ListAssessments)
	g.GET("/assessments/trends", h.GetTrends)
	g.GET("/assessments/:id", h.GetAssessment)
	g.DELETE("/assessments/:id", h.DeleteAssessment)
}

// runRequest is the body of a persisted assessment: the engine input plus
// the patient it belongs to.
type runRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	risk.PatientInput
}

func (h *Handler) RunAssessment(c echo.Context) error {
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.PatientID == uuid.Nil {
		req.PatientID = patientIDFromAuth(c)
	}
	a, err := h.svc.Run(c.Request().Context(), req.PatientID, req.PatientInput)
	if err != nil {
		return assessmentError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Evaluate(c echo.Context) error {
	var in risk.PatientInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.Evaluate(c.Request().Context(), in)
	if err != nil {
		return assessmentError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	pid, err := resolvePatientID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByPatient(c.Request().Context(), pid, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetTrends(c echo.Context) error {
	pid, err := resolvePatientID(c)
	if err != nil {
		return err
	}
	days, _ := strconv.Atoi(c.QueryParam("days"))
	trends, err := h.svc.TrendsByPatient(c.Request().Context(), pid, days)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, trends)
}

// resolvePatientID prefers the explicit patient_id query parameter and falls
// back to the patient identity on the token.
func resolvePatientID(c echo.Context) (uuid.UUID, error) {
	if raw := c.QueryParam("patient_id"); raw != "" {
		pid, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		return pid, nil
	}
	if pid := patientIDFromAuth(c); pid != uuid.Nil {
		return pid, nil
	}
	return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
}

func patientIDFromAuth(c echo.Context) uuid.UUID {
	pid, err := uuid.Parse(auth.PatientIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil
	}
	return pid
}

// assessmentError converts engine precondition failures into 422 responses.
// Everything else is a bad request.
func assessmentError(err error) error {
	switch {
	case errors.Is(err, risk.ErrMissingAge),
		errors.Is(err, risk.ErrAgeOutOfRange),
		errors.Is(err, risk.ErrMissingSex),
		errors.Is(err, risk.ErrInvalidSex):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
