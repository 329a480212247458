package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marwa1454/formulaire/internal/api/metrics"
	"github.com/marwa1454/formulaire/internal/core/ports"
)

// SignalementHandler handles HTTP requests for incident reports.
type SignalementHandler struct {
	service ports.SignalementService
}

func NewSignalementHandler(service ports.SignalementService) *SignalementHandler {
	return &SignalementHandler{service: service}
}

// Create handles POST /signalements.
//
// @Summary      Record a new signalement
// @Tags         signalements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSignalementRequest  true  "Report fields"
// @Success      201   {object}  domain.Signalement
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /signalements [post]
func (h *SignalementHandler) Create(c echo.Context) error {
	var req createSignalementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sig, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.SignalementsCreatedTotal.WithLabelValues(string(sig.Gravite)).Inc()
	return c.JSON(http.StatusCreated, sig)
}

// List handles GET /signalements with pagination and optional filters.
// The total matching the filters is exposed in the X-Total-Count header.
//
// @Summary      List signalements
// @Tags         signalements
// @Produce      json
// @Param        skip                query  int     false  "Rows to skip"
// @Param        limit               query  int     false  "Max rows (1-500)"
// @Param        type_evenement      query  string  false  "Filter by event type"
// @Param        gravite             query  string  false  "Filter by severity"
// @Param        nom_agent           query  string  false  "Filter by agent name substring"
// @Param        source_information  query  string  false  "Filter by source"
// @Param        date_debut          query  string  false  "Start date (YYYY-MM-DD)"
// @Param        date_fin            query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {array}  domain.Signalement
// @Router       /signalements [get]
func (h *SignalementHandler) List(c echo.Context) error {
	input := ports.ListSignalementsInput{
		Skip:              intQuery(c, "skip", 0),
		Limit:             intQuery(c, "limit", 0),
		TypeEvenement:     c.QueryParam("type_evenement"),
		Gravite:           c.QueryParam("gravite"),
		NomAgent:          c.QueryParam("nom_agent"),
		SourceInformation: c.QueryParam("source_information"),
		DateDebut:         c.QueryParam("date_debut"),
		DateFin:           c.QueryParam("date_fin"),
	}

	result, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(result.Total, 10))
	return c.JSON(http.StatusOK, result.Items)
}

// Stats handles GET /signalements/statistiques.
//
// @Summary      Aggregate statistics
// @Tags         signalements
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /signalements/statistiques [get]
func (h *SignalementHandler) Stats(c echo.Context) error {
	result, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(result))
}

// Recent handles GET /signalements/recent.
//
// @Summary      Reports from the last N days
// @Tags         signalements
// @Produce      json
// @Param        days   query  int  false  "Window in days (1-90, default 7)"
// @Param        limit  query  int  false  "Max rows (1-100, default 20)"
// @Success      200  {array}  domain.Signalement
// @Router       /signalements/recent [get]
func (h *SignalementHandler) Recent(c echo.Context) error {
	items, err := h.service.Recent(c.Request().Context(), intQuery(c, "days", 0), intQuery(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Search handles GET /signalements/search. Terms shorter than 2
// characters are rejected before reaching the query engine.
//
// @Summary      Keyword search
// @Tags         signalements
// @Produce      json
// @Param        q      query  string  true   "Search term (min 2 characters)"
// @Param        limit  query  int     false  "Max rows (1-200, default 50)"
// @Success      200  {array}   domain.Signalement
// @Failure      422  {object}  errorResponse
// @Router       /signalements/search [get]
func (h *SignalementHandler) Search(c echo.Context) error {
	term := c.QueryParam("q")
	if len(term) < 2 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "q must be at least 2 characters")
	}

	items, err := h.service.Search(c.Request().Context(), term, intQuery(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ByAgent handles GET /signalements/agent/:id_agent.
//
// @Summary      Reports filed by one agent
// @Tags         signalements
// @Produce      json
// @Param        id_agent  path   string  true   "Agent id (exact match)"
// @Param        limit     query  int     false  "Max rows (1-500, default 100)"
// @Success      200  {array}  domain.Signalement
// @Router       /signalements/agent/{id_agent} [get]
func (h *SignalementHandler) ByAgent(c echo.Context) error {
	items, err := h.service.ByAgent(c.Request().Context(), c.Param("id_agent"), intQuery(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /signalements/:id.
//
// @Summary      Get a signalement by id
// @Tags         signalements
// @Produce      json
// @Param        id  path  int  true  "Report id"
// @Success      200  {object}  domain.Signalement
// @Failure      404  {object}  errorResponse
// @Router       /signalements/{id} [get]
func (h *SignalementHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	sig, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sig)
}

// Update handles PUT /signalements/:id with a partial payload.
//
// @Summary      Update a signalement
// @Tags         signalements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                       true  "Report id"
// @Param        body  body  updateSignalementRequest  true  "Fields to change"
// @Success      200  {object}  domain.Signalement
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /signalements/{id} [put]
func (h *SignalementHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSignalementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sig, err := h.service.Update(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sig)
}

// Delete handles DELETE /signalements/:id (hard delete).
//
// @Summary      Delete a signalement
// @Tags         signalements
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Report id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /signalements/{id} [delete]
func (h *SignalementHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "signalement deleted", ID: id})
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func intQuery(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
