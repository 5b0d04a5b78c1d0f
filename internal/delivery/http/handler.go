package http

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bigappetite/backend/internal/domain"
	"github.com/bigappetite/backend/internal/infrastructure/ingest"
	"github.com/bigappetite/backend/internal/usecase"
)

// sessionCookie names the cookie carrying the caller's session id
const sessionCookie = "ba_session"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	gp           *usecase.GPService
	query        *usecase.QueryService
	sessions     domain.SessionRepository
	cookieMaxAge int
}

// NewHandler creates a new HTTP handler
func NewHandler(gp *usecase.GPService, query *usecase.QueryService, sessions domain.SessionRepository, cookieMaxAge int) *Handler {
	if cookieMaxAge <= 0 {
		cookieMaxAge = 86400
	}
	return &Handler{
		gp:           gp,
		query:        query,
		sessions:     sessions,
		cookieMaxAge: cookieMaxAge,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "bigappetite-backend",
		"version": "1.0.0",
	})
}

// Upload ingests one or more tabular files, auto-detects which table each
// one holds, runs the GP calculation, and returns the report. Costings and
// recipes are required; menu prices are optional.
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form upload"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	var tables domain.Tables
	for _, file := range files {
		if err := ingestFile(file, &tables); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if len(tables.Costings) == 0 || len(tables.Recipes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "need at least costings and recipes data"})
		return
	}

	result, err := h.gp.CalculateGP(tables)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrMissingCostings) ||
			errors.Is(err, domain.ErrMissingRecipes) ||
			errors.Is(err, domain.ErrInvalidRecipe) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	id := h.sessionID(c)
	if err := h.sessions.Put(c.Request.Context(), id, &domain.Session{Tables: tables, Result: result}); err != nil {
		log.Printf("[HTTP] failed to store session %s: %v", id, err)
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, result)
		return
	}

	html, err := RenderReport(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// ingestFile classifies a single uploaded file and merges it into tables
func ingestFile(file *multipart.FileHeader, tables *domain.Tables) error {
	f, err := file.Open()
	if err != nil {
		return errors.New("could not open " + file.Filename)
	}
	defer f.Close()

	table, err := ingest.ReadTable(f)
	if err != nil {
		return errors.New("could not parse " + file.Filename + ": " + err.Error())
	}

	kind := ingest.Classify(table.Headers)
	switch kind {
	case ingest.KindCostings:
		tables.Costings = append(tables.Costings, ingest.MapCostings(table)...)
	case ingest.KindRecipes:
		tables.Recipes = append(tables.Recipes, ingest.MapRecipes(table)...)
	case ingest.KindMenuPrices:
		tables.MenuPrices = append(tables.MenuPrices, ingest.MapMenuPrices(table)...)
	default:
		log.Printf("[HTTP] skipping %s: unrecognised table layout", file.Filename)
	}

	return nil
}

// Results returns the last computed result set for the caller's session
func (h *Handler) Results(c *gin.Context) {
	session, ok := h.loadSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Result)
}

// Query answers free-text questions such as "cheese cost",
// "chicken pizza gp", or "items under 70".
func (h *Handler) Query(c *gin.Context) {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter 'q'"})
		return
	}

	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	answer := h.query.Answer(q, session.Tables, session.Result)
	switch answer.Kind {
	case usecase.AnswerIngredientCost:
		c.JSON(http.StatusOK, answer.Ingredient)
	case usecase.AnswerItemGP:
		c.JSON(http.StatusOK, answer.Item)
	case usecase.AnswerUnderThreshold:
		c.JSON(http.StatusOK, answer.Items)
	default:
		c.JSON(http.StatusOK, gin.H{"message": answer.Message})
	}
}

// Home serves the upload page
func (h *Handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", uploadPage)
}

// loadSession fetches the caller's session and replies 400 when there is
// nothing computed yet.
func (h *Handler) loadSession(c *gin.Context) (*domain.Session, bool) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No results yet. Upload files first."})
		return nil, false
	}

	session, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil || session.Result == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No results yet. Upload files first."})
		return nil, false
	}

	return session, true
}

// sessionID returns the caller's session id, issuing a new one when absent
func (h *Handler) sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, h.cookieMaxAge, "/", "", false, true)
	return id
}

// wantsJSON checks whether the caller asked for JSON instead of the HTML report
func wantsJSON(c *gin.Context) bool {
	if c.Query("format") == "json" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
