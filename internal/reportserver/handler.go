package reportserver

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"edleval/internal/report"
	"edleval/internal/results"
)

// RunListing is one entry of GET /api/runs.
type RunListing struct {
	Language string `json:"language"`
	RunID    string `json:"run_id"`
}

type handlers struct {
	dir    string
	dbPath string
}

// NewHandler builds the HTTP handler for the run index, the run API and the
// DuckDB file.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Dir == "" {
		return nil, errors.New("reportserver: output dir is required")
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, cfg)
	return router, nil
}

// SetupRoutes registers the report routes on router.
func SetupRoutes(router *gin.Engine, cfg Config) {
	h := handlers{dir: cfg.Dir, dbPath: cfg.DBPath}

	router.GET("/", h.index)

	api := router.Group("/api/runs")
	{
		api.GET("", h.listRuns)
		api.GET("/:language/:run", h.getRun)
		api.GET("/:language/:run/results.tsv", h.getPredictions)
	}

	router.GET("/data/db.duckdb", h.database)
}

func (h handlers) index(c *gin.Context) {
	runs, err := report.LoadRuns(h.dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		sendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := report.WriteIndex(c.Request.Context(), c.Writer, runs); err != nil {
		_ = c.Error(err)
	}
}

func (h handlers) listRuns(c *gin.Context) {
	refs, err := report.ListRuns(h.dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		sendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
		return
	}
	listing := make([]RunListing, 0, len(refs))
	for _, ref := range refs {
		listing = append(listing, RunListing{Language: ref.Language, RunID: ref.RunID})
	}
	c.JSON(http.StatusOK, gin.H{"runs": listing})
}

func (h handlers) getRun(c *gin.Context) {
	runDir, ok := h.runDir(c)
	if !ok {
		return
	}
	c.File(filepath.Join(runDir, "results.json"))
}

func (h handlers) getPredictions(c *gin.Context) {
	runDir, ok := h.runDir(c)
	if !ok {
		return
	}
	path := filepath.Join(runDir, results.FileName(c.Param("language")))
	if _, err := os.Stat(path); err != nil {
		sendError(c, http.StatusNotFound, ErrorCodeRunNotFound, "results file not found")
		return
	}
	c.Header("Content-Type", "text/tab-separated-values; charset=utf-8")
	c.File(path)
}

func (h handlers) database(c *gin.Context) {
	if h.dbPath == "" {
		sendError(c, http.StatusNotFound, ErrorCodeNoDatabase, "no results database configured")
		return
	}
	c.Header("Content-Type", "application/octet-stream")
	c.File(h.dbPath)
}

// runDir resolves the :language/:run path params to a run directory that holds
// a results.json. Path separators in either param are rejected.
func (h handlers) runDir(c *gin.Context) (string, bool) {
	language := c.Param("language")
	runID := c.Param("run")
	if !validSegment(language) || !validSegment(runID) {
		sendError(c, http.StatusNotFound, ErrorCodeRunNotFound, "run not found")
		return "", false
	}
	runDir := filepath.Join(h.dir, language, runID)
	if _, err := os.Stat(filepath.Join(runDir, "results.json")); err != nil {
		sendError(c, http.StatusNotFound, ErrorCodeRunNotFound, "run "+language+"/"+runID+" not found")
		return "", false
	}
	return runDir, true
}

func validSegment(value string) bool {
	if value == "" || value == "." || value == ".." {
		return false
	}
	return filepath.Base(value) == value
}
