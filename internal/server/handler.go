package server

import (
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"asvsearch/internal/adapter/fasta"
	"asvsearch/internal/domain"
	"asvsearch/internal/usecase"
)

// Handler exposes the query engine over HTTP.
type Handler struct {
	queryUC *usecase.QueryUseCase
}

// NewHandler creates a new handler.
func NewHandler(queryUC *usecase.QueryUseCase) *Handler {
	return &Handler{queryUC: queryUC}
}

// Register sets up all routes.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Root)
	app.Post("/predict", h.Predict)
	app.Post("/predict/fasta", h.PredictFasta)
	app.Get("/database/info", h.DatabaseInfo)
	app.Get("/health", h.Health)
}

// Root returns service information.
func (h *Handler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":     "ASV Sequence Comparison API",
		"version":     "1.0.0",
		"description": "Compare ASV sequences against a reference database using k-mer vectorization",
		"endpoints": fiber.Map{
			"/predict":       "Compare a single sequence (POST)",
			"/predict/fasta": "Compare sequences from FASTA file (POST)",
			"/database/info": "Get database information (GET)",
			"/health":        "Health check (GET)",
		},
	})
}

// Predict compares a single sequence against the reference database.
func (h *Handler) Predict(c fiber.Ctx) error {
	var body struct {
		Sequence string `json:"sequence"`
		TopK     int    `json:"top_k"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Sequence == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sequence is required"})
	}

	result, err := h.queryUC.Query(body.Sequence, body.TopK)
	if err != nil {
		return h.queryError(c, err)
	}

	return c.JSON(result)
}

// PredictFasta compares every sequence of an uploaded FASTA file against the
// reference database.
func (h *Handler) PredictFasta(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	if !hasFastaExtension(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file must be in FASTA format"})
	}

	topK := 0
	if v := c.FormValue("top_k"); v != "" {
		topK, err = strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "top_k must be an integer"})
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read upload"})
	}
	defer file.Close()

	records, err := h.parseUpload(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.queryUC.QueryBatch(records, topK)
	if err != nil {
		return h.queryError(c, err)
	}

	return c.JSON(result)
}

// DatabaseInfo returns the reference database summary.
func (h *Handler) DatabaseInfo(c fiber.Ctx) error {
	return c.JSON(h.queryUC.Info())
}

// Health reports service readiness.
func (h *Handler) Health(c fiber.Ctx) error {
	if h.queryUC.ReferenceCount() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "not ready",
			"error":  "reference database is empty",
		})
	}
	return c.JSON(fiber.Map{
		"status":              "healthy",
		"reference_sequences": h.queryUC.ReferenceCount(),
	})
}

func (h *Handler) parseUpload(r io.Reader) ([]domain.FastaRecord, error) {
	return fasta.Parse(r)
}

// queryError maps core errors onto HTTP statuses: validation failures become
// 400, an empty database 503, everything else 500.
func (h *Handler) queryError(c fiber.Ctx, err error) error {
	var invalidErr *domain.InvalidSequenceError
	switch {
	case errors.As(err, &invalidErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyDatabase):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		slog.Error("query failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "prediction error"})
	}
}

func hasFastaExtension(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".fasta") ||
		strings.HasSuffix(name, ".fa") ||
		strings.HasSuffix(name, ".fas")
}
