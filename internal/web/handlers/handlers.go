// Package handlers exposes the knit metadata queries over HTTP.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/knitlab/knitgraph/internal/store"
	"github.com/knitlab/knitgraph/internal/web/middleware"
	"github.com/knitlab/knitgraph/internal/web/response"
	"github.com/knitlab/knitgraph/knit"
)

// maxUploadBytes bounds the multipart upload size (32 MB).
const maxUploadBytes = 32 << 20

// Handler serves the knit metadata API.
type Handler struct {
	store  *store.Store
	logger *zap.Logger
}

// New creates a handler backed by the given store.
func New(st *store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: st, logger: logger}
}

// Router builds the service's route table with the standard middleware
// stack mounted in front of every handler.
func (h *Handler) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.Logging(h.logger))

	r.Get("/health", h.Health)
	r.Get("/graph", h.Graph)
	r.Get("/base-classes", h.BaseClasses)
	r.Get("/parent-groups", h.ParentGroups)
	r.Get("/class-info/*", h.ClassInfo)
	r.Get("/child-classes/*", h.ChildClasses)
	r.Post("/upload-knit-data", h.Upload)

	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.RenderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Graph returns the full provider/consumer graph.
func (h *Handler) Graph(w http.ResponseWriter, r *http.Request) {
	classes, ok := h.load(w, r)
	if !ok {
		return
	}
	response.RenderJSON(w, http.StatusOK, knit.Assemble(classes))
}

// ClassInfo returns the detail view for a single class. The class name is
// the full remaining path, so slash-form identifiers route naturally.
func (h *Handler) ClassInfo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" {
		response.RenderBadRequest(w, "class name is required")
		return
	}

	classes, ok := h.load(w, r)
	if !ok {
		return
	}

	detail, err := knit.GetClassDetail(classes, name)
	if err != nil {
		h.renderQueryError(w, r, err)
		return
	}
	response.RenderJSON(w, http.StatusOK, detail)
}

// ChildClasses lists the classes whose first declared parent matches.
func (h *Handler) ChildClasses(w http.ResponseWriter, r *http.Request) {
	parent := chi.URLParam(r, "*")
	if parent == "" {
		response.RenderBadRequest(w, "parent class name is required")
		return
	}

	classes, ok := h.load(w, r)
	if !ok {
		return
	}
	response.RenderJSON(w, http.StatusOK, knit.ChildClasses(classes, parent))
}

// BaseClasses lists the classes that sit directly under the object root.
func (h *Handler) BaseClasses(w http.ResponseWriter, r *http.Request) {
	classes, ok := h.load(w, r)
	if !ok {
		return
	}
	response.RenderJSON(w, http.StatusOK, knit.BaseClasses(classes))
}

// ParentGroups groups every class under each of its declared parents.
func (h *Handler) ParentGroups(w http.ResponseWriter, r *http.Request) {
	classes, ok := h.load(w, r)
	if !ok {
		return
	}
	response.RenderJSON(w, http.StatusOK, knit.GroupByParent(classes))
}

// uploadResult is the body returned after a successful upload.
type uploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	SavedAs  string `json:"saved_as"`
	Size     int    `json:"size"`
}

// Upload replaces the metadata document with the uploaded file. The new
// document must decode before it is accepted.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.RenderBadRequest(w, "expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.RenderBadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.RenderInternalError(w, fmt.Errorf("read upload: %w", err))
		return
	}

	if err := h.store.Replace(data); err != nil {
		h.renderQueryError(w, r, err)
		return
	}

	h.logger.Info("knit metadata replaced",
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("filename", header.Filename),
		zap.Int("size", len(data)),
	)

	response.RenderJSON(w, http.StatusOK, uploadResult{
		Message:  "File uploaded successfully",
		Filename: header.Filename,
		SavedAs:  filepath.Base(h.store.Path()),
		Size:     len(data),
	})
}

// load reads the current document, rendering the error response itself
// when the read fails.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (knit.Classes, bool) {
	classes, err := h.store.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			response.RenderNotFound(w, "no knit metadata has been uploaded")
			return nil, false
		}
		h.renderQueryError(w, r, err)
		return nil, false
	}
	return classes, true
}

// renderQueryError maps domain errors onto HTTP statuses. Malformed input
// is the caller's fault; a missing class is a 404; anything else is ours.
func (h *Handler) renderQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var malformed *knit.MalformedInputError
	var notFound *knit.NotFoundError

	switch {
	case errors.As(err, &malformed):
		response.RenderBadRequest(w, err.Error())
	case errors.As(err, &notFound):
		response.RenderNotFound(w, err.Error())
	default:
		h.logger.Error("query failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		response.RenderInternalError(w, err)
	}
}
