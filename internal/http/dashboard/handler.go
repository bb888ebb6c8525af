package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/backoffice/internal/dashboard"
	"github.com/MrJamesThe3rd/backoffice/internal/upload"
)

const (
	maxUploadMemory = 32 << 20
	defaultDocType  = "Purchase Order"
)

type Handler struct {
	ctrl *dashboard.Controller
}

func NewHandler(ctrl *dashboard.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/refresh", h.refresh)
	r.Get("/search", h.search)
	r.Put("/query", h.setQuery)
	r.Post("/suggestions/{id}/approve", h.approve)
	r.Post("/uploads", h.upload)
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	h.writeView(w, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		h.writeView(w, http.StatusBadGateway)
		return
	}

	h.writeView(w, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Search(r.Context(), r.URL.Query().Get("query")); err != nil {
		h.writeView(w, http.StatusBadGateway)
		return
	}

	h.writeView(w, http.StatusOK)
}

type queryRequest struct {
	Query string `json:"query"`
}

func (h *Handler) setQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	h.ctrl.SetQuery(req.Query)
	h.writeView(w, http.StatusOK)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.ctrl.Approve(r.Context(), id); err != nil {
		h.writeView(w, http.StatusBadGateway)
		return
	}

	h.writeView(w, http.StatusOK)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "files field is required", http.StatusBadRequest)
		return
	}

	docType := r.FormValue("doc_type")
	if docType == "" {
		docType = defaultDocType
	}

	files := make([]upload.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, fromHeader(fh))
	}

	// The batch outlives a client that disconnects mid-upload.
	summary, err := h.ctrl.Upload(context.WithoutCancel(r.Context()), files, docType)
	if err != nil {
		h.writeView(w, http.StatusBadGateway)
		return
	}

	slog.Info("upload batch finished", "completed", summary.Completed, "failed", summary.Failed)
	h.writeView(w, http.StatusOK)
}

func fromHeader(fh *multipart.FileHeader) upload.File {
	return upload.File{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func (h *Handler) writeView(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(toViewResponse(h.ctrl.View())); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
