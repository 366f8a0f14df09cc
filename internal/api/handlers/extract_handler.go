package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markdave123-py/FinSheet/internal/core"
	"github.com/markdave123-py/FinSheet/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExtractHandler struct {
	svc       *services.ExtractService
	maxUpload int64
}

func NewExtractHandler(svc *services.ExtractService, maxUploadBytes int64) *ExtractHandler {
	return &ExtractHandler{svc: svc, maxUpload: maxUploadBytes}
}

// Extract handles the multipart upload and streams back the workbook.
// Every failure in the pipeline is terminal and answered with a 400 carrying
// the descriptive error string; there are no retries.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		writeError(w, core.ErrNoFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		// A part sent with filename="" is parsed as a plain form value, so
		// FormFile reports it as missing; tell the two apart here.
		if r.MultipartForm != nil && len(r.MultipartForm.Value["file"]) > 0 {
			writeError(w, core.ErrEmptyFilename)
			return
		}
		writeError(w, core.ErrNoFile)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, core.ErrEmptyFilename)
		return
	}

	// filepath.Base strips any path components a client might smuggle in.
	res, err := h.svc.ExtractToWorkbook(r.Context(), file, filepath.Base(header.Filename))
	if err != nil {
		writeError(w, err)
		return
	}

	downloadName := fmt.Sprintf("financial_extract_%s.xlsx", strings.ReplaceAll(res.CompanyName, " ", "_"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+downloadName)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Workbook)))
	_, _ = w.Write(res.Workbook)
}

// Health reports liveness for deployment probes.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
