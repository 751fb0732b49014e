package api

import (
	"errors"
	"net/http"
)

func proxyCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// @Summary Same-origin file proxy
// @Description Fetches the remote resource server-side and re-emits its bytes, so map clients can load files the browser would otherwise block cross-origin.
// @Tags proxy
// @Produce octet-stream
// @Param url query string true "Remote resource URL"
// @Success 200 {string} binary "Resource bytes"
// @Failure 400 {object} ResponseError "Missing url parameter"
// @Failure 500 {object} ResponseError "Fetch failed"
// @Router /api/proxy [get]
func (h *Handler) ProxyFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	proxyCorsHeaders(w)

	url := r.URL.Query().Get("url")
	if url == "" {
		SendErr(ctx, w, http.StatusBadRequest, errors.New("missing url parameter"), "Parameter url wajib diisi")
		return
	}

	body, err := h.fetcher.Fetch(ctx, url)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Gagal mengambil berkas")
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ProxyFilePreflight answers CORS preflight with the same permissive
// headers and no body.
func (h *Handler) ProxyFilePreflight(w http.ResponseWriter, _ *http.Request) {
	proxyCorsHeaders(w)
	w.WriteHeader(http.StatusOK)
}
