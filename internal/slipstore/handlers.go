package slipstore

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"agencydesk/internal/api"
	"agencydesk/pkg/config"
)

type Handlers struct {
	Cfg   config.Config
	Store *Store
	Log   *zap.SugaredLogger
}

// Download serves a stored slip when the request carries a valid, unexpired
// signature. Bad or stale signatures get the same 404 as a missing file so
// the endpoint leaks nothing about which object names exist.
func (h Handlers) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "id")

	q := r.URL.Query()
	if !VerifyURL(name, q.Get("exp"), q.Get("sig"), h.Cfg.SlipURLSecret, time.Now()) {
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "slip not found")
		return
	}

	f, err := h.Store.Open(name)
	if err != nil {
		if !os.IsNotExist(err) {
			h.Log.Errorw("open slip", "name", name, "err", err)
		}
		api.WriteError(w, http.StatusNotFound, "NOT_FOUND", "slip not found")
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "private, no-store")
	_, _ = io.Copy(w, f)
}
