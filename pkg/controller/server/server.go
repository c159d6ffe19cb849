package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/labelbot/pkg/domain/model"
	"github.com/secmon-lab/labelbot/pkg/utils/logging"
)

// StatusSource provides a snapshot of the poller state for the status endpoint
type StatusSource interface {
	Status() []*model.RepoStatus
}

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func New(src StatusSource) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]any{
			"repos": src.Status(),
		})
		if err != nil {
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusOK, body)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
