/*
Package server exposes the battle engine over HTTP.

	GET  /api/healthz   liveness probe
	POST /api/battles   run one battle, reply with the full transcript
	GET  /ws/battles    websocket; every text message is a battle config and
	                    the transcript is streamed back line by line

Reference tables are loaded once at startup and only read afterwards, so
requests share nothing mutable.
*/
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"BattleSimulator/internal/catalog"
	"BattleSimulator/internal/combat"
)

const maxConfigBytes = 1 << 20

type Server struct {
	units     catalog.Units
	buildings catalog.Buildings
	log       *zap.Logger
}

// BattleResponse is the reply to POST /api/battles.
type BattleResponse struct {
	ID     string   `json:"id"`
	Rounds int      `json:"rounds"`
	Winner string   `json:"winner"`
	Log    []string `json:"log"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(units catalog.Units, buildings catalog.Buildings, logger *zap.Logger) *mux.Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{units: units, buildings: buildings, log: logger}

	r := mux.NewRouter()
	r.HandleFunc("/api/healthz", s.healthz).Methods(http.MethodGet)
	r.HandleFunc("/api/battles", s.postBattle).Methods(http.MethodPost)
	r.HandleFunc("/ws/battles", s.streamBattles).Methods(http.MethodGet)
	return r
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) postBattle(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxConfigBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}
	id := uuid.New().String()
	battle, err := s.build(id, data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
		return
	}
	res := runBattle(battle, nil)
	writeJSON(w, http.StatusOK, BattleResponse{
		ID:     id,
		Rounds: res.Rounds,
		Winner: res.Winner,
		Log:    res.Lines,
	})
}

func (s *Server) build(id string, data []byte) (*catalog.Battle, error) {
	cfg, err := catalog.ParseBattle(data)
	if err != nil {
		return nil, err
	}
	log := s.log.With(zap.String("battle", id))
	battle, err := cfg.Build(s.units, s.buildings, log)
	if err != nil {
		log.Info("rejected battle config", zap.Error(err))
		return nil, err
	}
	return battle, nil
}

func runBattle(b *catalog.Battle, onLine func(string)) combat.Result {
	b.Engine.OnLine = onLine
	return b.Engine.Run(b.A, b.B)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
