package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/gorilla/mux"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/version"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/logger"
)

type Server struct {
	Engine *engine.GameService
	Port   string
}

func New(engine *engine.GameService, port string) *Server {
	return &Server{
		Engine: engine,
		Port:   port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	router := mux.NewRouter()

	// Регистрируем роуты
	router.HandleFunc("/ws", enableCORS(s.handleWS))
	router.HandleFunc("/health", enableCORS(s.handleHealth)).Methods(http.MethodGet)
	router.HandleFunc("/version", enableCORS(s.handleVersion)).Methods(http.MethodGet)

	debugHandler := NewDebugHandler(s.Engine)
	debugHandler.RegisterRoutes(router)

	// pprof живет на DefaultServeMux
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	logger.Log.Infof("🤖 MechaArk Server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, router)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
