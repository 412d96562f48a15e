package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/debug/robots", h.handleListRobots).Methods(http.MethodGet)
	router.HandleFunc("/debug/robots/{id}", h.handleRobotTree).Methods(http.MethodGet)
	router.HandleFunc("/debug/zone", h.handleZone).Methods(http.MethodGet)
}

// /debug/robots - список всех роботов реестра
func (h *DebugHandler) handleListRobots(w http.ResponseWriter, r *http.Request) {
	type RobotSummary struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Tier    int    `json:"tier"`
		HasCore bool   `json:"hasCore"`
		Armored bool   `json:"armored"`
	}

	var summary []RobotSummary
	for _, robot := range h.Service.SnapshotRobots() {
		armored := false
		for _, part := range robot.AllParts() {
			if part.HasArmor() {
				armored = true
				break
			}
		}
		summary = append(summary, RobotSummary{
			ID:      robot.ID.String(),
			Name:    robot.Name,
			Tier:    robot.Tier,
			HasCore: !robot.IsShell(),
			Armored: armored,
		})
	}

	writeJSON(w, summary)
}

// /debug/robots/{id} - полное дерево деталей робота.
// Тот же вид, что получает клиент в сессии редактирования.
func (h *DebugHandler) handleRobotTree(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view := h.Service.DebugRobotView(id)
	if view == nil {
		http.Error(w, "Robot not found", http.StatusNotFound)
		return
	}

	writeJSON(w, view)
}

// /debug/zone - тик, размеры поля и позиции всех агентов
func (h *DebugHandler) handleZone(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.SnapshotZone())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
