package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/editor"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/engine/handlers/actions"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/systems"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/blueprint"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/logger"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/utils"
)

// GameService держит зону, реестр роботов и сессии редактирования.
//
// Вся мутация состояния идет через CommandChan и выполняется в одной
// горутине RunLoop: движок сборки однопоточный по построению.
// Мьютекс прикрывает только читающий доступ отладочных HTTP-ручек.
type GameService struct {
	Factory *blueprint.Factory
	Spawner *blueprint.WildSpawner
	Zone    *Zone

	CommandChan chan InternalCommand

	mu          sync.RWMutex
	robots      map[string]*domain.Robot
	inventories map[string]*domain.Inventory
	sessions    map[string]*editor.Session

	// busyRobots - роботы с открытой сессией: на одного робота
	// не больше одной сессии.
	busyRobots map[*domain.Robot]string

	handlers map[ActionType]handlers.HandlerFunc
	logSeq   int
}

// Config - параметры создания сервиса.
type Config struct {
	Seed      int64
	ZoneID    uint8
	ZoneW     int
	ZoneH     int
	WildCount int
	WildTier  int
}

// DefaultConfig - разумные значения для локального запуска.
func DefaultConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		ZoneID:    1,
		ZoneW:     64,
		ZoneH:     64,
		WildCount: 4,
		WildTier:  1,
	}
}

// NewService собирает сервис: фабрика, зона и стартовая популяция
// диких роботов.
func NewService(cfg Config) *GameService {
	factory := blueprint.NewFactory(cfg.ZoneID)
	s := &GameService{
		Factory:     factory,
		Spawner:     blueprint.NewWildSpawner(factory, cfg.Seed),
		Zone:        NewZone(cfg.ZoneW, cfg.ZoneH, cfg.Seed),
		CommandChan: make(chan InternalCommand, 100),
		robots:      make(map[string]*domain.Robot),
		inventories: make(map[string]*domain.Inventory),
		sessions:    make(map[string]*editor.Session),
		busyRobots:  make(map[*domain.Robot]string),
		handlers:    make(map[ActionType]handlers.HandlerFunc),
	}

	for i := 0; i < cfg.WildCount; i++ {
		robot := s.Spawner.Spawn(cfg.WildTier)
		if robot == nil {
			logger.Log.Error("wild spawn failed, skipping")
			continue
		}
		s.robots[robot.ID.String()] = robot
		at := systems.Position{
			X: (4 + i*7) % cfg.ZoneW,
			Y: (4 + i*11) % cfg.ZoneH,
		}
		s.Zone.AddAgent(robot, at)
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[ActionActivate] = handlers.WithPayload(actions.HandleActivate)
	s.handlers[ActionDeactivate] = handlers.WithEmptyPayload(actions.HandleDeactivate)
	s.handlers[ActionAbort] = handlers.WithEmptyPayload(actions.HandleAbort)
	s.handlers[ActionState] = handlers.WithEmptyPayload(actions.HandleState)

	s.handlers[ActionHover] = handlers.RequireSession(handlers.WithPayload(actions.HandleHover))
	s.handlers[ActionRotate] = handlers.RequireSession(handlers.WithEmptyPayload(actions.HandleRotate))
	s.handlers[ActionPlace] = handlers.RequireSession(handlers.WithPayload(actions.HandlePlace))
	s.handlers[ActionRemove] = handlers.RequireSession(handlers.WithPayload(actions.HandleRemove))
	s.handlers[ActionAttach] = handlers.RequireSession(handlers.WithPayload(actions.HandleAttach))
	s.handlers[ActionDetach] = handlers.RequireSession(handlers.WithPayload(actions.HandleDetach))
	s.handlers[ActionToggleMode] = handlers.RequireSession(handlers.WithPayload(actions.HandleToggleMode))
	s.handlers[ActionTransplant] = handlers.RequireSession(handlers.WithPayload(actions.HandleTransplant))
}

// Start запускает цикл сервиса в отдельной горутине.
func (s *GameService) Start() {
	go s.RunLoop()
}

// RunLoop - единственная горутина, мутирующая состояние:
// команды клиентов и тики зоны сериализуются здесь.
func (s *GameService) RunLoop() {
	logger.Log.Info("Service loop started")
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		case <-ticker.C:
			s.mu.Lock()
			s.Zone.Tick()
			s.mu.Unlock()
		}
	}
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
func (s *GameService) ProcessCommand(external api.ClientCommand, token string, reply chan<- api.ServerResponse) {
	actionType := ParseAction(external.Action)
	if actionType == ActionUnknown {
		logger.Log.WithField("action", external.Action).Warn("Unknown action")
		if reply != nil {
			reply <- api.ServerResponse{
				Type: "ERROR",
				Logs: []api.LogEntry{s.logEntry(fmt.Sprintf("Неизвестное действие %q.", external.Action), "ERROR")},
			}
		}
		return
	}

	s.CommandChan <- InternalCommand{
		Action:  actionType,
		Token:   token,
		Payload: external.Payload,
		Reply:   reply,
	}
}

func (s *GameService) executeCommand(cmd InternalCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.handlers[cmd.Action]
	if !ok {
		s.reply(cmd, api.ServerResponse{
			Type: "ERROR",
			Logs: []api.LogEntry{s.logEntry(fmt.Sprintf("Действие %v не поддерживается.", cmd.Action), "ERROR")},
		})
		return
	}

	ctx := handlers.Context{
		Robots:    s,
		Sessions:  s,
		Factory:   s.Factory,
		Token:     cmd.Token,
		Session:   s.sessions[cmd.Token],
		Inventory: s.inventoryFor(cmd.Token),
	}

	result, err := h(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithField("action", cmd.Action.String()).WithError(err).Debug("Command rejected")
		s.reply(cmd, api.ServerResponse{
			Type: "ERROR",
			Tick: s.Zone.CurrentTick(),
			Logs: []api.LogEntry{s.logEntry(err.Error(), "ERROR")},
		})
		return
	}

	s.reply(cmd, s.buildResponse(cmd.Token, result))
}

// buildResponse собирает полный снимок состояния клиента после команды.
func (s *GameService) buildResponse(token string, result handlers.Result) api.ServerResponse {
	resp := api.ServerResponse{
		Type:  "UPDATE",
		Tick:  s.Zone.CurrentTick(),
		Hover: result.Hover,
	}
	if result.SessionClosed {
		resp.Type = "SESSION_CLOSED"
	}
	if result.Msg != "" {
		resp.Logs = append(resp.Logs, s.logEntry(result.Msg, result.MsgType))
	}

	if session := s.sessions[token]; session != nil && session.Active() {
		resp.SessionID = session.ID()
		resp.Mode = session.Mode().String()
		resp.Robot = BuildRobotView(session.Robot())
	}
	resp.Inventory = BuildInventoryView(s.inventories[token])
	return resp
}

func (s *GameService) reply(cmd InternalCommand, resp api.ServerResponse) {
	if cmd.Reply == nil {
		return
	}
	select {
	case cmd.Reply <- resp:
	default:
		// Клиент не успевает читать - ответ не должен блокировать цикл
		logger.Log.Warn("Reply channel full, dropping response")
	}
}

func (s *GameService) logEntry(text, msgType string) api.LogEntry {
	s.logSeq++
	if msgType == "" {
		msgType = "INFO"
	}
	return api.LogEntry{
		ID:        fmt.Sprintf("log_%d", s.logSeq),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	}
}

// --- РЕЕСТРЫ (handlers.RobotFinder / handlers.SessionStore) ---

// GetRobot находит робота по строковому ID.
func (s *GameService) GetRobot(id string) *domain.Robot {
	return s.robots[id]
}

// RegisterRobot добавляет робота в реестр (для отладочных ручек и тестов).
func (s *GameService) RegisterRobot(r *domain.Robot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.robots[r.ID.String()] = r
}

// NewToken выдает токен для нового клиента и заводит стартовый склад.
func (s *GameService) NewToken() string {
	token := utils.GenerateToken()
	s.mu.Lock()
	s.inventoryFor(token)
	s.mu.Unlock()
	return token
}

// inventoryFor возвращает склад клиента, создавая его со стартовым
// набором деталей при первом обращении.
func (s *GameService) inventoryFor(token string) *domain.Inventory {
	if inv, ok := s.inventories[token]; ok {
		return inv
	}
	inv := domain.NewInventory()
	inv.AddItem("PlateSmall", 10)
	inv.AddItem("PlateLong", 6)
	inv.AddItem("PlateWide", 4)
	inv.AddItem("PlateStacked", 2)
	inv.AddItem("RaptorArmL", 1)
	inv.AddItem("RaptorArmR", 1)
	inv.AddItem("RaptorTailBlade", 1)
	s.inventories[token] = inv
	return inv
}

// OpenSession открывает сессию редактирования робота для клиента.
// Отказ: у клиента уже есть сессия или робот уже редактируется.
func (s *GameService) OpenSession(token string, robot *domain.Robot) (*editor.Session, error) {
	if existing := s.sessions[token]; existing != nil && existing.Active() {
		return nil, fmt.Errorf("client already has an active edit session")
	}
	if holder, busy := s.busyRobots[robot]; busy {
		return nil, fmt.Errorf("robot %q is already being edited by %s", robot.Name, holder)
	}

	session := editor.NewSession(robot, s.inventoryFor(token), s.Factory)
	s.sessions[token] = session
	s.busyRobots[robot] = token
	logger.Log.WithField("robot", robot.Name).Info("Edit session opened")
	return session, nil
}

// CloseSession закрывает сессию с финальной валидацией и, при
// нарушениях, откатом.
func (s *GameService) CloseSession(token string) (editor.CloseReport, error) {
	session := s.sessions[token]
	if session == nil || !session.Active() {
		return editor.CloseReport{}, fmt.Errorf("no active edit session")
	}
	report := session.Close()
	s.releaseSession(token, session)

	logger.Log.WithField("robot", session.Robot().Name).
		WithField("restored", report.Restored).
		Info("Edit session closed")
	return report, nil
}

// AbortSession прерывает сессию с безусловным откатом.
func (s *GameService) AbortSession(token string) (editor.CloseReport, error) {
	session := s.sessions[token]
	if session == nil || !session.Active() {
		return editor.CloseReport{}, fmt.Errorf("no active edit session")
	}
	report := session.Abort()
	s.releaseSession(token, session)
	return report, nil
}

func (s *GameService) releaseSession(token string, session *editor.Session) {
	delete(s.sessions, token)
	delete(s.busyRobots, session.Robot())
}

// --- ОТЛАДОЧНЫЙ ДОСТУП ---

// SnapshotRobots возвращает список роботов для отладочных ручек.
func (s *GameService) SnapshotRobots() []*domain.Robot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Robot, 0, len(s.robots))
	for _, r := range s.robots {
		out = append(out, r)
	}
	return out
}

// DebugRobotView строит дерево робота под блокировкой сервиса.
func (s *GameService) DebugRobotView(id string) *api.RobotView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	robot := s.robots[id]
	if robot == nil {
		return nil
	}
	return BuildRobotView(robot)
}

// ZoneStatus - срез состояния зоны для отладочных ручек.
type ZoneStatus struct {
	Tick   int           `json:"tick"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Agents []AgentStatus `json:"agents"`
}

type AgentStatus struct {
	RobotID string `json:"robotId"`
	Name    string `json:"name"`
	State   string `json:"state"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// SnapshotZone возвращает позиции и состояния всех агентов зоны.
func (s *GameService) SnapshotZone() ZoneStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := ZoneStatus{
		Tick:   s.Zone.CurrentTick(),
		Width:  s.Zone.Field.Width,
		Height: s.Zone.Field.Height,
	}
	for _, a := range s.Zone.Agents {
		status.Agents = append(status.Agents, AgentStatus{
			RobotID: a.Robot.ID.String(),
			Name:    a.Robot.Name,
			State:   a.State.String(),
			X:       a.Pos.X,
			Y:       a.Pos.Y,
		})
	}
	return status
}
