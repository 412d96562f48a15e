package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/blueprint"
)

func newTestService(t *testing.T) (*GameService, *domain.Robot) {
	t.Helper()
	s := NewService(Config{
		Seed:      42,
		ZoneID:    1,
		ZoneW:     16,
		ZoneH:     16,
		WildCount: 0,
	})

	robot, errs := blueprint.NewRobot("PlayerBot", 1, s.Factory).
		WithHips("RaptorHips").
		Attach(enums.SocketTorso, "RaptorTorso").
		Attach(enums.SocketHead, "RaptorHead").
		Attach(enums.SocketLegLeft, "RaptorLegL").
		Attach(enums.SocketLegRight, "RaptorLegR").
		WithCore(1).
		Build()
	require.Empty(t, errs, "test robot must assemble cleanly")

	s.RegisterRobot(robot)
	return s, robot
}

// run прогоняет одну команду через цикл сервиса и ждет ответ.
func run(t *testing.T, s *GameService, token string, action ActionType, payload interface{}) api.ServerResponse {
	t.Helper()
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		raw = data
	}

	reply := make(chan api.ServerResponse, 1)
	s.executeCommand(InternalCommand{
		Action:  action,
		Token:   token,
		Payload: raw,
		Reply:   reply,
	})

	select {
	case resp := <-reply:
		return resp
	default:
		t.Fatal("no response from service")
		return api.ServerResponse{}
	}
}

func TestServiceEditFlow(t *testing.T) {
	// Test 1: полный цикл ACTIVATE -> PLACE -> DEACTIVATE
	s, robot := newTestService(t)
	token := s.NewToken()

	resp := run(t, s, token, ActionActivate, api.ActivatePayload{RobotID: robot.ID.String()})
	require.Equal(t, "UPDATE", resp.Type)
	require.NotNil(t, resp.Robot, "activation must return the robot tree")
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "ARMOR", resp.Mode)
	assert.True(t, resp.Robot.HasCore)
	require.NotEmpty(t, resp.Robot.Root.Grids, "root part exposes its grids")
	assert.NotEmpty(t, resp.Robot.Root.Grids[0].Owner, "grid view carries its owner address")
	require.NotNil(t, resp.Inventory)

	before := itemCount(resp.Inventory, "PlateSmall")
	require.Greater(t, before, 0)

	resp = run(t, s, token, ActionPlace, api.PlacePayload{
		GridName: "RaptorChest",
		X:        0,
		Y:        0,
		Template: "PlateSmall",
		Rotation: 0,
	})
	require.Equal(t, "UPDATE", resp.Type)
	assert.Equal(t, before-1, itemCount(resp.Inventory, "PlateSmall"))

	resp = run(t, s, token, ActionDeactivate, nil)
	assert.Equal(t, "SESSION_CLOSED", resp.Type)
	assert.Nil(t, resp.Robot, "closed session must not echo the robot tree")

	// После закрытия сессии редактирующие команды отклоняются
	resp = run(t, s, token, ActionRotate, nil)
	assert.Equal(t, "ERROR", resp.Type)
}

func TestServiceRejectsEditWithoutSession(t *testing.T) {
	// Test 2: PLACE без активной сессии - ошибка
	s, _ := newTestService(t)
	token := s.NewToken()

	resp := run(t, s, token, ActionPlace, api.PlacePayload{
		GridName: "RaptorChest",
		Template: "PlateSmall",
	})
	assert.Equal(t, "ERROR", resp.Type)
	require.NotEmpty(t, resp.Logs)
}

func TestServiceOneSessionPerRobot(t *testing.T) {
	// Test 3: второй клиент не может открыть сессию на занятого робота
	s, robot := newTestService(t)
	first := s.NewToken()
	second := s.NewToken()

	resp := run(t, s, first, ActionActivate, api.ActivatePayload{RobotID: robot.ID.String()})
	require.Equal(t, "UPDATE", resp.Type)

	resp = run(t, s, second, ActionActivate, api.ActivatePayload{RobotID: robot.ID.String()})
	assert.Equal(t, "ERROR", resp.Type)

	// После закрытия робот снова доступен
	run(t, s, first, ActionDeactivate, nil)
	resp = run(t, s, second, ActionActivate, api.ActivatePayload{RobotID: robot.ID.String()})
	assert.Equal(t, "UPDATE", resp.Type)
}

func TestServiceAbortRestoresInventory(t *testing.T) {
	// Test 4: ABORT откатывает установку, деталь возвращается на склад
	s, robot := newTestService(t)
	token := s.NewToken()

	resp := run(t, s, token, ActionActivate, api.ActivatePayload{RobotID: robot.ID.String()})
	require.Equal(t, "UPDATE", resp.Type)
	before := itemCount(resp.Inventory, "PlateLong")

	resp = run(t, s, token, ActionPlace, api.PlacePayload{
		GridName: "RaptorChest",
		X:        1,
		Y:        1,
		Template: "PlateLong",
		Rotation: 0,
	})
	require.Equal(t, "UPDATE", resp.Type)
	require.Equal(t, before-1, itemCount(resp.Inventory, "PlateLong"))

	resp = run(t, s, token, ActionAbort, nil)
	assert.Equal(t, "SESSION_CLOSED", resp.Type)
	assert.Equal(t, before, itemCount(resp.Inventory, "PlateLong"))
}

func TestServiceUnknownActionViaProcessCommand(t *testing.T) {
	// Test 5: неизвестное действие отбрасывается до очереди команд
	s, _ := newTestService(t)
	reply := make(chan api.ServerResponse, 1)

	s.ProcessCommand(api.ClientCommand{Action: "EXPLODE"}, "tok", reply)

	resp := <-reply
	assert.Equal(t, "ERROR", resp.Type)
	assert.Empty(t, s.CommandChan, "bad action must not reach the loop")
}

func TestServiceSpawnsWildPopulation(t *testing.T) {
	// Test 6: стартовая популяция диких роботов попадает в зону и реестр
	s := NewService(Config{Seed: 7, ZoneID: 2, ZoneW: 32, ZoneH: 32, WildCount: 3, WildTier: 1})
	assert.Len(t, s.Zone.Agents, 3)
	assert.Len(t, s.SnapshotRobots(), 3)
	for _, r := range s.SnapshotRobots() {
		assert.False(t, r.IsShell(), "wild robots spawn with a core")
	}
}

func itemCount(inv *api.InventoryView, template string) int {
	if inv == nil {
		return 0
	}
	for _, item := range inv.Items {
		if item.Template == template {
			return item.Count
		}
	}
	return 0
}
