package handlers

import (
	"encoding/json"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/editor"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/blueprint"
)

// RobotFinder описывает любую структуру, которая может находить робота
// по строковому ID. GameService неявно реализует этот интерфейс.
type RobotFinder interface {
	GetRobot(id string) *domain.Robot
}

// SessionStore управляет жизненным циклом сессий редактирования:
// открытие, закрытие с валидацией/откатом и аварийное прерывание.
// GameService неявно реализует этот интерфейс.
type SessionStore interface {
	OpenSession(token string, robot *domain.Robot) (*editor.Session, error)
	CloseSession(token string) (editor.CloseReport, error)
	AbortSession(token string) (editor.CloseReport, error)
}

// Context передает хендлеру состояние зоны.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Robots   RobotFinder
	Sessions SessionStore
	Factory  *blueprint.Factory

	// Token клиента, от имени которого выполняется команда.
	Token string

	// Session - активная сессия клиента (nil, если редактирование
	// не активировано). Для команд редактирования обязательна.
	Session *editor.Session

	// Inventory - склад клиента.
	Inventory *domain.Inventory
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, EDIT, ERROR)

	// Hover - результат предпросмотра (только для HOVER)
	Hover *api.HoverView

	// SessionClosed - сессия закрыта этой командой
	SessionClosed bool
}

// HandlerFunc - это контракт для любой команды (PLACE, ATTACH, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
