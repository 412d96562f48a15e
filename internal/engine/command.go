package engine

import (
	"encoding/json"
	"strings"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/api"
)

// ActionType - тип команды редактирования.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionState
	ActionActivate
	ActionDeactivate
	ActionAbort
	ActionHover
	ActionRotate
	ActionPlace
	ActionRemove
	ActionAttach
	ActionDetach
	ActionToggleMode
	ActionTransplant
)

// LOGIN намеренно отсутствует: это рукопожатие readPump,
// а не команда редактирования.
var actionStringToType = map[string]ActionType{
	"STATE":       ActionState,
	"ACTIVATE":    ActionActivate,
	"DEACTIVATE":  ActionDeactivate,
	"ABORT":       ActionAbort,
	"HOVER":       ActionHover,
	"ROTATE":      ActionRotate,
	"PLACE":       ActionPlace,
	"REMOVE":      ActionRemove,
	"ATTACH":      ActionAttach,
	"DETACH":      ActionDetach,
	"TOGGLE_MODE": ActionToggleMode,
	"TRANSPLANT":  ActionTransplant,
}

var actionTypeToString = map[ActionType]string{}

func init() {
	for s, t := range actionStringToType {
		actionTypeToString[t] = s
	}
}

// ParseAction разбирает имя действия с провода (регистр не важен).
func ParseAction(s string) ActionType {
	if t, ok := actionStringToType[strings.ToUpper(s)]; ok {
		return t
	}
	return ActionUnknown
}

func (t ActionType) String() string {
	if s, ok := actionTypeToString[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// InternalCommand - команда клиента после первичного разбора.
// Reply, если задан, получает персональный ответ на эту команду.
type InternalCommand struct {
	Action  ActionType
	Token   string
	Payload json.RawMessage
	Reply   chan<- api.ServerResponse
}
