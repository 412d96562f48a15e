package enums

import "strings"

type SocketType uint8

const (
	SocketUnknown SocketType = iota
	SocketHips
	SocketTorso
	SocketHead
	SocketArmLeft
	SocketArmRight
	SocketLegLeft
	SocketLegRight
	SocketTail
	SocketWingLeft
	SocketWingRight
	SocketCore
	SocketCustom
)

var socketTypeToString = map[SocketType]string{
	SocketHips:      "HIPS",
	SocketTorso:     "TORSO",
	SocketHead:      "HEAD",
	SocketArmLeft:   "ARM_LEFT",
	SocketArmRight:  "ARM_RIGHT",
	SocketLegLeft:   "LEG_LEFT",
	SocketLegRight:  "LEG_RIGHT",
	SocketTail:      "TAIL",
	SocketWingLeft:  "WING_LEFT",
	SocketWingRight: "WING_RIGHT",
	SocketCore:      "CORE",
	SocketCustom:    "CUSTOM",
}

var socketTypeStringToType = map[string]SocketType{
	"HIPS":       SocketHips,
	"TORSO":      SocketTorso,
	"HEAD":       SocketHead,
	"ARM_LEFT":   SocketArmLeft,
	"ARM_RIGHT":  SocketArmRight,
	"LEG_LEFT":   SocketLegLeft,
	"LEG_RIGHT":  SocketLegRight,
	"TAIL":       SocketTail,
	"WING_LEFT":  SocketWingLeft,
	"WING_RIGHT": SocketWingRight,
	"CORE":       SocketCore,
	"CUSTOM":     SocketCustom,
}

// String возвращает строковое представление (для логов и дебага)
func (s SocketType) String() string {
	if val, ok := socketTypeToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseSocketType конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseSocketType(s string) SocketType {
	upper := strings.ToUpper(s)
	if val, ok := socketTypeStringToType[upper]; ok {
		return val
	}
	return SocketUnknown
}
