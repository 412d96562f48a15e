package enums

import "strings"

// EditMode определяет, с чем работает сессия редактирования:
// с броневыми сетками или со структурными сокетами.
type EditMode uint8

const (
	EditModeArmor EditMode = iota
	EditModeStructural
)

var editModeToString = map[EditMode]string{
	EditModeArmor:      "ARMOR",
	EditModeStructural: "STRUCTURAL",
}

var editModeStringToMode = map[string]EditMode{
	"ARMOR":      EditModeArmor,
	"STRUCTURAL": EditModeStructural,
}

func (m EditMode) String() string {
	if val, ok := editModeToString[m]; ok {
		return val
	}
	return "ARMOR"
}

func ParseEditMode(s string) EditMode {
	upper := strings.ToUpper(s)
	if val, ok := editModeStringToMode[upper]; ok {
		return val
	}
	return EditModeArmor
}
