package enums

type AIStateType uint8

const (
	StateUnknown AIStateType = iota
	AIStatePatrol
	AIStateChase
	AIStateAttack
)

var aiStateToString = map[AIStateType]string{
	AIStatePatrol: "PATROL",
	AIStateChase:  "CHASE",
	AIStateAttack: "ATTACK",
}

// String возвращает строковое представление (для логов и дебага)
func (s AIStateType) String() string {
	if val, ok := aiStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}
