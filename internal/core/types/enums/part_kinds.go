package enums

type PartKind uint8

const (
	PartKindUnknown PartKind = iota // 0
	PartKindStructural              // 1
	PartKindArmor                   // 2
	PartKindCore                    // 3
)

var partKindToString = map[PartKind]string{
	PartKindStructural: "STRUCTURAL",
	PartKindArmor:      "ARMOR",
	PartKindCore:       "CORE",
}

func (k PartKind) String() string {
	if val, ok := partKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}
