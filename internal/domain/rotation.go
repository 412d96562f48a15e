package domain

// Rotation - дискретный поворот детали на сетке.
// Только четыре значения: 0°, 90°, 180°, 270° по часовой стрелке.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270

	rotationCount = 4
)

// Clockwise возвращает следующий поворот по часовой стрелке.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) % rotationCount
}

// CounterClockwise возвращает следующий поворот против часовой стрелки.
func (r Rotation) CounterClockwise() Rotation {
	return (r + rotationCount - 1) % rotationCount
}

// Degrees возвращает угол в градусах (для презентационного слоя).
func (r Rotation) Degrees() int {
	return int(r%rotationCount) * 90
}

func (r Rotation) String() string {
	switch r % rotationCount {
	case Rot90:
		return "90"
	case Rot180:
		return "180"
	case Rot270:
		return "270"
	default:
		return "0"
	}
}

// RotationFromDegrees разбирает угол презентационного слоя.
// Допустимы только 0, 90, 180, 270.
func RotationFromDegrees(deg int) (Rotation, bool) {
	switch deg {
	case 0:
		return Rot0, true
	case 90:
		return Rot90, true
	case 180:
		return Rot180, true
	case 270:
		return Rot270, true
	}
	return Rot0, false
}

// RotateSize поворачивает габариты footprint'а.
// При 90°/270° оси меняются местами, при 0°/180° остаются как есть.
func RotateSize(x, y int, r Rotation) (int, int) {
	if r == Rot90 || r == Rot270 {
		return y, x
	}
	return x, y
}

// RotateEdges поворачивает флаги открытых краев.
// Каждый шаг на 90° по часовой: Left→Top, Top→Right, Right→Bottom, Bottom→Left.
// Полностью открытая конфигурация (LRTB) является неподвижной точкой.
func RotateEdges(edges EdgeFlags, r Rotation) EdgeFlags {
	steps := int(r % rotationCount)
	for i := 0; i < steps; i++ {
		edges = rotateEdgesOnce(edges)
	}
	return edges
}

func rotateEdgesOnce(edges EdgeFlags) EdgeFlags {
	var out EdgeFlags
	if edges.Has(EdgeLeft) {
		out |= EdgeTop
	}
	if edges.Has(EdgeTop) {
		out |= EdgeRight
	}
	if edges.Has(EdgeRight) {
		out |= EdgeBottom
	}
	if edges.Has(EdgeBottom) {
		out |= EdgeLeft
	}
	return out
}

// RotateFullType поворачивает тип полного обхвата.
// None неподвижен; горизонтальный и вертикальный обхват меняются
// местами на 90°/270°.
func RotateFullType(ft FullWrapType, r Rotation) FullWrapType {
	if ft == FullNone {
		return FullNone
	}
	if r == Rot90 || r == Rot270 {
		if ft == FullHorizontal {
			return FullVertical
		}
		return FullHorizontal
	}
	return ft
}

// IsRotationValid проверяет, можно ли установить tail-деталь на head-сетку
// с данным поворотом: повернутый footprint должен помещаться в сетку,
// а окружение сетки должно принимать повернутое окружение детали.
func IsRotationValid(tail, head GridInfo, r Rotation) bool {
	rotated := tail.Rotated(r)
	if rotated.SizeX > head.SizeX || rotated.SizeY > head.SizeY {
		return false
	}
	return head.Surrounding.CanAccept(rotated.Surrounding)
}

// GetValidRotations перебирает все четыре поворота и возвращает допустимые.
// Пустой результат означает, что деталь не встает на эту сетку ни в одной
// ориентации.
func GetValidRotations(tail, head GridInfo) []Rotation {
	var valid []Rotation
	for r := Rot0; r < rotationCount; r++ {
		if IsRotationValid(tail, head, r) {
			valid = append(valid, r)
		}
	}
	return valid
}
