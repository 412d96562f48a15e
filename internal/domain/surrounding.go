package domain

import "strings"

// EdgeFlags - битовые флаги открытых (небронированных) краев сетки или детали.
type EdgeFlags uint8

const (
	EdgeLeft   EdgeFlags = 1 << iota // L
	EdgeRight                        // R
	EdgeTop                          // T
	EdgeBottom                       // B

	EdgesNone EdgeFlags = 0
	// EdgesAll - полностью открытая конфигурация. Инвариантна к повороту.
	EdgesAll = EdgeLeft | EdgeRight | EdgeTop | EdgeBottom
)

// Has проверяет, установлен ли флаг.
func (e EdgeFlags) Has(flag EdgeFlags) bool {
	return e&flag != 0
}

// IsSubsetOf проверяет, что все открытые края e открыты и в other.
func (e EdgeFlags) IsSubsetOf(other EdgeFlags) bool {
	return e&^other == 0
}

// String возвращает каноническую запись флагов: подмножество "LRTB".
func (e EdgeFlags) String() string {
	if e == EdgesNone {
		return ""
	}
	var sb strings.Builder
	if e.Has(EdgeLeft) {
		sb.WriteByte('L')
	}
	if e.Has(EdgeRight) {
		sb.WriteByte('R')
	}
	if e.Has(EdgeTop) {
		sb.WriteByte('T')
	}
	if e.Has(EdgeBottom) {
		sb.WriteByte('B')
	}
	return sb.String()
}

// ParseEdgeFlags разбирает строку вида "LR", "LRTB" (регистр не важен).
// Возвращает false, если встретился посторонний символ.
func ParseEdgeFlags(s string) (EdgeFlags, bool) {
	var flags EdgeFlags
	for _, c := range strings.ToUpper(s) {
		switch c {
		case 'L':
			flags |= EdgeLeft
		case 'R':
			flags |= EdgeRight
		case 'T':
			flags |= EdgeTop
		case 'B':
			flags |= EdgeBottom
		default:
			return EdgesNone, false
		}
	}
	return flags, true
}

// FullWrapType - признак того, что деталь/сетка полностью обхватывает
// конечность по одной из осей.
type FullWrapType uint8

const (
	FullNone FullWrapType = iota
	FullHorizontal
	FullVertical
)

func (f FullWrapType) String() string {
	switch f {
	case FullHorizontal:
		return "FH"
	case FullVertical:
		return "FV"
	default:
		return ""
	}
}

// SurroundingLevel описывает, насколько "закрыта" деталь или насколько
// закрытую деталь готова принять сетка.
//
// Level - числовая степень закрытости (0 = полностью наружная деталь).
// Edges - какие края остаются открытыми.
// FullType - полный обхват по горизонтали/вертикали.
type SurroundingLevel struct {
	Level    int          `json:"level"`
	Edges    EdgeFlags    `json:"edges"`
	FullType FullWrapType `json:"fullType"`
}

// Rotated возвращает окружение, повернутое на r.
func (s SurroundingLevel) Rotated(r Rotation) SurroundingLevel {
	return SurroundingLevel{
		Level:    s.Level,
		Edges:    RotateEdges(s.Edges, r),
		FullType: RotateFullType(s.FullType, r),
	}
}

// CanAccept - правило совместимости head-сетки и tail-детали.
//
// Сетка принимает деталь, если:
//  1. степень закрытости детали не превышает того, что сетка экспонирует;
//  2. открытые края детали - подмножество допустимых краев сетки;
//  3. полный обхват либо отсутствует у детали, либо совпадает с обхватом сетки.
func (s SurroundingLevel) CanAccept(tail SurroundingLevel) bool {
	if tail.Level > s.Level {
		return false
	}
	if !tail.Edges.IsSubsetOf(s.Edges) {
		return false
	}
	if tail.FullType != FullNone && tail.FullType != s.FullType {
		return false
	}
	return true
}

// IsOmni сообщает, что все четыре края открыты.
// Такая конфигурация не меняется при повороте.
func (s SurroundingLevel) IsOmni() bool {
	return s.Edges == EdgesAll
}
