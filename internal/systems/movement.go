// Package systems реализует поведение диких роботов в зоне:
// восприятие, расчет перемещения и реактивный конечный автомат
// патруль/преследование/атака. Системы только читают структурное
// состояние роботов и выдают намерения - мутирует их цикл зоны.
package systems

import (
	"math"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

// Position - клетка зоны.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает смещенную копию, не меняя исходную позицию.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo - евклидово расстояние между клетками.
func (p Position) DistanceTo(o Position) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// CollisionQuerier отвечает на запросы проходимости клеток.
// Field реализует его для плоской зоны; тесты подставляют свои поля.
type CollisionQuerier interface {
	IsBlocked(x, y int) bool
	InBounds(x, y int) bool
}

// Field - плоская карта препятствий зоны.
type Field struct {
	Width, Height int
	blocked       []bool
}

// NewField создает поле без препятствий.
func NewField(width, height int) *Field {
	return &Field{
		Width:   width,
		Height:  height,
		blocked: make([]bool, width*height),
	}
}

func (f *Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

func (f *Field) IsBlocked(x, y int) bool {
	if !f.InBounds(x, y) {
		return true
	}
	return f.blocked[y*f.Width+x]
}

// SetBlocked помечает клетку препятствием.
func (f *Field) SetBlocked(x, y int, v bool) {
	if f.InBounds(x, y) {
		f.blocked[y*f.Width+x] = v
	}
}

// Agent - дикий робот в зоне: структурное тело плюс позиция и
// состояние автомата. Home - якорь патрулирования.
type Agent struct {
	Robot *domain.Robot
	Pos   Position
	Home  Position
	State enums.AIStateType

	// patrolTarget - текущая точка блуждания вокруг Home.
	patrolTarget    Position
	hasPatrolTarget bool
}

// NewAgent создает агента в состоянии патруля.
func NewAgent(robot *domain.Robot, at Position) *Agent {
	return &Agent{
		Robot: robot,
		Pos:   at,
		Home:  at,
		State: enums.AIStatePatrol,
	}
}

// MovementResult - результат вычисления одного шага.
type MovementResult struct {
	NewX, NewY int
	HasMoved   bool
	BlockedBy  *Agent // Если врезались в другого агента
	IsWall     bool   // Если врезались в препятствие или границу
}

// CalculateMove вычисляет новую позицию. Не меняет состояние зоны!
func CalculateMove(a *Agent, dx, dy int, field CollisionQuerier, others []*Agent) MovementResult {
	target := a.Pos.Shift(dx, dy)
	res := MovementResult{NewX: target.X, NewY: target.Y}

	if !field.InBounds(target.X, target.Y) || field.IsBlocked(target.X, target.Y) {
		res.IsWall = true
		return res
	}

	for _, other := range others {
		if other == a {
			continue
		}
		if other.Pos == target {
			res.BlockedBy = other
			return res
		}
	}

	res.HasMoved = true
	return res
}
