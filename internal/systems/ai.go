package systems

import (
	"math"
	"math/rand"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/logger"
)

// Радиусы поведения дикого робота (в клетках зоны).
const (
	// DetectRadius - дистанция обнаружения цели при прямой видимости.
	DetectRadius = 8.0
	// LoseRadius - дистанция, на которой преследование прекращается.
	LoseRadius = 12.0
	// AttackRange - дистанция атаки, диагонали включены.
	AttackRange = 1.5
	// PatrolRadius - разброс точек блуждания вокруг якоря.
	PatrolRadius = 5
)

// IntentType - вид намерения, которое выдает автомат.
type IntentType uint8

const (
	IntentWait IntentType = iota
	IntentMove
	IntentAttack
)

// Intent - намерение агента на текущий такт. Применяет его цикл зоны.
type Intent struct {
	Type   IntentType
	Target *Agent
	Dx, Dy int
}

// ComputeWildAction продвигает автомат агента на один такт и возвращает
// намерение. Переходы:
//
//	Patrol -> Chase   цель видна и ближе DetectRadius
//	Chase  -> Attack  цель ближе AttackRange
//	Chase  -> Patrol  цель потеряна (не видна или дальше LoseRadius)
//	Attack -> Chase   цель вышла из дистанции атаки
//
// Мертвые shell-роботы (без ядра) не действуют.
func ComputeWildAction(a *Agent, target *Agent, field CollisionQuerier, others []*Agent, rng *rand.Rand) Intent {
	if a.Robot != nil && a.Robot.IsShell() {
		return Intent{Type: IntentWait}
	}

	seen := false
	var dist float64
	if target != nil {
		dist = a.Pos.DistanceTo(target.Pos)
		seen = dist <= LoseRadius && HasLineOfSight(field, a.Pos, target.Pos)
	}

	switch a.State {
	case enums.AIStatePatrol:
		if seen && dist <= DetectRadius {
			logger.Log.Debugf("agent %s: target spotted at %.1f, chasing", a.Robot.Name, dist)
			a.State = enums.AIStateChase
			return a.chase(target, field, others)
		}
		return a.patrol(field, others, rng)

	case enums.AIStateChase:
		if !seen {
			logger.Log.Debugf("agent %s: target lost, back to patrol", a.Robot.Name)
			a.State = enums.AIStatePatrol
			return a.patrol(field, others, rng)
		}
		if dist <= AttackRange {
			a.State = enums.AIStateAttack
			return Intent{Type: IntentAttack, Target: target}
		}
		return a.chase(target, field, others)

	case enums.AIStateAttack:
		if !seen || dist > AttackRange {
			a.State = enums.AIStateChase
			if !seen {
				a.State = enums.AIStatePatrol
				return a.patrol(field, others, rng)
			}
			return a.chase(target, field, others)
		}
		return Intent{Type: IntentAttack, Target: target}
	}

	return Intent{Type: IntentWait}
}

// patrol ведет агента к текущей точке блуждания; по достижении
// выбирается новая точка в радиусе PatrolRadius от якоря.
func (a *Agent) patrol(field CollisionQuerier, others []*Agent, rng *rand.Rand) Intent {
	if !a.hasPatrolTarget || a.Pos == a.patrolTarget {
		a.pickPatrolTarget(field, rng)
	}
	if !a.hasPatrolTarget {
		return Intent{Type: IntentWait}
	}

	dx, dy := smartStep(a, a.patrolTarget, field, others)
	if dx == 0 && dy == 0 {
		// Тупик: точка недостижима, выбираем другую на следующем такте
		a.hasPatrolTarget = false
		return Intent{Type: IntentWait}
	}
	return Intent{Type: IntentMove, Dx: dx, Dy: dy}
}

func (a *Agent) pickPatrolTarget(field CollisionQuerier, rng *rand.Rand) {
	for attempt := 0; attempt < 10; attempt++ {
		p := Position{
			X: a.Home.X + rng.Intn(2*PatrolRadius+1) - PatrolRadius,
			Y: a.Home.Y + rng.Intn(2*PatrolRadius+1) - PatrolRadius,
		}
		if p != a.Pos && field.InBounds(p.X, p.Y) && !field.IsBlocked(p.X, p.Y) {
			a.patrolTarget = p
			a.hasPatrolTarget = true
			return
		}
	}
	a.hasPatrolTarget = false
}

func (a *Agent) chase(target *Agent, field CollisionQuerier, others []*Agent) Intent {
	dx, dy := smartStep(a, target.Pos, field, others)
	if dx == 0 && dy == 0 {
		return Intent{Type: IntentWait}
	}
	return Intent{Type: IntentMove, Dx: dx, Dy: dy}
}

// smartStep выбирает шаг к цели: сперва идеальный диагональный,
// при блокировке скольжение вдоль приоритетной оси.
func smartStep(a *Agent, goal Position, field CollisionQuerier, others []*Agent) (int, int) {
	dxRaw := goal.X - a.Pos.X
	dyRaw := goal.Y - a.Pos.Y

	stepX := sign(dxRaw)
	stepY := sign(dyRaw)

	if CalculateMove(a, stepX, stepY, field, others).HasMoved {
		return stepX, stepY
	}

	tryXFirst := math.Abs(float64(dxRaw)) > math.Abs(float64(dyRaw))
	if tryXFirst {
		if stepX != 0 && CalculateMove(a, stepX, 0, field, others).HasMoved {
			return stepX, 0
		}
		if stepY != 0 && CalculateMove(a, 0, stepY, field, others).HasMoved {
			return 0, stepY
		}
	} else {
		if stepY != 0 && CalculateMove(a, 0, stepY, field, others).HasMoved {
			return 0, stepY
		}
		if stepX != 0 && CalculateMove(a, stepX, 0, field, others).HasMoved {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
