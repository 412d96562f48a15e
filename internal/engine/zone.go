package engine

import (
	"math/rand"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/systems"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/logger"
)

// Zone - изолированная игровая зона с дикими роботами.
// Тикается только из цикла сервиса: внутренней синхронизации нет.
type Zone struct {
	Field  *systems.Field
	Agents []*systems.Agent

	rng  *rand.Rand
	tick int
}

// NewZone создает пустую зону заданного размера.
func NewZone(width, height int, seed int64) *Zone {
	return &Zone{
		Field: systems.NewField(width, height),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// AddAgent размещает дикого робота в зоне.
func (z *Zone) AddAgent(robot *domain.Robot, at systems.Position) *systems.Agent {
	a := systems.NewAgent(robot, at)
	z.Agents = append(z.Agents, a)
	return a
}

// Tick продвигает симуляцию зоны на один такт: каждый агент получает
// намерение от автомата, затем намерения применяются.
func (z *Zone) Tick() {
	z.tick++

	for _, a := range z.Agents {
		target := z.nearestPrey(a)
		intent := systems.ComputeWildAction(a, target, z.Field, z.Agents, z.rng)

		switch intent.Type {
		case systems.IntentMove:
			res := systems.CalculateMove(a, intent.Dx, intent.Dy, z.Field, z.Agents)
			if res.HasMoved {
				a.Pos = systems.Position{X: res.NewX, Y: res.NewY}
			}
		case systems.IntentAttack:
			// Боевая система вне ядра зоны: атака только фиксируется.
			logger.Log.WithField("tick", z.tick).Debugf(
				"agent %s attacks %s", a.Robot.Name, intent.Target.Robot.Name)
		}
	}
}

// CurrentTick возвращает текущий такт зоны.
func (z *Zone) CurrentTick() int {
	return z.tick
}

// nearestPrey ищет ближайшего живого агента, кроме самого робота.
func (z *Zone) nearestPrey(a *systems.Agent) *systems.Agent {
	var best *systems.Agent
	bestDist := 0.0
	for _, other := range z.Agents {
		if other == a || other.Robot == nil || other.Robot.IsShell() {
			continue
		}
		d := a.Pos.DistanceTo(other.Pos)
		if best == nil || d < bestDist {
			best = other
			bestDist = d
		}
	}
	return best
}
