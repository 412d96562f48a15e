package domain

import (
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
)

// CoreUnit - пересаживаемый "мозг" робота.
//
// Ровно один робот может держать данное ядро в каждый момент времени:
// перед вставкой в другого робота обязательна экстракция.
type CoreUnit struct {
	ID types.PartID `json:"id"`

	// Tier - тир ядра. Ядро управляет роботами, чей тир не превышает
	// тир самого ядра.
	Tier int `json:"tier"`

	owner *Robot
}

// NewCoreUnit создает свободное (не вставленное) ядро.
func NewCoreUnit(id types.PartID, tier int) *CoreUnit {
	return &CoreUnit{
		ID:   id,
		Tier: tier,
	}
}

// Owner возвращает робота, в которого вставлено ядро (nil для свободного).
func (c *CoreUnit) Owner() *Robot {
	return c.owner
}

// Extract извлекает ядро из текущего робота и возвращает освобожденного
// робота (теперь оболочку). Nil, если ядро никуда не вставлено.
func (c *CoreUnit) Extract() *Robot {
	if c.owner == nil {
		return nil
	}
	vacated := c.owner
	vacated.core = nil
	c.owner = nil
	return vacated
}

// InsertInto вставляет ядро в робота.
//
// Отказ (false, состояние не меняется), если:
//   - ядро уже вставлено куда-либо (сначала Extract);
//   - у целевого робота уже есть ядро;
//   - тир робота превышает тир ядра.
func (c *CoreUnit) InsertInto(r *Robot) bool {
	if c.owner != nil {
		return false
	}
	if r == nil || r.core != nil {
		return false
	}
	if r.Tier > c.Tier {
		return false
	}

	r.core = c
	c.owner = r
	return true
}
