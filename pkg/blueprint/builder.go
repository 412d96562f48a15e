package blueprint

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

// RobotBuilder предоставляет fluent API для сборки роботов.
// Ошибки накапливаются и возвращаются из Build одним срезом:
// цепочку можно писать без промежуточных проверок.
type RobotBuilder struct {
	factory *Factory
	robot   *domain.Robot
	errs    []error
}

// NewRobot создает новый builder для робота.
func NewRobot(name string, tier int, factory *Factory) *RobotBuilder {
	return &RobotBuilder{
		factory: factory,
		robot:   domain.NewRobot(name, tier),
	}
}

func (b *RobotBuilder) fail(format string, args ...any) *RobotBuilder {
	b.errs = append(b.errs, fmt.Errorf(format, args...))
	return b
}

// WithHips устанавливает корневую часть. Должен быть первым шагом цепочки.
func (b *RobotBuilder) WithHips(template string) *RobotBuilder {
	part, err := b.factory.CreateStructural(template)
	if err != nil {
		return b.fail("hips: %v", err)
	}
	if !b.robot.AttachHips(part) {
		return b.fail("hips: template %q refused as root", template)
	}
	return b
}

// Attach устанавливает часть в первый открытый сокет заданного типа.
// Поиск идет по всему дереву в порядке обхода.
func (b *RobotBuilder) Attach(socket enums.SocketType, template string) *RobotBuilder {
	part, err := b.factory.CreateStructural(template)
	if err != nil {
		return b.fail("attach %v: %v", socket, err)
	}
	for _, s := range b.robot.OpenSockets() {
		if s.Type != socket {
			continue
		}
		if s.TryAttach(part) {
			return b
		}
		return b.fail("attach %v: socket refused %q", socket, template)
	}
	return b.fail("attach %v: no open socket for %q", socket, template)
}

// WithCore создает и вставляет ядро заданного тира.
func (b *RobotBuilder) WithCore(tier int) *RobotBuilder {
	core := b.factory.CreateCore(tier)
	if !core.InsertInto(b.robot) {
		return b.fail("core: tier %d core refused by tier %d robot", tier, b.robot.Tier)
	}
	return b
}

// PlaceArmor устанавливает броневую деталь на именованную сетку.
func (b *RobotBuilder) PlaceArmor(gridName, template string, x, y int, r domain.Rotation) *RobotBuilder {
	grid := b.robot.FindGrid(gridName)
	if grid == nil {
		return b.fail("armor %q: no grid %q", template, gridName)
	}
	armor, err := b.factory.CreateArmor(template)
	if err != nil {
		return b.fail("armor %q: %v", template, err)
	}
	if !grid.TryPlace(armor, x, y, r) {
		return b.fail("armor %q: cannot place at (%d,%d) rot %v on %q", template, x, y, r, gridName)
	}
	return b
}

// Build возвращает собранного робота и накопленные ошибки.
// Робот возвращается и при ошибках: частичная сборка пригодна
// для диагностики, но не для спавна.
func (b *RobotBuilder) Build() (*domain.Robot, []error) {
	return b.robot, b.errs
}
