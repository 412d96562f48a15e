package editor

import (
	"errors"
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/blueprint"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/utils"
)

// Ошибки операций редактирования. Отказы размещения/снятия ожидаемы
// и не фатальны: состояние робота при них не меняется.
var (
	ErrSessionClosed = errors.New("edit session is closed")
	ErrWrongMode     = errors.New("operation not allowed in current mode")
	ErrOutOfStock    = errors.New("inventory has no such item")
	ErrRejected      = errors.New("placement rejected")
	ErrNotFound      = errors.New("target not found")
	ErrHasDependents = errors.New("target still has occupied dependents")
)

// Session - активная сессия редактирования одного робота.
//
// Сессия однопоточная: все операции выполняются синхронно из цикла
// зоны. Один робот - максимум одна сессия (следит сервис, не сессия).
type Session struct {
	id        string
	robot     *domain.Robot
	inventory *domain.Inventory
	factory   *blueprint.Factory

	mode enums.EditMode

	// Снапшот на момент открытия. nil для пустых shell-роботов:
	// им нечего откатывать, их законно бросать недособранными.
	snapshot *domain.RobotSnapshot

	// Состояние выбора. Переживает переключение режима.
	selected string
	rotation domain.Rotation

	active bool
}

// CloseReport - итог закрытия сессии.
type CloseReport struct {
	// Valid - прошла ли финальная валидация.
	Valid bool
	// Restored - был ли выполнен откат к снапшоту.
	Restored bool
	// Credited - детали, возвращенные на склад при откате
	// (добавленные за сессию, но не попавшие в итоговое дерево).
	Credited map[string]int
	// Problems - список нарушений, из-за которых случился откат.
	Problems []error
}

// NewSession открывает сессию редактирования.
// Для робота с ядром снимается снапшот отката.
func NewSession(robot *domain.Robot, inv *domain.Inventory, factory *blueprint.Factory) *Session {
	s := &Session{
		id:        utils.GenerateToken(),
		robot:     robot,
		inventory: inv,
		factory:   factory,
		mode:      enums.EditModeArmor,
		active:    true,
	}
	if !robot.IsShell() {
		s.snapshot = domain.CaptureSnapshot(robot)
	}
	return s
}

func (s *Session) ID() string                   { return s.id }
func (s *Session) Robot() *domain.Robot         { return s.robot }
func (s *Session) Inventory() *domain.Inventory { return s.inventory }
func (s *Session) Mode() enums.EditMode         { return s.mode }
func (s *Session) Active() bool                 { return s.active }

// SetMode переключает режим. Выбор детали и поворот сохраняются.
func (s *Session) SetMode(m enums.EditMode) {
	s.mode = m
}

// Select запоминает текущий шаблон для предпросмотра и установки.
func (s *Session) Select(template string) {
	s.selected = template
}

func (s *Session) Selected() string { return s.selected }

// RotateCW циклически поворачивает выбранную деталь по часовой стрелке.
func (s *Session) RotateCW() domain.Rotation {
	s.rotation = s.rotation.Clockwise()
	return s.rotation
}

// RotateCCW циклически поворачивает против часовой стрелки.
func (s *Session) RotateCCW() domain.Rotation {
	s.rotation = s.rotation.CounterClockwise()
	return s.rotation
}

func (s *Session) Rotation() domain.Rotation { return s.rotation }

// HoverResult - предпросмотр размещения без мутации состояния.
type HoverResult struct {
	CanPlace  bool
	Rotation  domain.Rotation
	Rotations []domain.Rotation
	Reason    string
}

// Hover проверяет, встанет ли шаблон в клетку при текущем повороте,
// и перечисляет все допустимые повороты. Ничего не мутирует.
//
// owner - ID части, которой принадлежит сетка. Нулевой ID означает
// "первая сетка с таким именем" и годится, пока имя в дереве одно.
func (s *Session) Hover(owner types.PartID, gridName, template string, x, y int) HoverResult {
	grid := s.findGrid(owner, gridName)
	if grid == nil {
		return HoverResult{Reason: fmt.Sprintf("no grid %q", gridName)}
	}
	data, err := s.factory.ArmorData(template)
	if err != nil {
		return HoverResult{Reason: err.Error()}
	}

	res := HoverResult{
		Rotation:  s.rotation,
		Rotations: domain.GetValidRotations(data.Tail, grid.Info),
	}
	if !s.inventory.HasItem(template) {
		res.Reason = "out of stock"
		return res
	}
	if !grid.CanPlace(data, x, y, s.rotation) {
		res.Reason = "cell rejected"
		return res
	}
	res.CanPlace = true
	return res
}

// PlaceArmor устанавливает броневую деталь и списывает единицу со склада.
// Все проверки выполняются до коммита: отказ оставляет состояние нетронутым.
// Сетка адресуется владельцем и именем (см. Hover).
func (s *Session) PlaceArmor(owner types.PartID, gridName, template string, x, y int, r domain.Rotation) error {
	if !s.active {
		return ErrSessionClosed
	}
	if s.mode != enums.EditModeArmor {
		return ErrWrongMode
	}
	grid := s.findGrid(owner, gridName)
	if grid == nil {
		return fmt.Errorf("%w: grid %q of part %v", ErrNotFound, gridName, owner)
	}
	if !s.inventory.HasItem(template) {
		return fmt.Errorf("%w: %q", ErrOutOfStock, template)
	}
	armor, err := s.factory.CreateArmor(template)
	if err != nil {
		return err
	}
	if !grid.TryPlace(armor, x, y, r) {
		return fmt.Errorf("%w: %q at (%d,%d) rot %v", ErrRejected, template, x, y, r)
	}
	s.inventory.RemoveItem(template, 1)
	return nil
}

// RemoveArmor снимает деталь с сетки и возвращает ее на склад.
// При cascade=true вложенные детали снимаются рекурсивно и тоже
// возвращаются; иначе снятие с зависимыми отклоняется.
func (s *Session) RemoveArmor(partID types.PartID, cascade bool) error {
	if !s.active {
		return ErrSessionClosed
	}
	if s.mode != enums.EditModeArmor {
		return ErrWrongMode
	}
	grid, part := findArmor(s.robot, partID)
	if part == nil {
		return fmt.Errorf("%w: armor %v", ErrNotFound, partID)
	}
	if !cascade && part.HasDependents() {
		return fmt.Errorf("%w: armor %v", ErrHasDependents, partID)
	}

	// Запоминаем возврат до снятия: после Remove поддерево уже разобрано.
	credited := make(map[string]int)
	collectArmorTemplates(part, credited)

	if !grid.Remove(part, cascade) {
		return fmt.Errorf("%w: armor %v", ErrRejected, partID)
	}
	for template, n := range credited {
		s.inventory.AddItem(template, n)
	}
	return nil
}

// AttachPart устанавливает структурную часть в сокет родителя.
func (s *Session) AttachPart(parentID types.PartID, socketType enums.SocketType, template string) error {
	if !s.active {
		return ErrSessionClosed
	}
	if s.mode != enums.EditModeStructural {
		return ErrWrongMode
	}
	parent := findStructural(s.robot, parentID)
	if parent == nil {
		return fmt.Errorf("%w: part %v", ErrNotFound, parentID)
	}
	socket := openSocketOfType(parent, socketType)
	if socket == nil {
		return fmt.Errorf("%w: open socket %v on part %v", ErrNotFound, socketType, parentID)
	}
	if !s.inventory.HasItem(template) {
		return fmt.Errorf("%w: %q", ErrOutOfStock, template)
	}
	part, err := s.factory.CreateStructural(template)
	if err != nil {
		return err
	}
	if !socket.TryAttach(part) {
		return fmt.Errorf("%w: %q into socket %v", ErrRejected, template, socketType)
	}
	s.inventory.RemoveItem(template, 1)
	return nil
}

// DetachPart снимает структурную часть. Отказ, если дочерние сокеты
// части еще заняты: поддерево разбирается от листьев.
// Часть и вся броня на ней возвращаются на склад.
func (s *Session) DetachPart(partID types.PartID) error {
	if !s.active {
		return ErrSessionClosed
	}
	if s.mode != enums.EditModeStructural {
		return ErrWrongMode
	}
	part := findStructural(s.robot, partID)
	if part == nil {
		return fmt.Errorf("%w: part %v", ErrNotFound, partID)
	}
	socket := part.ParentSocket()
	if socket == nil {
		return fmt.Errorf("%w: root part %v", ErrRejected, partID)
	}
	if part.HasOccupiedSockets() {
		return fmt.Errorf("%w: part %v", ErrHasDependents, partID)
	}

	credited := map[string]int{part.Data.Name: 1}
	for _, g := range part.Grids {
		for _, armor := range g.Placements() {
			collectArmorTemplates(armor, credited)
		}
	}

	if socket.Detach() == nil {
		return fmt.Errorf("%w: part %v", ErrRejected, partID)
	}
	for template, n := range credited {
		s.inventory.AddItem(template, n)
	}
	return nil
}

// Close завершает сессию: валидация и, при нарушениях, откат к снапшоту.
//
// При откате на склад возвращаются только детали, добавленные за сессию
// (есть в текущем дереве, нет в снапшоте). Детали, снятые за сессию,
// уже получили возврат в момент снятия и при откате не трогаются.
func (s *Session) Close() CloseReport {
	if !s.active {
		return CloseReport{Valid: true}
	}
	s.active = false

	// Shell без снапшота: бросать недособранным законно
	if s.snapshot == nil {
		return CloseReport{Valid: true}
	}

	problems := ValidateRobot(s.robot)
	if len(problems) == 0 {
		s.snapshot = nil
		return CloseReport{Valid: true}
	}

	current := domain.CaptureSnapshot(s.robot)
	report := CloseReport{Problems: problems}

	root, err := s.factory.RestoreStructure(s.snapshot)
	if err != nil {
		// Откат повторяет ранее валидное состояние и не должен падать.
		// Если все же упал - дерево не тронуто, Restored не выставляем.
		report.Problems = append(report.Problems, err)
		return report
	}
	s.robot.ReplaceHips(root)
	report.Restored = true

	added, _ := domain.DiffCounts(s.snapshot, current)
	for template, n := range added {
		s.inventory.AddItem(template, n)
	}
	report.Credited = added
	s.snapshot = nil
	return report
}

// Abort закрывает сессию с безусловным откатом (если есть снапшот).
func (s *Session) Abort() CloseReport {
	if !s.active {
		return CloseReport{Valid: true}
	}
	if s.snapshot == nil {
		s.active = false
		return CloseReport{Valid: true}
	}
	// Принудительно невалидный путь: восстановить и посчитать дельту
	s.active = false
	current := domain.CaptureSnapshot(s.robot)
	report := CloseReport{}

	root, err := s.factory.RestoreStructure(s.snapshot)
	if err != nil {
		report.Problems = append(report.Problems, err)
		return report
	}
	s.robot.ReplaceHips(root)
	report.Restored = true

	added, _ := domain.DiffCounts(s.snapshot, current)
	for template, n := range added {
		s.inventory.AddItem(template, n)
	}
	report.Credited = added
	s.snapshot = nil
	return report
}

// findGrid резолвит адрес сетки. Нулевой owner - поиск только по имени.
func (s *Session) findGrid(owner types.PartID, name string) *domain.GridHead {
	if owner == 0 {
		return s.robot.FindGrid(name)
	}
	return s.robot.FindGridOwned(owner, name)
}

// --- ПОИСК ПО ДЕРЕВУ ---

func findStructural(r *domain.Robot, id types.PartID) *domain.StructuralPart {
	var found *domain.StructuralPart
	r.ForEachPart(func(p *domain.StructuralPart) bool {
		if p.ID == id {
			found = p
			return false
		}
		return true
	})
	return found
}

// findArmor ищет броневую деталь по всем сеткам робота, включая
// вложенные сетки установленной брони.
func findArmor(r *domain.Robot, id types.PartID) (*domain.GridHead, *domain.ArmorPart) {
	for _, g := range r.AllGrids() {
		for _, part := range g.Placements() {
			if part.ID == id {
				return g, part
			}
		}
	}
	return nil, nil
}

func openSocketOfType(p *domain.StructuralPart, t enums.SocketType) *domain.Socket {
	for _, s := range p.Sockets {
		if s.Type == t && !s.IsOccupied() {
			return s
		}
	}
	return nil
}

// collectArmorTemplates считает деталь и все детали на ее вложенных
// сетках рекурсивно.
func collectArmorTemplates(part *domain.ArmorPart, counts map[string]int) {
	counts[part.Data.Name]++
	for _, g := range part.AdditionalGrids {
		for _, nested := range g.Placements() {
			collectArmorTemplates(nested, counts)
		}
	}
}
