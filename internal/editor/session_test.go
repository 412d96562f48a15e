package editor

import (
	"errors"
	"testing"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/blueprint"
)

// testRig - робот с ядром, склад и фабрика для одной сессии.
type testRig struct {
	factory   *blueprint.Factory
	robot     *domain.Robot
	inventory *domain.Inventory
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	f := blueprint.NewFactory(1)
	robot, errs := blueprint.NewRobot("EditTarget", 1, f).
		WithHips("RaptorHips").
		Attach(enums.SocketTorso, "RaptorTorso").
		Attach(enums.SocketHead, "RaptorHead").
		Attach(enums.SocketLegLeft, "RaptorLegL").
		Attach(enums.SocketLegRight, "RaptorLegR").
		WithCore(1).
		Build()
	for _, err := range errs {
		t.Fatalf("rig: %v", err)
	}

	inv := domain.NewInventory()
	inv.AddItem("PlateSmall", 5)
	inv.AddItem("PlateLong", 5)
	inv.AddItem("PlateStacked", 2)
	inv.AddItem("RaptorArmL", 1)
	inv.AddItem("RaptorTailBlade", 1)

	return &testRig{factory: f, robot: robot, inventory: inv}
}

func (r *testRig) open() *Session {
	return NewSession(r.robot, r.inventory, r.factory)
}

func TestSessionCapturesSnapshotForOwnedRobot(t *testing.T) {
	// Test 1: роботу с ядром снимается снапшот, пустому shell - нет
	rig := newTestRig(t)
	s := rig.open()
	if s.snapshot == nil {
		t.Error("session on owned robot must capture a snapshot")
	}

	shell := domain.NewRobot("Shell", 1)
	hips, _ := rig.factory.CreateStructural("RaptorHips")
	shell.AttachHips(hips)
	s2 := NewSession(shell, rig.inventory, rig.factory)
	if s2.snapshot != nil {
		t.Error("session on shell must not capture a snapshot")
	}
}

func TestPlaceArmorDebitsInventory(t *testing.T) {
	// Test 2: установка списывает единицу, отказ не списывает
	rig := newTestRig(t)
	s := rig.open()

	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("PlaceArmor: %v", err)
	}
	if got := rig.inventory.Count("PlateSmall"); got != 4 {
		t.Errorf("inventory after place = %d, want 4", got)
	}

	// Та же клетка занята: отказ без списания
	err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0)
	if !errors.Is(err, ErrRejected) {
		t.Errorf("overlap error = %v, want ErrRejected", err)
	}
	if got := rig.inventory.Count("PlateSmall"); got != 4 {
		t.Errorf("inventory after rejected place = %d, want 4", got)
	}
}

func TestPlaceArmorOutOfStock(t *testing.T) {
	rig := newTestRig(t)
	rig.inventory.RemoveItem("PlateSmall", 5)
	s := rig.open()

	err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0)
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("error = %v, want ErrOutOfStock", err)
	}
}

func TestRemoveArmorCreditsInventory(t *testing.T) {
	// Test 3: каскадное снятие возвращает и носитель, и вложенный слой
	rig := newTestRig(t)
	s := rig.open()

	if err := s.PlaceArmor(0, "RaptorChest", "PlateStacked", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place stacked: %v", err)
	}
	stacked := rig.robot.FindGrid("RaptorChest").PartAt(0, 0)
	if err := s.PlaceArmor(0, "PlateStackedTop", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place nested: %v", err)
	}

	// Без каскада снятие носителя с зависимыми отклоняется
	if err := s.RemoveArmor(stacked.ID, false); !errors.Is(err, ErrHasDependents) {
		t.Errorf("remove with dependents = %v, want ErrHasDependents", err)
	}

	if err := s.RemoveArmor(stacked.ID, true); err != nil {
		t.Fatalf("cascade remove: %v", err)
	}
	if got := rig.inventory.Count("PlateStacked"); got != 2 {
		t.Errorf("PlateStacked count = %d, want 2", got)
	}
	if got := rig.inventory.Count("PlateSmall"); got != 5 {
		t.Errorf("PlateSmall count = %d, want 5", got)
	}
}

func TestModeGatingPreservesSelection(t *testing.T) {
	// Test 4: операции привязаны к режиму, выбор переживает переключение
	rig := newTestRig(t)
	s := rig.open()
	s.Select("PlateSmall")
	s.RotateCW()

	s.SetMode(enums.EditModeStructural)
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); !errors.Is(err, ErrWrongMode) {
		t.Errorf("armor op in structural mode = %v, want ErrWrongMode", err)
	}
	if s.Selected() != "PlateSmall" {
		t.Errorf("selection lost on mode toggle: %q", s.Selected())
	}
	if s.Rotation() != domain.Rot90 {
		t.Errorf("rotation lost on mode toggle: %v", s.Rotation())
	}

	s.SetMode(enums.EditModeArmor)
	if err := s.AttachPart(rig.robot.Hips().ID, enums.SocketTail, "RaptorTailBlade"); !errors.Is(err, ErrWrongMode) {
		t.Errorf("structural op in armor mode = %v, want ErrWrongMode", err)
	}
}

func TestAttachDetachStructural(t *testing.T) {
	// Test 5: установка/снятие структурных частей со складским учетом
	rig := newTestRig(t)
	s := rig.open()
	s.SetMode(enums.EditModeStructural)

	torso := rig.robot.Hips().Socket(enums.SocketTorso).AttachedPart()
	if err := s.AttachPart(torso.ID, enums.SocketArmLeft, "RaptorArmL"); err != nil {
		t.Fatalf("AttachPart: %v", err)
	}
	if rig.inventory.Count("RaptorArmL") != 0 {
		t.Error("attach must debit inventory")
	}

	arm := torso.Socket(enums.SocketArmLeft).AttachedPart()
	if err := s.DetachPart(arm.ID); err != nil {
		t.Fatalf("DetachPart: %v", err)
	}
	if rig.inventory.Count("RaptorArmL") != 1 {
		t.Error("detach must credit inventory")
	}

	// Торс с занятыми сокетами не снимается
	if err := s.DetachPart(torso.ID); !errors.Is(err, ErrHasDependents) {
		t.Errorf("detach with children = %v, want ErrHasDependents", err)
	}
}

func TestHoverPreview(t *testing.T) {
	// Test 6: предпросмотр ничего не мутирует
	rig := newTestRig(t)
	s := rig.open()

	res := s.Hover(0, "RaptorChest", "PlateLong", 0, 0)
	if !res.CanPlace {
		t.Errorf("hover on empty grid: CanPlace=false, reason %q", res.Reason)
	}
	if len(res.Rotations) == 0 {
		t.Error("hover must enumerate valid rotations")
	}
	if !rig.robot.FindGrid("RaptorChest").IsEmpty() {
		t.Error("hover must not mutate the grid")
	}

	res = s.Hover(0, "RaptorChest", "PlateLong", 3, 3)
	if res.CanPlace {
		t.Error("hover off the footprint edge must reject")
	}
}

func TestCloseValidKeepsEdits(t *testing.T) {
	// Test 7: валидный выход сохраняет правки и снапшот не трогает дерево
	rig := newTestRig(t)
	s := rig.open()
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 1, 1, domain.Rot0); err != nil {
		t.Fatalf("PlaceArmor: %v", err)
	}

	report := s.Close()
	if !report.Valid || report.Restored {
		t.Fatalf("close = %+v, want valid and not restored", report)
	}
	if rig.robot.FindGrid("RaptorChest").PartAt(1, 1) == nil {
		t.Error("valid close must keep edits")
	}
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("op after close = %v, want ErrSessionClosed", err)
	}
}

func TestCloseInvalidRestoresAndCreditsNetAdded(t *testing.T) {
	// Test 8: невалидный выход - точный откат, возврат только
	// добавленных за сессию деталей
	rig := newTestRig(t)

	// Исходная броня до сессии
	pre, err := rig.factory.CreateArmor("PlateLong")
	if err != nil {
		t.Fatalf("CreateArmor: %v", err)
	}
	if !rig.robot.FindGrid("RaptorBack").TryPlace(pre, 0, 0, domain.Rot0) {
		t.Fatal("cannot place pre-session armor")
	}

	s := rig.open()
	before := domain.CaptureSnapshot(rig.robot)

	// За сессию: добавили две пластины, сняли исходную
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 1, 0, domain.Rot0); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := s.RemoveArmor(pre.ID, false); err != nil {
		t.Fatalf("remove: %v", err)
	}
	creditedAtRemove := rig.inventory.Count("PlateLong") // 6: возврат при снятии

	// Ломаем тировое условие ядра перед выходом
	rig.robot.Tier = 9

	report := s.Close()
	if report.Valid || !report.Restored {
		t.Fatalf("close = %+v, want invalid and restored", report)
	}

	after := domain.CaptureSnapshot(rig.robot)
	after.Tier = before.Tier // тир робота не входит в структурный откат
	if !before.Equal(after) {
		t.Error("restore must reproduce the pre-session tree exactly")
	}

	// Возврат только добавленного: две PlateSmall
	if got := report.Credited["PlateSmall"]; got != 2 {
		t.Errorf("credited PlateSmall = %d, want 2", got)
	}
	if got := rig.inventory.Count("PlateSmall"); got != 5 {
		t.Errorf("PlateSmall count = %d, want 5", got)
	}
	// Снятая за сессию деталь кредит не удваивает
	if got := rig.inventory.Count("PlateLong"); got != creditedAtRemove {
		t.Errorf("PlateLong count = %d, want %d", got, creditedAtRemove)
	}
}

func TestAbortRollsBack(t *testing.T) {
	// Test 9: Abort откатывает даже валидные правки
	rig := newTestRig(t)
	s := rig.open()
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place: %v", err)
	}

	report := s.Abort()
	if !report.Restored {
		t.Fatalf("abort report = %+v, want restored", report)
	}
	if !rig.robot.FindGrid("RaptorChest").IsEmpty() {
		t.Error("abort must roll the grid back")
	}
	if got := rig.inventory.Count("PlateSmall"); got != 5 {
		t.Errorf("PlateSmall count = %d, want 5", got)
	}
}

func TestPlaceOnDuplicateNestedGrids(t *testing.T) {
	// Test 10: две детали одного шаблона несут одноименные вложенные
	// сетки - адресация владельцем различает их
	rig := newTestRig(t)
	rig.inventory.AddItem("PlateStacked", 1) // итого 3 на складе
	s := rig.open()

	if err := s.PlaceArmor(0, "RaptorChest", "PlateStacked", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place first PlateStacked: %v", err)
	}
	if err := s.PlaceArmor(0, "RaptorChest", "PlateStacked", 0, 1, domain.Rot0); err != nil {
		t.Fatalf("place second PlateStacked: %v", err)
	}

	chest := rig.robot.FindGrid("RaptorChest")
	first := chest.Placements()[0]
	second := chest.Placements()[1]

	// Верхняя сетка первой детали занята полностью (1x1)
	if err := s.PlaceArmor(first.ID, "PlateStackedTop", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place on first top grid: %v", err)
	}

	// Адресация только по имени упирается в первую (занятую) сетку
	if err := s.PlaceArmor(0, "PlateStackedTop", "PlateSmall", 0, 0, domain.Rot0); err == nil {
		t.Fatal("name-only address must resolve to the occupied first grid")
	}

	// Владелец + имя достают вторую сетку
	if err := s.PlaceArmor(second.ID, "PlateStackedTop", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place on second top grid: %v", err)
	}
	if second.Grid("PlateStackedTop").IsEmpty() {
		t.Error("second nested grid must hold the placed part")
	}

	// Hover различает сетки так же, как установка
	if res := s.Hover(first.ID, "PlateStackedTop", "PlateSmall", 0, 0); res.CanPlace {
		t.Error("hover on occupied first grid must reject")
	}
}

func TestCloseReportsRestoreFailure(t *testing.T) {
	// Test 11: если откат не удался, Restored не выставляется
	// и дерево остается как есть
	rig := newTestRig(t)
	s := rig.open()
	if err := s.PlaceArmor(0, "RaptorChest", "PlateSmall", 0, 0, domain.Rot0); err != nil {
		t.Fatalf("place: %v", err)
	}

	// Ломаем и валидацию (нарушение правила ядра), и сам откат
	rig.robot.Tier = 9
	s.snapshot.Root.Template = "NoSuchPart"

	report := s.Close()
	if report.Valid {
		t.Fatal("close must fail validation")
	}
	if report.Restored {
		t.Error("failed restore must not be reported as a rollback")
	}
	if len(report.Problems) == 0 {
		t.Error("restore error must land in Problems")
	}
	// Текущее дерево не тронуто: установленная деталь на месте
	if rig.robot.FindGrid("RaptorChest").IsEmpty() {
		t.Error("tree must stay untouched when restore fails")
	}
	if got := rig.inventory.Count("PlateSmall"); got != 4 {
		t.Errorf("no crediting on failed restore: PlateSmall = %d, want 4", got)
	}
}
