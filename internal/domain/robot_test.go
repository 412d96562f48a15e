package domain

import (
	"testing"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
)

// buildTestRobot собирает дерево Hips → (Torso → ArmLeft, LegLeft).
func buildTestRobot(t *testing.T) (*Robot, map[string]*StructuralPart) {
	t.Helper()

	hips := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData(
		"Hips", enums.SocketHips,
		SocketSlot{Type: enums.SocketTorso},
		SocketSlot{Type: enums.SocketLegLeft},
	))
	torso := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData(
		"Torso", enums.SocketTorso,
		SocketSlot{Type: enums.SocketArmLeft},
	))
	arm := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData("ArmL", enums.SocketArmLeft))
	leg := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData("LegL", enums.SocketLegLeft))

	r := NewRobot("TestBot", 1)
	if !r.AttachHips(hips) {
		t.Fatal("AttachHips failed")
	}
	if !hips.Socket(enums.SocketTorso).TryAttach(torso) {
		t.Fatal("attach torso failed")
	}
	if !torso.Socket(enums.SocketArmLeft).TryAttach(arm) {
		t.Fatal("attach arm failed")
	}
	if !hips.Socket(enums.SocketLegLeft).TryAttach(leg) {
		t.Fatal("attach leg failed")
	}

	return r, map[string]*StructuralPart{"hips": hips, "torso": torso, "arm": arm, "leg": leg}
}

func TestAttachHips(t *testing.T) {
	r := NewRobot("Bot", 1)

	// Часть без RootCapable не годится в корень
	torso := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData("Torso", enums.SocketTorso))
	if r.AttachHips(torso) {
		t.Error("non-root-capable part must not become hips")
	}

	hips := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData("Hips", enums.SocketHips))
	if !r.AttachHips(hips) {
		t.Fatal("AttachHips failed")
	}

	// Повторное назначение - отказ
	hips2 := NewStructuralPart(testID(enums.PartKindStructural), testStructuralData("Hips2", enums.SocketHips))
	if r.AttachHips(hips2) {
		t.Error("second AttachHips must fail")
	}
	if r.Hips() != hips {
		t.Error("hips changed by rejected assignment")
	}
}

func TestTraversalOrder(t *testing.T) {
	r, _ := buildTestRobot(t)

	// Корень первым, затем в глубину: Hips, Torso, ArmL, LegL
	want := []string{"Hips", "Torso", "ArmL", "LegL"}
	var got []string
	r.ForEachPart(func(p *StructuralPart) bool {
		got = append(got, p.Data.Name)
		return true
	})

	if len(got) != len(want) {
		t.Fatalf("traversal visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal order %v, want %v", got, want)
		}
	}

	// Обход перезапускаемый: повторный проход дает тот же результат
	var second []string
	r.ForEachPart(func(p *StructuralPart) bool {
		second = append(second, p.Data.Name)
		return true
	})
	if len(second) != len(want) {
		t.Error("traversal is not restartable")
	}

	// Ранний выход
	var visited int
	r.ForEachPart(func(p *StructuralPart) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("early stop visited %d parts, want 2", visited)
	}
}

func TestOpenSockets(t *testing.T) {
	r, parts := buildTestRobot(t)

	// Все сокеты заняты, кроме ArmLeft на... все заняты в этом дереве.
	if open := r.OpenSockets(); len(open) != 0 {
		t.Errorf("expected no open sockets, got %d", len(open))
	}

	// После отсоединения руки открывается ровно один сокет
	parts["torso"].Socket(enums.SocketArmLeft).Detach()
	open := r.OpenSockets()
	if len(open) != 1 || open[0].Type != enums.SocketArmLeft {
		t.Errorf("expected single open ARM_LEFT socket, got %v", open)
	}
}

func TestCoreTransplant(t *testing.T) {
	alpha, _ := buildTestRobot(t)
	alpha.Name = "Alpha"
	beta, _ := buildTestRobot(t)
	beta.Name = "Beta"

	core := NewCoreUnit(testID(enums.PartKindCore), 2)

	// Свежий робот - оболочка
	if !alpha.IsShell() {
		t.Error("robot without core must be a shell")
	}

	if !core.InsertInto(alpha) {
		t.Fatal("insert into empty robot failed")
	}
	if alpha.IsShell() || alpha.Core() != core || core.Owner() != alpha {
		t.Error("core linkage broken after insert")
	}

	// Второе ядро в занятого робота - отказ
	core2 := NewCoreUnit(testID(enums.PartKindCore), 2)
	if core2.InsertInto(alpha) {
		t.Error("second core must not insert")
	}

	// Вставка без экстракции - отказ
	if core.InsertInto(beta) {
		t.Error("inserting an owned core must fail")
	}

	// Экстракция возвращает освобожденного робота
	vacated := core.Extract()
	if vacated != alpha {
		t.Fatalf("Extract returned %v, want alpha", vacated)
	}
	if !alpha.IsShell() || core.Owner() != nil {
		t.Error("extract did not clear linkage")
	}

	// Теперь пересадка в beta проходит
	if !core.InsertInto(beta) {
		t.Fatal("transplant after extract failed")
	}

	// Ядро тира 2 не управляет роботом тира 3
	gamma := NewRobot("Gamma", 3)
	core.Extract()
	if core.InsertInto(gamma) {
		t.Error("tier 2 core must not insert into tier 3 robot")
	}
}
