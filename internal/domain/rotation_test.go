package domain

import "testing"

func TestRotationCycle(t *testing.T) {
	// Четыре поворота по часовой возвращают исходное значение
	for _, start := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
		r := start
		for i := 0; i < 4; i++ {
			r = r.Clockwise()
		}
		if r != start {
			t.Errorf("Clockwise x4 from %v: got %v", start, r)
		}
	}

	// CW и CCW взаимно обратны
	for _, start := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
		if got := start.Clockwise().CounterClockwise(); got != start {
			t.Errorf("CW then CCW from %v: got %v", start, got)
		}
	}
}

func TestRotateSize(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		r     Rotation
		wantX int
		wantY int
	}{
		{"identity at 0", 4, 7, Rot0, 4, 7},
		{"swap at 90", 4, 7, Rot90, 7, 4},
		{"identity at 180", 4, 7, Rot180, 4, 7},
		{"swap at 270", 4, 7, Rot270, 7, 4},
		{"square unchanged", 3, 3, Rot90, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := RotateSize(tt.x, tt.y, tt.r)
			if gotX != tt.wantX || gotY != tt.wantY {
				t.Errorf("RotateSize(%d,%d,%v) = (%d,%d), want (%d,%d)",
					tt.x, tt.y, tt.r, gotX, gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRotateEdges(t *testing.T) {
	// LRTB - неподвижная точка для любого поворота
	for _, r := range []Rotation{Rot0, Rot90, Rot180, Rot270} {
		if got := RotateEdges(EdgesAll, r); got != EdgesAll {
			t.Errorf("RotateEdges(LRTB, %v) = %v, want LRTB", r, got)
		}
	}

	// Один шаг по часовой: L→T→R→B→L
	if got := RotateEdges(EdgeLeft, Rot90); got != EdgeTop {
		t.Errorf("L rotated 90 = %v, want T", got)
	}
	if got := RotateEdges(EdgeTop, Rot90); got != EdgeRight {
		t.Errorf("T rotated 90 = %v, want R", got)
	}
	if got := RotateEdges(EdgeRight, Rot90); got != EdgeBottom {
		t.Errorf("R rotated 90 = %v, want B", got)
	}
	if got := RotateEdges(EdgeBottom, Rot90); got != EdgeLeft {
		t.Errorf("B rotated 90 = %v, want L", got)
	}

	// Полный круг возвращает исходные флаги
	combo := EdgeLeft | EdgeBottom
	r := combo
	for i := 0; i < 4; i++ {
		r = RotateEdges(r, Rot90)
	}
	if r != combo {
		t.Errorf("full rotation of LB = %v, want LB", r)
	}

	// 180 = двойное зеркало
	if got := RotateEdges(EdgeLeft|EdgeTop, Rot180); got != EdgeRight|EdgeBottom {
		t.Errorf("LT rotated 180 = %v, want RB", got)
	}
}

func TestRotateFullType(t *testing.T) {
	tests := []struct {
		name string
		ft   FullWrapType
		r    Rotation
		want FullWrapType
	}{
		{"none fixed at 90", FullNone, Rot90, FullNone},
		{"none fixed at 180", FullNone, Rot180, FullNone},
		{"FH swaps at 90", FullHorizontal, Rot90, FullVertical},
		{"FV swaps at 270", FullVertical, Rot270, FullHorizontal},
		{"FH fixed at 0", FullHorizontal, Rot0, FullHorizontal},
		{"FH fixed at 180", FullHorizontal, Rot180, FullHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateFullType(tt.ft, tt.r); got != tt.want {
				t.Errorf("RotateFullType(%v,%v) = %v, want %v", tt.ft, tt.r, got, tt.want)
			}
		})
	}
}

func TestGetValidRotations(t *testing.T) {
	head := GridInfo{
		IsHead: true,
		Tier:   1,
		SizeX:  4,
		SizeY:  2,
		Surrounding: SurroundingLevel{
			Level: 3,
			Edges: EdgesAll,
		},
	}

	// Деталь 2x1 помещается в 4x2 в любой ориентации
	tail := GridInfo{
		Tier:  1,
		SizeX: 2,
		SizeY: 1,
		Surrounding: SurroundingLevel{
			Level: 0,
		},
	}
	valid := GetValidRotations(tail, head)
	if len(valid) != 4 {
		t.Errorf("2x1 on 4x2: expected 4 valid rotations, got %v", valid)
	}

	// Деталь 3x1 помещается только горизонтально (0° и 180°)
	tail.SizeX = 3
	valid = GetValidRotations(tail, head)
	if len(valid) != 2 {
		t.Fatalf("3x1 on 4x2: expected 2 valid rotations, got %v", valid)
	}
	if valid[0] != Rot0 || valid[1] != Rot180 {
		t.Errorf("3x1 on 4x2: expected [0,180], got %v", valid)
	}

	// Деталь 5x1 не встает вообще - пустой результат
	tail.SizeX = 5
	if valid = GetValidRotations(tail, head); len(valid) != 0 {
		t.Errorf("5x1 on 4x2: expected no valid rotations, got %v", valid)
	}

	// Слишком закрытая деталь отвергается окружением во всех ориентациях
	tail.SizeX = 2
	tail.Surrounding.Level = 5
	if valid = GetValidRotations(tail, head); len(valid) != 0 {
		t.Errorf("level 5 tail on level 3 head: expected no rotations, got %v", valid)
	}
}
