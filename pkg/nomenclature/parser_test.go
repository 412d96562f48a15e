package nomenclature

import (
	"errors"
	"testing"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

func TestParse_FullFormat(t *testing.T) {
	// Test 1: полный формат со всеми сегментами
	info, err := Parse("Head_T2_4x7_S5FH_RaptorThighR")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !info.IsHead {
		t.Error("IsHead = false, want true")
	}
	if info.Tier != 2 {
		t.Errorf("Tier = %d, want 2", info.Tier)
	}
	if info.SizeX != 4 || info.SizeY != 7 {
		t.Errorf("Size = %dx%d, want 4x7", info.SizeX, info.SizeY)
	}
	if info.Surrounding.Level != 5 {
		t.Errorf("Surrounding.Level = %d, want 5", info.Surrounding.Level)
	}
	if info.Surrounding.FullType != domain.FullHorizontal {
		t.Errorf("Surrounding.FullType = %v, want FullHorizontal", info.Surrounding.FullType)
	}
	if info.GridName != "RaptorThighR" {
		t.Errorf("GridName = %q, want RaptorThighR", info.GridName)
	}
}

func TestParse_LegacyFormat(t *testing.T) {
	// Test 2: legacy-формат без тира подразумевает тир 1
	info, err := Parse("Tail_2x1_SN_PlateSmall")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if info.IsHead {
		t.Error("IsHead = true, want false")
	}
	if info.Tier != 1 {
		t.Errorf("Tier = %d, want 1 (legacy default)", info.Tier)
	}
	if info.Surrounding.Level != 0 {
		t.Errorf("Surrounding.Level = %d, want 0 for SN", info.Surrounding.Level)
	}
	if info.GridName != "PlateSmall" {
		t.Errorf("GridName = %q, want PlateSmall", info.GridName)
	}
}

func TestParse_Edges(t *testing.T) {
	// Test 3: сегмент краев между окружением и именем
	info, err := Parse("Head_3x3_S2_LR_ScarabBack")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := domain.EdgeLeft | domain.EdgeRight
	if info.Surrounding.Edges != want {
		t.Errorf("Edges = %v, want LR", info.Surrounding.Edges)
	}
	if info.GridName != "ScarabBack" {
		t.Errorf("GridName = %q, want ScarabBack", info.GridName)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	// Test 4: служебные сегменты нечувствительны к регистру,
	// имя сетки сохраняет регистр
	info, err := Parse("head_t3_2X2_s1fv_MixedCase")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !info.IsHead || info.Tier != 3 {
		t.Errorf("got IsHead=%v Tier=%d, want true/3", info.IsHead, info.Tier)
	}
	if info.Surrounding.FullType != domain.FullVertical {
		t.Errorf("FullType = %v, want FullVertical", info.Surrounding.FullType)
	}
	if info.GridName != "MixedCase" {
		t.Errorf("GridName = %q, want MixedCase", info.GridName)
	}
}

func TestParse_NameWithUnderscores(t *testing.T) {
	// Test 5: все хвостовые сегменты после окружения склеиваются в имя
	info, err := Parse("Tail_1x1_SN_Plate_Mk_II")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if info.GridName != "Plate_Mk_II" {
		t.Errorf("GridName = %q, want Plate_Mk_II", info.GridName)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"too few segments", "Head_1x1_SN", ErrBadFormat},
		{"bad role", "Body_1x1_SN_X", ErrBadFormat},
		{"bad size", "Head_1z1_SN_X", ErrBadFormat},
		{"zero size", "Head_0x2_SN_X", ErrOutOfRange},
		{"zero tier", "Head_T0_1x1_SN_X", ErrOutOfRange},
		{"bad surrounding", "Head_1x1_Q5_X", ErrBadFormat},
		{"empty string", "", ErrBadFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tc.input)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tc.input, err, tc.want)
			}
		})
	}
}

func TestTryParse(t *testing.T) {
	// Test 6: TryParse не возвращает частичный результат при сбое
	if info, ok := TryParse("garbage"); ok || info != (domain.GridInfo{}) {
		t.Errorf("TryParse(garbage) = %+v, %v; want zero, false", info, ok)
	}
	if _, ok := TryParse("Head_T1_2x2_S1_Ok"); !ok {
		t.Error("TryParse on valid name failed")
	}
}
