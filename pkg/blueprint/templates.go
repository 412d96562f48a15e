package blueprint

import (
	"fmt"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/nomenclature"
)

// StructuralTemplate определяет шаблон для создания структурной части.
// Сетки задаются строками номенклатуры и разворачиваются фабрикой.
type StructuralTemplate struct {
	Name        string
	Tier        int
	Socket      enums.SocketType
	RootCapable bool
	SocketSlots []domain.SocketSlot
	Grids       []string
}

// Data разворачивает шаблон в неизменяемые данные части.
func (t StructuralTemplate) Data() (*domain.StructuralPartData, error) {
	data := &domain.StructuralPartData{
		Name:        t.Name,
		Tier:        t.Tier,
		Socket:      t.Socket,
		RootCapable: t.RootCapable,
		SocketSlots: t.SocketSlots,
	}
	for _, raw := range t.Grids {
		info, err := nomenclature.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		if !info.IsHead {
			return nil, fmt.Errorf("template %q: grid %q is not a head grid", t.Name, raw)
		}
		data.Grids = append(data.Grids, info)
	}
	return data, nil
}

// ArmorTemplate определяет шаблон для создания броневой детали.
// Tail - собственный footprint детали, AdditionalGrids - head-сетки,
// которые деталь экспонирует после установки.
type ArmorTemplate struct {
	Name            string
	Tier            int
	Tail            string
	AdditionalGrids []string
}

// Data разворачивает шаблон в неизменяемые данные детали.
func (t ArmorTemplate) Data() (*domain.ArmorPartData, error) {
	tail, err := nomenclature.Parse(t.Tail)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", t.Name, err)
	}
	if tail.IsHead {
		return nil, fmt.Errorf("template %q: tail grid %q must not be a head grid", t.Name, t.Tail)
	}
	data := &domain.ArmorPartData{
		Name: t.Name,
		Tier: t.Tier,
		Tail: tail,
	}
	for _, raw := range t.AdditionalGrids {
		info, err := nomenclature.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t.Name, err)
		}
		if !info.IsHead {
			return nil, fmt.Errorf("template %q: additional grid %q is not a head grid", t.Name, raw)
		}
		data.AdditionalGrids = append(data.AdditionalGrids, info)
	}
	return data, nil
}

// --- СТРУКТУРНЫЕ ЧАСТИ: ЛИНЕЙКА RAPTOR ---

var RaptorHips = StructuralTemplate{
	Name:        "RaptorHips",
	Tier:        1,
	RootCapable: true,
	SocketSlots: []domain.SocketSlot{
		{Type: enums.SocketTorso},
		{Type: enums.SocketLegLeft},
		{Type: enums.SocketLegRight},
		{Type: enums.SocketTail},
	},
	Grids: []string{
		"Head_T1_3x2_S1_RaptorPelvis",
	},
}

var RaptorTorso = StructuralTemplate{
	Name:   "RaptorTorso",
	Tier:   1,
	Socket: enums.SocketTorso,
	SocketSlots: []domain.SocketSlot{
		{Type: enums.SocketHead},
		{Type: enums.SocketArmLeft},
		{Type: enums.SocketArmRight},
	},
	Grids: []string{
		"Head_T1_4x4_S2_RaptorChest",
		"Head_T1_4x3_S1_LR_RaptorBack",
	},
}

var RaptorHead = StructuralTemplate{
	Name:   "RaptorHead",
	Tier:   1,
	Socket: enums.SocketHead,
	Grids: []string{
		"Head_T1_2x2_S3_RaptorSkull",
	},
}

var RaptorArmL = StructuralTemplate{
	Name:   "RaptorArmL",
	Tier:   1,
	Socket: enums.SocketArmLeft,
	Grids: []string{
		"Head_T1_2x4_S2FH_RaptorUpperArmL",
		"Head_T1_2x3_S1_RaptorForearmL",
	},
}

var RaptorArmR = StructuralTemplate{
	Name:   "RaptorArmR",
	Tier:   1,
	Socket: enums.SocketArmRight,
	Grids: []string{
		"Head_T1_2x4_S2FH_RaptorUpperArmR",
		"Head_T1_2x3_S1_RaptorForearmR",
	},
}

var RaptorLegL = StructuralTemplate{
	Name:   "RaptorLegL",
	Tier:   1,
	Socket: enums.SocketLegLeft,
	Grids: []string{
		"Head_T1_3x5_S2FH_RaptorThighL",
		"Head_T1_2x4_S1_RaptorShinL",
	},
}

var RaptorLegR = StructuralTemplate{
	Name:   "RaptorLegR",
	Tier:   1,
	Socket: enums.SocketLegRight,
	Grids: []string{
		"Head_T1_3x5_S2FH_RaptorThighR",
		"Head_T1_2x4_S1_RaptorShinR",
	},
}

var RaptorTailBlade = StructuralTemplate{
	Name:   "RaptorTailBlade",
	Tier:   1,
	Socket: enums.SocketTail,
	Grids: []string{
		"Head_T1_1x4_S1_RaptorTailRidge",
	},
}

// Тир-2 усиленная нога: сетка глубже утоплена в силуэт (закрытость 5)
// и полностью обхватывает бедро по горизонтали.
var RaptorLegR_Mk2 = StructuralTemplate{
	Name:   "RaptorLegR_Mk2",
	Tier:   2,
	Socket: enums.SocketLegRight,
	Grids: []string{
		"Head_T2_4x7_S5FH_RaptorThighR_Mk2",
		"Head_T1_2x4_S1_RaptorShinR_Mk2",
	},
}

// StructuralTemplates - карта всех доступных структурных частей
var StructuralTemplates = map[string]StructuralTemplate{
	"RaptorHips":      RaptorHips,
	"RaptorTorso":     RaptorTorso,
	"RaptorHead":      RaptorHead,
	"RaptorArmL":      RaptorArmL,
	"RaptorArmR":      RaptorArmR,
	"RaptorLegL":      RaptorLegL,
	"RaptorLegR":      RaptorLegR,
	"RaptorTailBlade": RaptorTailBlade,
	"RaptorLegR_Mk2":  RaptorLegR_Mk2,
}

// --- БРОНЕВЫЕ ДЕТАЛИ ---

var PlateSmall = ArmorTemplate{
	Name: "PlateSmall",
	Tier: 1,
	Tail: "Tail_1x1_SN_PlateSmall",
}

var PlateLong = ArmorTemplate{
	Name: "PlateLong",
	Tier: 1,
	Tail: "Tail_2x1_SN_PlateLong",
}

var PlateWide = ArmorTemplate{
	Name: "PlateWide",
	Tier: 1,
	Tail: "Tail_2x2_SN_PlateWide",
}

// PlateAngled требует закрытости 1 и открытых левого и правого краев:
// годится только для утопленных сеток.
var PlateAngled = ArmorTemplate{
	Name: "PlateAngled",
	Tier: 1,
	Tail: "Tail_2x1_S1_LR_PlateAngled",
}

// PlateStacked после установки экспонирует собственную сетку 1x1,
// на которую можно навесить следующий слой.
var PlateStacked = ArmorTemplate{
	Name: "PlateStacked",
	Tier: 1,
	Tail: "Tail_2x1_SN_PlateStacked",
	AdditionalGrids: []string{
		"Head_T1_1x1_SN_PlateStackedTop",
	},
}

// WrapThigh полностью обхватывает конечность по горизонтали.
// Встает только на сетки с FullHorizontal (или на их повороты).
var WrapThigh = ArmorTemplate{
	Name: "WrapThigh",
	Tier: 1,
	Tail: "Tail_2x2_S1FH_WrapThigh",
}

var HeavyPlate = ArmorTemplate{
	Name: "HeavyPlate",
	Tier: 2,
	Tail: "Tail_3x2_S2_HeavyPlate",
}

// ArmorTemplates - карта всех доступных броневых деталей
var ArmorTemplates = map[string]ArmorTemplate{
	"PlateSmall":   PlateSmall,
	"PlateLong":    PlateLong,
	"PlateWide":    PlateWide,
	"PlateAngled":  PlateAngled,
	"PlateStacked": PlateStacked,
	"WrapThigh":    WrapThigh,
	"HeavyPlate":   HeavyPlate,
}

// WildArmorTable - автоматический список ключей брони для заполнителя
// диких роботов. Заполняется при старте программы.
var WildArmorTable []string

func init() {
	for key := range ArmorTemplates {
		WildArmorTable = append(WildArmorTable, key)
	}
}
