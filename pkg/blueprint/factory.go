package blueprint

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/core/types/enums"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

// Factory создает экземпляры частей по шаблонам и выдает им уникальные ID.
// Разрешенные данные шаблонов кешируются: все экземпляры одного шаблона
// разделяют один *PartData.
//
// Фабрика передается зависимостью, глобального экземпляра нет.
type Factory struct {
	zone    uint8
	gen     uint16
	counter atomic.Uint32

	mu             sync.Mutex
	structuralData map[string]*domain.StructuralPartData
	armorData      map[string]*domain.ArmorPartData
}

// NewFactory создает фабрику для заданной зоны.
func NewFactory(zone uint8) *Factory {
	return &Factory{
		zone:           zone,
		gen:            1,
		structuralData: make(map[string]*domain.StructuralPartData),
		armorData:      make(map[string]*domain.ArmorPartData),
	}
}

// NewPartID выдает следующий уникальный ID для части заданного вида.
func (f *Factory) NewPartID(kind enums.PartKind) types.PartID {
	idx := f.counter.Add(1)
	return types.PackPartID(f.zone, uint8(kind), f.gen, idx)
}

// StructuralData возвращает кешированные данные структурного шаблона.
func (f *Factory) StructuralData(template string) (*domain.StructuralPartData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if data, ok := f.structuralData[template]; ok {
		return data, nil
	}
	tmpl, ok := StructuralTemplates[template]
	if !ok {
		return nil, fmt.Errorf("unknown structural template %q", template)
	}
	data, err := tmpl.Data()
	if err != nil {
		return nil, err
	}
	f.structuralData[template] = data
	return data, nil
}

// ArmorData возвращает кешированные данные броневого шаблона.
func (f *Factory) ArmorData(template string) (*domain.ArmorPartData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if data, ok := f.armorData[template]; ok {
		return data, nil
	}
	tmpl, ok := ArmorTemplates[template]
	if !ok {
		return nil, fmt.Errorf("unknown armor template %q", template)
	}
	data, err := tmpl.Data()
	if err != nil {
		return nil, err
	}
	f.armorData[template] = data
	return data, nil
}

// CreateStructural создает экземпляр структурной части по имени шаблона.
func (f *Factory) CreateStructural(template string) (*domain.StructuralPart, error) {
	data, err := f.StructuralData(template)
	if err != nil {
		return nil, err
	}
	return domain.NewStructuralPart(f.NewPartID(enums.PartKindStructural), data), nil
}

// CreateArmor создает неустановленный экземпляр броневой детали.
func (f *Factory) CreateArmor(template string) (*domain.ArmorPart, error) {
	data, err := f.ArmorData(template)
	if err != nil {
		return nil, err
	}
	return domain.NewArmorPart(f.NewPartID(enums.PartKindArmor), data), nil
}

// CreateCore создает новое ядро заданного тира.
func (f *Factory) CreateCore(tier int) *domain.CoreUnit {
	return domain.NewCoreUnit(f.NewPartID(enums.PartKindCore), tier)
}

// --- ВОССТАНОВЛЕНИЕ ИЗ СНАПШОТА ---

// RestoreStructure пересобирает структурное дерево по слепку.
// Возвращает свежий корень: вызывающий подменяет им дерево робота
// через Robot.ReplaceHips. Робот и его ядро не затрагиваются.
func (f *Factory) RestoreStructure(snap *domain.RobotSnapshot) (*domain.StructuralPart, error) {
	if snap == nil || snap.Root == nil {
		return nil, fmt.Errorf("snapshot has no structural root")
	}
	return f.restorePart(snap.Root)
}

func (f *Factory) restorePart(snap *domain.PartSnapshot) (*domain.StructuralPart, error) {
	part, err := f.CreateStructural(snap.Template)
	if err != nil {
		return nil, err
	}

	// Сокеты в слепке идут в порядке объявления на части.
	for i, ss := range snap.Sockets {
		if ss.Part == nil {
			continue
		}
		if i >= len(part.Sockets) {
			return nil, fmt.Errorf("template %q: socket index %d out of range", snap.Template, i)
		}
		child, err := f.restorePart(ss.Part)
		if err != nil {
			return nil, err
		}
		if !part.Sockets[i].TryAttach(child) {
			return nil, fmt.Errorf("template %q: cannot reattach %q to socket %v",
				snap.Template, ss.Part.Template, part.Sockets[i].Type)
		}
	}

	for _, gs := range snap.Grids {
		grid := part.Grid(gs.Name)
		if grid == nil {
			return nil, fmt.Errorf("template %q: no grid %q", snap.Template, gs.Name)
		}
		if err := f.restoreGrid(grid, gs); err != nil {
			return nil, err
		}
	}
	return part, nil
}

func (f *Factory) restoreGrid(grid *domain.GridHead, snap domain.GridSnapshot) error {
	for _, ps := range snap.Placements {
		armor, err := f.CreateArmor(ps.Template)
		if err != nil {
			return err
		}
		if !grid.TryPlace(armor, ps.X, ps.Y, ps.Rotation) {
			return fmt.Errorf("cannot replace %q at (%d,%d) on grid %q",
				ps.Template, ps.X, ps.Y, grid.Info.GridName)
		}
		// Вложенные сетки детали заполняются после установки носителя.
		for _, as := range ps.Additional {
			nested := armor.Grid(as.Name)
			if nested == nil {
				return fmt.Errorf("armor %q: no additional grid %q", ps.Template, as.Name)
			}
			if err := f.restoreGrid(nested, as); err != nil {
				return err
			}
		}
	}
	return nil
}
