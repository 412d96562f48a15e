package blueprint

import (
	"math/rand"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
	"github.com/IvanCG94/ProjectMechaArkV3-sub000/pkg/utils"
)

// WildSpawner собирает диких роботов для зоны: полный каркас, ядро
// и случайное заполнение сеток броней. Детерминирован по seed.
type WildSpawner struct {
	factory *Factory
	rng     *rand.Rand
}

// NewWildSpawner создает спавнер с собственным генератором случайности.
func NewWildSpawner(factory *Factory, seed int64) *WildSpawner {
	return &WildSpawner{
		factory: factory,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Spawn собирает нового дикого робота заданного тира.
// Возвращает nil, если каркас не собрался (сломанные шаблоны).
func (s *WildSpawner) Spawn(tier int) *domain.Robot {
	name := utils.GenerateDeterministicName(s.rng, "wild_")

	b := NewRobot(name, tier, s.factory).
		WithHips("RaptorHips").
		Attach(RaptorTorso.Socket, "RaptorTorso").
		Attach(RaptorHead.Socket, "RaptorHead").
		Attach(RaptorArmL.Socket, "RaptorArmL").
		Attach(RaptorArmR.Socket, "RaptorArmR").
		Attach(RaptorLegL.Socket, "RaptorLegL").
		WithCore(tier)

	// Начиная со второго тира правая нога ставится усиленной.
	if tier >= 2 {
		b.Attach(RaptorLegR_Mk2.Socket, "RaptorLegR_Mk2")
	} else {
		b.Attach(RaptorLegR.Socket, "RaptorLegR")
	}

	robot, errs := b.Build()
	if len(errs) > 0 {
		return nil
	}

	s.fillArmor(robot)
	return robot
}

// fillArmor заполняет сетки робота случайной броней first-fit проходом:
// для каждой клетки пробуем случайный шаблон во всех допустимых поворотах.
// Плотность ниже 100% - дикие роботы ходят с прорехами в броне.
func (s *WildSpawner) fillArmor(robot *domain.Robot) {
	for _, grid := range robot.AllGrids() {
		for y := 0; y < grid.Info.SizeY; y++ {
			for x := 0; x < grid.Info.SizeX; x++ {
				if grid.PartAt(x, y) != nil {
					continue
				}
				// Шанс оставить клетку пустой
				if s.rng.Intn(100) < 20 {
					continue
				}
				s.tryFillCell(grid, x, y)
			}
		}
	}
}

func (s *WildSpawner) tryFillCell(grid *domain.GridHead, x, y int) {
	// Один случайный шаблон на клетку: порядок WildArmorTable
	// стабилен только внутри процесса, поэтому выбираем по индексу rng.
	template := WildArmorTable[s.rng.Intn(len(WildArmorTable))]
	data, err := s.factory.ArmorData(template)
	if err != nil {
		return
	}

	for _, r := range domain.GetValidRotations(data.Tail, grid.Info) {
		if !grid.CanPlace(data, x, y, r) {
			continue
		}
		armor, err := s.factory.CreateArmor(template)
		if err != nil {
			return
		}
		grid.TryPlace(armor, x, y, r)
		return
	}
}
