package types

import (
	"fmt"
	"strconv"
)

// PartID — 64-битный идентификатор части робота.
//
// PartID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения. Внутри дерева части связаны прямыми
// ссылками; PartID — стабильная идентичность части для внешнего мира:
// протокол редактирования, слепки, логи и отладочные ручки адресуют
// части по нему.
//
// Формат битов (от старших к младшим):
//
//	[ Zone (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Zone — идентификатор зоны / фабрики, создавшей часть
//   - Kind — вид части (Structural, Armor, Core)
//   - Generation — версия раздачи ID фабрикой (защита от устаревших
//     ссылок после пересборки)
//   - Index — порядковый номер части в рамках фабрики
//
// Такой формат позволяет:
//   - определять принадлежность части зоне/фабрике без поиска по дереву
//   - различать вид части по одному только ID
//   - обнаруживать stale references после восстановления из слепка
type PartID uint64

// NilPartID — нулевой идентификатор части.
//
// Используется как аналог nil для случаев, когда часть отсутствует
// или ссылка ещё не инициализирована.
const NilPartID PartID = 0

// Конфигурация битов PartID.
//
// Общее количество бит — 64.
const (
	// bitsIndex — количество бит, выделенных под индекс части.
	// Позволяет адресовать до ~4.29 миллиарда частей в рамках одной зоны.
	bitsIndex = 32

	// bitsGen — количество бит для поколения слота.
	// Используется для защиты от использования устаревших ссылок.
	bitsGen = 16

	// bitsKind — количество бит для вида части.
	// Позволяет определить до 256 различных видов частей.
	bitsKind = 8

	// bitsZone — количество бит для идентификатора зоны (фабрики).
	// Позволяет использовать до 256 независимых фабрик.
	bitsZone = 8

	// Сдвиги битов
	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen
	shiftZone = bitsIndex + bitsGen + bitsKind

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskZone  = (1 << bitsZone) - 1
)

// PackPartID собирает PartID из составных частей.
//
// Параметры:
//   - zoneID — идентификатор зоны / фабрики
//   - kindID — вид части
//   - gen — поколение слота части
//   - index — порядковый номер части в рамках фабрики
//
// Функция не выполняет проверок диапазонов значений и предполагает,
// что входные данные валидны.
func PackPartID(
	zoneID uint8,
	kindID uint8,
	gen uint16,
	index uint32,
) PartID {
	return PartID(
		(uint64(zoneID) << shiftZone) |
			(uint64(kindID) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает порядковый номер части в рамках фабрики.
func (id PartID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота части.
//
// Используется для обнаружения устаревших ссылок на уничтоженные части.
func (id PartID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид части.
func (id PartID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

// Zone возвращает идентификатор зоны, которой принадлежит часть.
func (id PartID) Zone() uint8 {
	return uint8((id >> shiftZone) & maskZone)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id PartID) IsNil() bool {
	return id == NilPartID
}

// IsLocal проверяет, принадлежит ли часть текущей зоне.
func (id PartID) IsLocal(currentZone uint8) bool {
	return id.Zone() == currentZone
}

// String возвращает человекочитаемое строковое представление PartID.
//
// Предназначено для логирования и отладки.
func (id PartID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[zone=%d kind=%d gen=%d idx=%d]",
		id.Zone(),
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// WireString возвращает десятичное представление для DTO.
// Парная функция - ParsePartID.
func (id PartID) WireString() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParsePartID разбирает десятичное строковое представление PartID
// (формат, в котором ID ходит по проводу).
func ParsePartID(s string) (PartID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilPartID, err
	}
	return PartID(v), nil
}

// MarshalJSON сериализует PartID в JSON как строку.
//
// Это необходимо для предотвращения потери точности при работе с
// JavaScript и другими средами, не поддерживающими uint64.
func (id PartID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует PartID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *PartID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilPartID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = PartID(v)
	return nil
}
