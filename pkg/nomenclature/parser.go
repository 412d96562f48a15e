// Package nomenclature разбирает структурные имена сеток вида
//
//	{Head|Tail}[_T<tier>]_<X>x<Y>_<surrounding>[_<edges>]_<name>
//
// Примеры:
//
//	Head_T2_4x7_S5FH_RaptorThighR  - head-сетка, тир 2, 4x7, закрытость 5,
//	                                 полный горизонтальный обхват
//	Tail_2x1_SN_PlateSmall         - legacy-формат без тира (тир = 1),
//	                                 полностью наружная деталь
//	Head_3x3_S2_LR_ScarabBack      - открыты левый и правый края
//
// Регистр не важен. Имя сетки - последний сегмент, его регистр сохраняется.
package nomenclature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/IvanCG94/ProjectMechaArkV3-sub000/internal/domain"
)

// Таксономия ошибок разбора. Parse оборачивает их описанием конкретного
// места отказа; errors.Is работает против обеих.
var (
	ErrBadFormat  = errors.New("nomenclature: bad format")
	ErrOutOfRange = errors.New("nomenclature: value out of range")
)

const defaultTier = 1

// TryParse разбирает имя и сообщает успех флагом.
// Никогда не возвращает частично заполненный GridInfo: при неудаче
// результат - нулевое значение.
func TryParse(name string) (domain.GridInfo, bool) {
	info, err := Parse(name)
	if err != nil {
		return domain.GridInfo{}, false
	}
	return info, true
}

// Parse разбирает имя и возвращает описательную ошибку формата.
func Parse(name string) (domain.GridInfo, error) {
	fail := func(err error) (domain.GridInfo, error) {
		return domain.GridInfo{}, err
	}

	tokens := strings.Split(name, "_")
	if len(tokens) < 4 {
		return fail(fmt.Errorf("%w: %q has %d segments, need at least 4", ErrBadFormat, name, len(tokens)))
	}

	var info domain.GridInfo
	info.Tier = defaultTier

	// 1. Роль: Head или Tail
	switch strings.ToUpper(tokens[0]) {
	case "HEAD":
		info.IsHead = true
	case "TAIL":
		info.IsHead = false
	default:
		return fail(fmt.Errorf("%w: %q must start with Head or Tail", ErrBadFormat, name))
	}
	tokens = tokens[1:]

	// 2. Опциональный тир: T<int>. Legacy-формат его опускает.
	if tier, ok, err := parseTier(tokens[0]); err != nil {
		return fail(fmt.Errorf("in %q: %w", name, err))
	} else if ok {
		info.Tier = tier
		tokens = tokens[1:]
	}

	if len(tokens) < 3 {
		return fail(fmt.Errorf("%w: %q is missing size, surrounding or name", ErrBadFormat, name))
	}

	// 3. Размер: <X>x<Y>
	sizeX, sizeY, err := parseSize(tokens[0])
	if err != nil {
		return fail(fmt.Errorf("in %q: %w", name, err))
	}
	info.SizeX = sizeX
	info.SizeY = sizeY
	tokens = tokens[1:]

	// 4. Окружение: SN или S<level>[FH|FV]
	surr, err := parseSurrounding(tokens[0])
	if err != nil {
		return fail(fmt.Errorf("in %q: %w", name, err))
	}
	info.Surrounding = surr
	tokens = tokens[1:]

	// 5. Опциональные края + имя. Если сегментов больше одного и первый
	// целиком состоит из букв LRTB - это края, остальное имя.
	if len(tokens) >= 2 {
		if edges, ok := domain.ParseEdgeFlags(tokens[0]); ok {
			info.Surrounding.Edges = edges
			tokens = tokens[1:]
		}
	}

	gridName := strings.Join(tokens, "_")
	if gridName == "" {
		return fail(fmt.Errorf("%w: %q has empty grid name", ErrBadFormat, name))
	}
	info.GridName = gridName

	return info, nil
}

// parseTier распознает сегмент T<int>. Возвращает ok=false, если сегмент
// не похож на тир (законно для legacy-формата).
func parseTier(token string) (int, bool, error) {
	upper := strings.ToUpper(token)
	if len(upper) < 2 || upper[0] != 'T' || !isDigits(upper[1:]) {
		return 0, false, nil
	}
	tier, err := strconv.Atoi(upper[1:])
	if err != nil {
		return 0, false, fmt.Errorf("%w: tier segment %q", ErrBadFormat, token)
	}
	if tier < 1 {
		return 0, false, fmt.Errorf("%w: tier %d must be >= 1", ErrOutOfRange, tier)
	}
	return tier, true, nil
}

func parseSize(token string) (int, int, error) {
	parts := strings.Split(strings.ToUpper(token), "X")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, 0, fmt.Errorf("%w: size segment %q, want <X>x<Y>", ErrBadFormat, token)
	}
	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: size segment %q", ErrBadFormat, token)
	}
	if x < 1 || y < 1 {
		return 0, 0, fmt.Errorf("%w: size %dx%d must be positive", ErrOutOfRange, x, y)
	}
	return x, y, nil
}

func parseSurrounding(token string) (domain.SurroundingLevel, error) {
	upper := strings.ToUpper(token)

	// SN - полностью наружная деталь / сетка без требований закрытости
	if upper == "SN" {
		return domain.SurroundingLevel{Level: 0}, nil
	}

	if len(upper) < 2 || upper[0] != 'S' {
		return domain.SurroundingLevel{}, fmt.Errorf("%w: surrounding segment %q", ErrBadFormat, token)
	}

	body := upper[1:]
	full := domain.FullNone
	switch {
	case strings.HasSuffix(body, "FH"):
		full = domain.FullHorizontal
		body = strings.TrimSuffix(body, "FH")
	case strings.HasSuffix(body, "FV"):
		full = domain.FullVertical
		body = strings.TrimSuffix(body, "FV")
	}

	if !isDigits(body) {
		return domain.SurroundingLevel{}, fmt.Errorf("%w: surrounding segment %q", ErrBadFormat, token)
	}
	level, err := strconv.Atoi(body)
	if err != nil {
		return domain.SurroundingLevel{}, fmt.Errorf("%w: surrounding segment %q", ErrBadFormat, token)
	}
	if level < 0 {
		return domain.SurroundingLevel{}, fmt.Errorf("%w: surrounding level %d", ErrOutOfRange, level)
	}

	return domain.SurroundingLevel{Level: level, FullType: full}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
