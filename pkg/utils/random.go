package utils

import (
	"hash/fnv"
	"math/rand"

	"github.com/google/uuid"
)

// GenerateToken создает уникальный токен сессии/робота.
func GenerateToken() string {
	return uuid.NewString()
}

// StringToSeed детерминированно превращает строку в сид генератора.
// Один и тот же владелец всегда получает один и тот же стартовый ангар.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	// Write на fnv не возвращает ошибок
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// GenerateDeterministicName создает имя с псевдослучайным суффиксом из переданного rng.
// Используется фабрикой, чтобы в live-режиме и при восстановлении снапшота
// части получали одинаковые имена.
func GenerateDeterministicName(rng *rand.Rand, prefix string) string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 8)
	for i := range b {
		b[i] = hexDigits[rng.Intn(len(hexDigits))]
	}
	return prefix + string(b)
}
