package domain

// Inventory хранит запас деталей владельца по именам шаблонов.
//
// Установка детали списывает одну единицу, снятие - всегда возвращает
// одну единицу обратно.
type Inventory struct {
	counts map[string]int
}

// NewInventory создает пустой инвентарь.
func NewInventory() *Inventory {
	return &Inventory{
		counts: make(map[string]int),
	}
}

// HasItem проверяет, есть ли хотя бы одна единица детали.
func (inv *Inventory) HasItem(name string) bool {
	return inv.Count(name) > 0
}

// Count возвращает текущее количество.
func (inv *Inventory) Count(name string) int {
	if inv == nil {
		return 0
	}
	return inv.counts[name]
}

// AddItem добавляет n единиц (n <= 0 игнорируется).
func (inv *Inventory) AddItem(name string, n int) {
	if inv == nil || n <= 0 {
		return
	}
	inv.counts[name] += n
}

// RemoveItem списывает n единиц. Отказ (false, ничего не меняется),
// если запаса не хватает.
func (inv *Inventory) RemoveItem(name string, n int) bool {
	if inv == nil || n <= 0 {
		return false
	}
	if inv.counts[name] < n {
		return false
	}
	inv.counts[name] -= n
	if inv.counts[name] == 0 {
		delete(inv.counts, name)
	}
	return true
}

// Items возвращает копию содержимого (для DTO/отладки).
func (inv *Inventory) Items() map[string]int {
	out := make(map[string]int, len(inv.counts))
	for k, v := range inv.counts {
		out[k] = v
	}
	return out
}
