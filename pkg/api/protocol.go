package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" редактируемого робота, видимый
// для конкретного клиента. Отправляется после каждой успешной команды
// и при входе в режим редактирования.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE", "ERROR" или "SESSION_CLOSED".
	Type string `json:"type"`

	// Tick текущее глобальное время зоны. Увеличивается с каждым тактом.
	Tick int `json:"tick"`

	// SessionID идентификатор активной сессии редактирования, если есть.
	SessionID string `json:"sessionId,omitempty"`

	// Mode текущий режим редактирования: "ARMOR" или "STRUCTURAL".
	Mode string `json:"mode,omitempty"`

	// Robot дерево редактируемого робота.
	Robot *RobotView `json:"robot,omitempty"`

	// Inventory склад деталей клиента.
	Inventory *InventoryView `json:"inventory,omitempty"`

	// Hover результат последнего предпросмотра размещения.
	Hover *HoverView `json:"hover,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлой команды.
	Logs []LogEntry `json:"logs,omitempty"`
}

// RobotView это DTO для всего робота: имя, тир, наличие ядра
// и дерево структурных деталей от корня.
type RobotView struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Tier    int       `json:"tier"`
	HasCore bool      `json:"hasCore"`
	Root    *PartView `json:"root,omitempty"`
}

// PartView это DTO для структурной детали и всего её поддерева.
type PartView struct {
	ID       string       `json:"id"`
	Template string       `json:"template"`
	Tier     int          `json:"tier"`
	Sockets  []SocketView `json:"sockets,omitempty"`
	Grids    []GridView   `json:"grids,omitempty"`
}

// SocketView это DTO для одного сокета детали.
// Part присутствует только у занятых сокетов.
type SocketView struct {
	Type    string    `json:"type"`
	MaxTier int       `json:"maxTier,omitempty"`
	Part    *PartView `json:"part,omitempty"`
}

// GridView это DTO для head-сетки и размещённой на ней брони.
type GridView struct {
	Name string `json:"name"`
	// Owner - ID части-владельца; вместе с Name это полный адрес сетки
	// для HOVER/PLACE.
	Owner      string          `json:"owner"`
	SizeX      int             `json:"sizeX"`
	SizeY      int             `json:"sizeY"`
	Placements []PlacementView `json:"placements,omitempty"`
}

// PlacementView описывает одну броневую деталь на сетке.
// Additional - вложенные head-сетки этой детали со своим содержимым.
type PlacementView struct {
	ID         string     `json:"id"`
	Template   string     `json:"template"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Rotation   int        `json:"rotation"` // градусы: 0, 90, 180, 270
	Additional []GridView `json:"additional,omitempty"`
}

// HoverView результат предпросмотра: допустимо ли размещение выбранной
// детали в выбранной точке и какие повороты допустимы.
type HoverView struct {
	GridName       string `json:"gridName"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	CanPlace       bool   `json:"canPlace"`
	ValidRotations []int  `json:"validRotations,omitempty"` // градусы
	Reason         string `json:"reason,omitempty"`
}

// InventoryView представляет склад деталей для клиента.
type InventoryView struct {
	Items []ItemView `json:"items"`
}

// ItemView представляет позицию склада: шаблон детали и её количество.
type ItemView struct {
	Template string `json:"template"`
	Count    int    `json:"count"`
}

// LogEntry представляет одну запись в журнале сессии.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, EDIT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token токен клиента. Обязателен только для первого сообщения "LOGIN".
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// ActivatePayload используется для входа в режим редактирования (ACTIVATE).
type ActivatePayload struct {
	RobotID string `json:"robotId"`
}

// HoverPayload используется для предпросмотра размещения (HOVER).
// OwnerID - ID части-владельца сетки: имя сетки уникально только в
// пределах части, и две детали одного шаблона несут одноименные сетки.
// Пустой OwnerID допустим, пока имя встречается в дереве один раз.
type HoverPayload struct {
	OwnerID  string `json:"ownerId,omitempty"`
	GridName string `json:"gridName"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Template string `json:"template"`
}

// PlacePayload используется для размещения брони на сетке (PLACE).
// Сетка адресуется как в HoverPayload: владелец + имя.
type PlacePayload struct {
	OwnerID  string `json:"ownerId,omitempty"`
	GridName string `json:"gridName"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Template string `json:"template"`
	Rotation int    `json:"rotation"` // градусы: 0, 90, 180, 270
}

// RemovePayload используется для снятия брони с сетки (REMOVE).
// Cascade разрешает рекурсивное снятие деталей с вложенных сеток.
type RemovePayload struct {
	PartID  string `json:"partId"`
	Cascade bool   `json:"cascade,omitempty"`
}

// AttachPayload используется для установки структурной детали в сокет (ATTACH).
type AttachPayload struct {
	ParentID string `json:"parentId"`
	Socket   string `json:"socket"`
	Template string `json:"template"`
}

// DetachPayload используется для снятия структурной детали (DETACH).
type DetachPayload struct {
	PartID string `json:"partId"`
}

// ModePayload используется для переключения режима редактирования (TOGGLE_MODE).
type ModePayload struct {
	Mode string `json:"mode"` // ARMOR или STRUCTURAL
}

// TransplantPayload используется для переноса ядра между роботами (TRANSPLANT).
type TransplantPayload struct {
	TargetRobotID string `json:"targetRobotId"`
}
