package models

import "time"

// Event types
const (
	EventTypeBoletaCreated       = "BOLETA_CREATED"
	EventTypeBoletaStatusChanged = "BOLETA_STATUS_CHANGED"
	EventTypeBoletaDeleted       = "BOLETA_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// BoletaLineData is the line payload embedded in boleta events
type BoletaLineData struct {
	ProductoID     int64 `json:"producto_id"`
	Cantidad       int   `json:"cantidad"`
	PrecioUnitario int64 `json:"precio_unitario"`
}

// BoletaCreatedEvent published after a boleta and its lines are committed
type BoletaCreatedEvent struct {
	BaseEvent
	BoletaID  int64            `json:"boleta_id"`
	UsuarioID int64            `json:"usuario_id"`
	Total     int64            `json:"total"`
	Lines     []BoletaLineData `json:"lines"`
}

// BoletaStatusChangedEvent published when a boleta changes state
type BoletaStatusChangedEvent struct {
	BaseEvent
	BoletaID  int64  `json:"boleta_id"`
	OldEstado string `json:"old_estado"`
	NewEstado string `json:"new_estado"`
}

// BoletaDeletedEvent published when a boleta is removed
type BoletaDeletedEvent struct {
	BaseEvent
	BoletaID int64 `json:"boleta_id"`
}
