// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности. 0 означает "нет сущности".
type EntityID uint64
