// internal/types/types.go
package types

// EntityID — идентификатор сущности в реестре ECS. Ноль означает "нет сущности".
type EntityID uint64
