// internal/interfaces/context.go
package interfaces

// Clock отдает монотонное время в миллисекундах.
type Clock interface {
	Now() int64
}

// Rand — источник случайности, передаваемый в систему явно,
// чтобы матч можно было воспроизвести по сиду.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
