package ptr

// Ptr возвращает указатель на переданное значение.
// Удобно для заполнения опциональных полей фильтров и моделей.
func Ptr[T any](v T) *T {
	return &v
}

// Deref разыменовывает указатель, возвращая значение по умолчанию для nil
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
