package functional

// Block is a unit of work with no result that may fail with a checked error.
type Block func() error

// Procedure is a unit of work producing an R that may fail with a checked
// error.
type Procedure[R any] func() (R, error)

type Producer[V any] func() V
type ErrorableProducer[V any] func() (V, error)
type Consumer[T any] func(T)
type BiConsumer[A, B any] func(A, B)
type Function[A, V any] func(A) V
type ErrorableFunction[A any, V any] func(A) (V, error)
type BiFunction[A, B, V any] func(A, B) V
type ErrorableBiFunction[A, B, V any] func(A, B) (V, error)
