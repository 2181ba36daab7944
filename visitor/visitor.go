package visitor

// Visitor iterates (key, element) pairs of a sequence or a mapping in a stable order.
// Iteration ends when the callback returns false or an error, the error is returned.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
