package try

// something have method `Fatal`.
//
// For example: *testing.T, log.Logger
type Fataler interface {
	Fatal(...any)
}

// Wrapper of a pair of (T, error) .
//
// When error is nil, such Either is "ok", and T value is valid.
type Either[T any] interface {

	// get value & error pair
	Get() (T, error)

	// When Either is "ok", it just return the T value.
	//
	// Otherwise, it calls ftl.Fatal(err) .
	// If ftl has "Helper()" method (like *testing.T), also that is called before `Fatal`.
	OrFatal(ftl Fataler) T
}

func To[T any](ok T, ng error) Either[T] {
	return either[T]{value: ok, err: ng}
}

type either[T any] struct {
	value T
	err   error
}

func (e either[T]) Get() (T, error) {
	if e.err != nil {
		return *new(T), e.err
	}
	return e.value, nil
}

func (e either[T]) OrFatal(ftl Fataler) T {
	if e.err == nil {
		return e.value
	}
	if hlp, ok := ftl.(interface{ Helper() }); ok {
		hlp.Helper()
	}
	ftl.Fatal(e.err)
	return *new(T)
}
