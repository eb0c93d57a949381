package record

// A Source yields stored records in a deterministic order. The normalizer
// accepts any Source, so tests can substitute an in-memory fixture for the
// on-disk directory.
type Source interface {
	Each(fn func(*Record) error) error
}

// Slice is an in-memory Source, yielding records in slice order.
type Slice []Record

func (s Slice) Each(fn func(*Record) error) error {
	for i := range s {
		if err := fn(&s[i]); err != nil {
			return err
		}
	}
	return nil
}
