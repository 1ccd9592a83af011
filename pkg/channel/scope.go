package channel

import "errors"

// WithWriter opens path write-only, runs fn and closes the channel on every
// path. A close failure is joined into the returned error.
func WithWriter(path string, fn func(w Writer) error) (err error) {
	ch, err := Open(path, WriteOnly)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ch.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return fn(ch)
}

// WithReader opens path read-only, runs fn and closes the channel on every path
func WithReader(path string, fn func(r Reader) error) (err error) {
	ch, err := Open(path, ReadOnly)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ch.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	return fn(ch)
}
