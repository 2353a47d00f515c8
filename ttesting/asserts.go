package ttesting

import (
	"errors"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualUint16(t *testing.T, name string, got, want uint16) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualBool(t *testing.T, name string, got, want bool) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %t; want %t", got, want)
		}
	})
}

func AssertErrorIs(t *testing.T, name string, got, want error) {
	t.Run(name, func(t *testing.T) {
		if !errors.Is(got, want) {
			t.Errorf("got error %v; want %v", got, want)
		}
	})
}
