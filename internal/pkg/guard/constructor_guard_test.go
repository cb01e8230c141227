package guard_test

import (
	"errors"
	"testing"

	"ricemarket/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type address struct {
		line  string
		guard guard.ConstructorGuard
	}

	var errAddressNotConstructed = errors.New("address must be created via newAddress")

	newAddress := func(line string) (address, error) {
		if line == "" {
			return address{}, errors.New("line is required")
		}
		return address{line: line, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_object_passes_validation", func(t *testing.T) {
		a, err := newAddress("1-2-3 Nishi, Niigata")
		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAddressNotConstructed))
	})

	t.Run("zero_value_object_fails_validation", func(t *testing.T) {
		var a address
		err := a.guard.Validate(errAddressNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errAddressNotConstructed, err)
	})
}
