package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	supplier, err := NewSupplier(" Lanka Petro ", " Fuel@Lanka-Petro.LK ", "0112", []string{"Diesel", " diesel ", "", "Petrol"})
	require.NoError(t, err)
	require.Equal(t, "Lanka Petro", supplier.Name)
	require.Equal(t, "fuel@lanka-petro.lk", supplier.Email)
	require.Equal(t, []string{"Diesel", "Petrol"}, supplier.SuppliedItems)
	require.True(t, supplier.Supplies("PETROL"))
	require.False(t, supplier.Supplies("Soap"))

	_, err = NewSupplier("", "a@b.lk", "", nil)
	require.ErrorIs(t, err, ErrEmptyName)
	_, err = NewSupplier("X", "nope", "", nil)
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestCheckPasswordPolicy(t *testing.T) {
	require.ErrorIs(t, CheckPasswordPolicy("  "), ErrEmptyPassword)
	require.ErrorIs(t, CheckPasswordPolicy("short"), ErrWeakPassword)
	require.NoError(t, CheckPasswordPolicy("long-enough"))
}
