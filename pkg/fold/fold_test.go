package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Azúcar Morena", "azucar morena"},
		{"  WHITE RICE  ", "white rice"},
		{"Café", "cafe"},
		{"jalapeño", "jalapeno"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Fold(c.in), "entrada %q", c.in)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Azúcar Morena", "azucar"), "contención plegada")
	assert.True(t, Matches("rice", "White Rice"), "contención en ambos sentidos")
	assert.True(t, Matches("Café", "CAFE"))
	assert.False(t, Matches("White Rice", "beans"))
	assert.False(t, Matches("", "rice"), "vacío nunca coincide")
	assert.False(t, Matches("rice", ""))
}
