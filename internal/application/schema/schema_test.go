package schema

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory_Limites(t *testing.T) {
	// Límite inferior: 2 caracteres es válido, 1 no
	form, errs := ParseCategory("Ro")
	require.Nil(t, errs)
	assert.Equal(t, "Ro", form.Name)

	_, errs = ParseCategory("R")
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"][0], "al menos 2")

	// Límite superior: 50 caracteres es válido, 51 no
	form, errs = ParseCategory(strings.Repeat("a", 50))
	require.Nil(t, errs)
	assert.Len(t, form.Name, 50)

	_, errs = ParseCategory(strings.Repeat("a", 51))
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"][0], "demasiado largo")
}

func TestParseCategory_NombreVacio(t *testing.T) {
	_, errs := ParseCategory("")
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["name"])

	// Solo espacios cuenta como vacío (se recorta antes de validar)
	_, errs = ParseCategory("   ")
	require.NotNil(t, errs)
}

func TestParseProduct_Valido(t *testing.T) {
	form, errs := ParseProduct("Camiseta", "Algodón 100%", "19.99", nil)
	require.Nil(t, errs)
	assert.Equal(t, "Camiseta", form.Name)
	assert.True(t, form.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestParseProduct_NombreCorto(t *testing.T) {
	_, errs := ParseProduct("Ca", "", "10", nil)
	require.NotNil(t, errs)
	assert.Contains(t, errs["name"][0], "al menos 3")
}

func TestParseProduct_Precio(t *testing.T) {
	casos := []struct {
		precio string
		campo  string
	}{
		{"", "price"},
		{"abc", "price"},
		{"0", "price"},
		{"-5", "price"},
	}
	for _, c := range casos {
		_, errs := ParseProduct("Camiseta", "", c.precio, nil)
		require.NotNil(t, errs, "precio %q debe fallar", c.precio)
		assert.NotEmpty(t, errs[c.campo])
	}
}

func TestParseProduct_ImageLinks(t *testing.T) {
	form, errs := ParseProduct("Camiseta", "", "10", []string{
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/b.png",
	})
	require.Nil(t, errs)
	assert.Len(t, form.ImageLinks, 2)

	_, errs = ParseProduct("Camiseta", "", "10", []string{"no-es-una-url"})
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["image_urls"])
}

func TestParseCompany_Limites(t *testing.T) {
	_, errs := ParseCompany("Mi Tienda")
	assert.Nil(t, errs)

	_, errs = ParseCompany("M")
	require.NotNil(t, errs)

	_, errs = ParseCompany(strings.Repeat("x", 51))
	require.NotNil(t, errs)
}

func TestParseThreeWords(t *testing.T) {
	form, errs := ParseThreeWords("artesanal", "local", "sostenible")
	require.Nil(t, errs)
	assert.Equal(t, []string{"artesanal", "local", "sostenible"}, form.Words())

	_, errs = ParseThreeWords("artesanal", "", "sostenible")
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["word2"])
}

func TestParseProfile(t *testing.T) {
	_, errs := ParseProfile("ana")
	assert.Nil(t, errs)

	_, errs = ParseProfile("an")
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["username"])
}
