// Package schema contiene los esquemas de validación declarativos de la
// aplicación: entrada cruda de formulario -> registro tipado o mapa de errores
// por campo. Sin efectos secundarios.
package schema

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors errores de validación por campo (campo -> lista de mensajes).
type FieldErrors map[string][]string

func (e FieldErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// CategoryForm datos validados para crear una categoría.
type CategoryForm struct {
	Name string `validate:"required,min=2,max=50"`
}

// ParseCategory valida el nombre de una categoría: longitud [2, 50].
func ParseCategory(name string) (*CategoryForm, FieldErrors) {
	form := &CategoryForm{Name: strings.TrimSpace(name)}
	if err := validate.Struct(form); err != nil {
		errs := FieldErrors{}
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Tag() {
			case "max":
				errs.add("name", "El nombre de la categoría es demasiado largo")
			default:
				errs.add("name", "El nombre de la categoría debe tener al menos 2 caracteres")
			}
		}
		return nil, errs
	}
	return form, nil
}

// ProductForm datos validados para crear un producto.
type ProductForm struct {
	Name        string `validate:"required,min=3"`
	Description string
	Price       decimal.Decimal
	ImageLinks  []string `validate:"omitempty,dive,url"`
}

// ParseProduct valida los campos base de un producto. El precio llega como
// string del formulario y se coacciona a decimal positivo y finito.
func ParseProduct(name, description, price string, imageLinks []string) (*ProductForm, FieldErrors) {
	errs := FieldErrors{}

	form := &ProductForm{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		ImageLinks:  imageLinks,
	}

	p, err := decimal.NewFromString(strings.TrimSpace(price))
	switch {
	case err != nil:
		errs.add("price", "El precio debe ser un número")
	case !p.IsPositive():
		errs.add("price", "El precio debe ser un número positivo")
	default:
		form.Price = p
	}

	if err := validate.Struct(form); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Name":
				errs.add("name", "El nombre debe tener al menos 3 caracteres")
			case "ImageLinks":
				errs.add("image_urls", "Formato de URL de imagen inválido")
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

// CompanyForm datos validados para crear una empresa.
type CompanyForm struct {
	Name string `validate:"required,min=2,max=50"`
}

// ParseCompany valida el nombre de una empresa: longitud [2, 50].
// El nombre no es único por usuario, así que no hay chequeo de duplicados.
func ParseCompany(name string) (*CompanyForm, FieldErrors) {
	form := &CompanyForm{Name: strings.TrimSpace(name)}
	if err := validate.Struct(form); err != nil {
		errs := FieldErrors{}
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Tag() {
			case "max":
				errs.add("name", "El nombre de la empresa es demasiado largo")
			default:
				errs.add("name", "El nombre de la empresa debe tener al menos 2 caracteres")
			}
		}
		return nil, errs
	}
	return form, nil
}

// ThreeWordsForm las tres palabras descriptivas del onboarding.
type ThreeWordsForm struct {
	Word1 string `validate:"required"`
	Word2 string `validate:"required"`
	Word3 string `validate:"required"`
}

// ParseThreeWords valida que las tres palabras estén presentes.
func ParseThreeWords(w1, w2, w3 string) (*ThreeWordsForm, FieldErrors) {
	form := &ThreeWordsForm{
		Word1: strings.TrimSpace(w1),
		Word2: strings.TrimSpace(w2),
		Word3: strings.TrimSpace(w3),
	}
	if err := validate.Struct(form); err != nil {
		errs := FieldErrors{}
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Word1":
				errs.add("word1", "La primera palabra es requerida")
			case "Word2":
				errs.add("word2", "La segunda palabra es requerida")
			case "Word3":
				errs.add("word3", "La tercera palabra es requerida")
			}
		}
		return nil, errs
	}
	return form, nil
}

// Words devuelve las tres palabras como slice ordenado.
func (f *ThreeWordsForm) Words() []string {
	return []string{f.Word1, f.Word2, f.Word3}
}

// ProfileForm datos validados del perfil público del vendedor.
type ProfileForm struct {
	Username string `validate:"required,min=3"`
}

// ParseProfile valida el username público: longitud mínima 3.
func ParseProfile(username string) (*ProfileForm, FieldErrors) {
	form := &ProfileForm{Username: strings.TrimSpace(username)}
	if err := validate.Struct(form); err != nil {
		errs := FieldErrors{}
		errs.add("username", "El nombre debe tener al menos 3 caracteres")
		return nil, errs
	}
	return form, nil
}
