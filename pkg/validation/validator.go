package validation

import (
	"strings"

	"github.com/MHDGouse/Inventory-Backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("unit", validateUnit)
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

func validateCategory(fl validator.FieldLevel) bool {
	category := domain.ProductCategory(fl.Field().String())

	for _, c := range domain.ProductCategories {
		if c == category {
			return true
		}
	}

	return false
}

func validateUnit(fl validator.FieldLevel) bool {
	switch domain.Unit(fl.Field().String()) {
	case domain.UnitLiters, domain.UnitMilliliter, domain.UnitGrams, domain.UnitKilograms, domain.UnitUnits:
		return true
	default:
		return false
	}
}

// ValidationError descreve uma falha de validação de campo para a resposta da API
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   lowerFirst(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	field := lowerFirst(e.Field())

	switch e.Tag() {
	case "required", "required_without":
		return field + " é obrigatório"
	case "gt":
		return field + " deve ser maior que " + e.Param()
	case "gte":
		return field + " deve ser maior ou igual a " + e.Param()
	case "min":
		return field + " deve ter pelo menos " + e.Param() + " caracteres"
	case "max":
		return field + " deve ter no máximo " + e.Param() + " caracteres"
	case "oneof":
		return field + " deve ser um de: " + e.Param()
	case "url":
		return field + " deve ser uma URL válida"
	case "category":
		return "categoria inválida. Valores aceitos: Milk, Curd, Ice-Cream, Juice, Paneer, Other"
	case "unit":
		return "unidade inválida. Valores aceitos: liters, milliliter, grams, kilograms, units"
	default:
		return field + " é inválido"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
