package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrorCampo describe la violación de una regla sobre un campo del DTO.
type ErrorCampo struct {
	Campo string
	Regla string
	Valor string
}

var validate = validator.New()

func init() {
	// decimal.Decimal no es comparable con las reglas numéricas estándar;
	// se registra como tipo custom que valida > 0.
	validate.RegisterValidation("decimal_positivo", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
			return d.GreaterThan(decimal.Zero)
		}
		return false
	})
	validate.RegisterValidation("decimal_no_negativo", func(fl validator.FieldLevel) bool {
		if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
			return !d.IsNegative()
		}
		return false
	})
}

// ValidateStruct valida un DTO con las etiquetas `validate` y devuelve las
// violaciones. Un valor que no es struct (InvalidValidationError) se reporta
// como violación única en vez de entrar en pánico.
func ValidateStruct(data interface{}) []*ErrorCampo {
	var errores []*ErrorCampo
	err := validate.Struct(data)
	if err != nil {
		var violaciones validator.ValidationErrors
		if !errors.As(err, &violaciones) {
			return []*ErrorCampo{{Campo: "", Regla: "struct", Valor: err.Error()}}
		}
		for _, fe := range violaciones {
			errores = append(errores, &ErrorCampo{
				Campo: fe.StructNamespace(),
				Regla: fe.Tag(),
				Valor: fe.Param(),
			})
		}
	}
	return errores
}
