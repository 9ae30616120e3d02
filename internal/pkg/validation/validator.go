package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "betaware/internal/errors"
)

var digitsRegex = regexp.MustCompile(`^\d+$`)

// Mensagens específicas por campo/regra; as demais caem nas mensagens genéricas.
var fieldMessages = map[string]string{
	"username.required":  "O username é obrigatório",
	"nome.required":      "O nome é obrigatório",
	"cpf.required":       "O CPF é obrigatório",
	"cpf.len":            "CPF deve conter 11 dígitos",
	"cpf.digits":         "CPF deve conter 11 dígitos",
	"cep.required":       "O CEP é obrigatório",
	"cep.len":            "CEP deve conter 8 dígitos",
	"cep.digits":         "CEP deve conter 8 dígitos",
	"senha.required":     "A senha é obrigatória",
	"senha.maxbytes":     "A senha deve ter no máximo 72 bytes",
	"email.required":     "O email é obrigatório",
	"email.email":        "Email inválido",
	"perfil.oneof":       "Perfil deve ser USER ou ADMIN",
	"categoria.required": "A categoria é obrigatória",
	"jogo.required":      "O jogo é obrigatório",
	"valor.gte":          "O valor deve ser de no mínimo 0,01",
	"valor.lte":          "O valor excede o máximo permitido",
}

// Validator encapsula o validator/v10 com as regras e mensagens da API.
type Validator struct {
	v *validator.Validate
}

// New cria um Validator que reporta os campos pelo nome JSON e conhece as regras
// "digits" e "maxbytes".
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Só dígitos ASCII; "numeric" do validator aceita sinal e ponto decimal.
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(fl.Field().String())
	})

	// Tamanho em bytes UTF-8; "max" conta runas. O bcrypt só aceita até 72 bytes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &Validator{v: v}
}

// Struct valida o payload e devolve um ValidationError com a primeira falha encontrada.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return apperror.NewValidationError("Payload inválido.")
	}

	return apperror.NewValidationError(message(validationErrs[0]))
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", fe.Field())
	case "max":
		return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("O campo %s deve ter no máximo %s bytes", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("O campo %s deve ter exatamente %s caracteres", fe.Field(), fe.Param())
	case "email":
		return "Email inválido"
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um de: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido", fe.Field())
	}
}
