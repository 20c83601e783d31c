package course

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/baseldt/lms/core"
)

// FormCategories are the categories a new course may be filed under.
var FormCategories = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning",
	"DevOps",
	"Design",
	"Business",
	"Marketing",
}

var (
	categoryTag  = "category"
	categoryText = "category must be one of: " + strings.Join(FormCategories, ", ")
)

// InitValidators registers the course validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(categoryTag, categoryValidation)
	core.RegisterCustomTranslation(validate, translator, categoryTag, categoryText)
}

func categoryValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, c := range FormCategories {
		if c == val {
			return true
		}
	}
	return false
}
