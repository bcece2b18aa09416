// Package validation checks post payloads before any store access and shapes
// failures as a field-keyed message map that handlers return verbatim.
package validation

import (
	"reflect"
	"strings"

	"go-blog-api/models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func New() *Validator {
	v := validator.New()

	// Report errors under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// PostInput validates a create payload. A nil result means the payload is valid.
func (v *Validator) PostInput(req models.CreatePostRequest) map[string][]string {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrors := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["payload"] = []string{err.Error()}
		return fieldErrors
	}
	for _, fe := range verrs {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Translate(v.trans))
	}
	return fieldErrors
}

// PostPatch validates a partial update: every field is optional, present
// fields obey the same rules as on create.
func (v *Validator) PostPatch(req models.UpdatePostRequest) map[string][]string {
	fieldErrors := map[string][]string{}
	if req.Title != nil {
		v.varField(fieldErrors, "title", *req.Title, "min=1,max=120")
	}
	if req.Content != nil {
		v.varField(fieldErrors, "content", *req.Content, "required")
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (v *Validator) varField(fieldErrors map[string][]string, name, value, tag string) {
	err := v.validate.Var(value, tag)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors[name] = append(fieldErrors[name], err.Error())
		return
	}
	for _, fe := range verrs {
		fieldErrors[name] = append(fieldErrors[name], fe.Translate(v.trans))
	}
}
