package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"sustainability-dashboard/internal/entities"
)

// RegisterCustomValidations регистрирует доменные правила в экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("metric_name", isNoteSubject); err != nil {
		return err
	}
	if err := v.RegisterValidation("view_selector", isViewSelector); err != nil {
		return err
	}
	if err := v.RegisterValidation("filter_dimension", isFilterDimension); err != nil {
		return err
	}
	return nil
}

// metric_name: заголовок страницы аналитики, к которой можно привязать заметку.
func isNoteSubject(fl validator.FieldLevel) bool {
	return entities.IsNoteSubject(fl.Field().String())
}

func isViewSelector(fl validator.FieldLevel) bool {
	return entities.ViewSelector(fl.Field().String()).Valid()
}

func isFilterDimension(fl validator.FieldLevel) bool {
	return entities.FilterDimension(fl.Field().String()).Valid()
}
