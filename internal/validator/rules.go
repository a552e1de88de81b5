package validator

import (
	"log"
	"regexp"

	"repogenesis_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// registerCustomRules регистрирует кастомные функции валидации
// в переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Ошибка регистрации правила - ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-job-type': in-office / remote / hybrid
	mustRegister("is-job-type", validateJobType)

	// 'is-duration': срок стажировки
	mustRegister("is-duration", validateDuration)

	// 'phone': опциональный телефон в свободном формате
	mustRegister("phone", validatePhone)
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения ловит 'required'
	}
	switch models.JobType(value) {
	case models.JobTypeInOffice, models.JobTypeRemote, models.JobTypeHybrid:
		return true
	default:
		return false
	}
}

func validateDuration(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InternshipDuration(value) {
	case models.DurationOneMonth, models.DurationTwoMonths, models.DurationThreeMonths, models.DurationSixMonths:
		return true
	default:
		return false
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRe.MatchString(value)
}
