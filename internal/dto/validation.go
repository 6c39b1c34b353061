package dto

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SscSPs/parenting_journal_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// maxMoodRunes bounds a mood marker; multi-codepoint emoji (ZWJ sequences) stay well below it.
const maxMoodRunes = 8

// RegisterValidators adds the custom tags used by request DTOs to v:
//
//	mood      - a short marker without whitespace, e.g. "😊"
//	entrytype - shared_journey or quick_moment
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("mood", validateMood); err != nil {
		return err
	}
	return v.RegisterValidation("entrytype", validateEntryType)
}

func validateMood(fl validator.FieldLevel) bool {
	mood := fl.Field().String()
	if mood == "" || utf8.RuneCountInString(mood) > maxMoodRunes {
		return false
	}
	return !strings.ContainsFunc(mood, unicode.IsSpace)
}

func validateEntryType(fl validator.FieldLevel) bool {
	t := domain.EntryType(fl.Field().String())
	return t != "" && t.IsValid()
}
