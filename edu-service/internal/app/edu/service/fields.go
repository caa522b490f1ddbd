package service

import (
	"fmt"
	"strings"
	"time"
)

// requiredField - обязательное строковое поле входной структуры
type requiredField struct {
	name  string
	value *string
}

// trimRequired обрезает пробелы на месте и проверяет, что поле не пустое
func trimRequired(fields ...requiredField) error {
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// fieldPatch собирает $set для частичного обновления
// Поля, равные nil во входной структуре, не попадают в обновление
type fieldPatch struct {
	fields map[string]interface{}
	err    error
}

func newFieldPatch() *fieldPatch {
	return &fieldPatch{fields: make(map[string]interface{})}
}

// required - строка, которую нельзя сделать пустой
func (p *fieldPatch) required(key string, value *string) *fieldPatch {
	if value == nil || p.err != nil {
		return p
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		p.err = fmt.Errorf("%w: %s must not be empty", ErrValidation, key)
		return p
	}
	p.fields[key] = trimmed
	return p
}

func (p *fieldPatch) optional(key string, value *string) *fieldPatch {
	if value != nil {
		p.fields[key] = strings.TrimSpace(*value)
	}
	return p
}

func (p *fieldPatch) email(key string, value *string) *fieldPatch {
	if value != nil {
		p.fields[key] = normalizeEmail(*value)
	}
	return p
}

func (p *fieldPatch) date(key string, value *string) *fieldPatch {
	if value == nil || p.err != nil {
		return p
	}
	parsed, err := parseDate(*value)
	if err != nil {
		p.err = err
		return p
	}
	p.fields[key] = parsed
	return p
}

func (p *fieldPatch) set(key string, value interface{}) *fieldPatch {
	p.fields[key] = value
	return p
}

// build возвращает поля для $set; пустой patch считается ошибкой клиента
func (p *fieldPatch) build() (map[string]interface{}, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	return p.fields, nil
}

// parseDate принимает YYYY-MM-DD или RFC 3339
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC 3339", ErrValidation)
}
