package appointment

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ======================================================
// Validadores de campo
// ======================================================
//
// Cada validador es una función pura: (valor[, valor relacionado]) ->
// mensaje de error, o "" si el campo es válido. Los tres puntos de
// invocación (cambio de campo, avance de paso, envío final) usan estas
// mismas funciones.

const DateLayout = "2006-01-02"

var (
	nameRe       = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s]+$`)
	phoneRe      = regexp.MustCompile(`^(\+?57)?3[0-9]{9}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)
	digitsRe     = regexp.MustCompile(`^[0-9]+$`)
	alphaNumRe   = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	phoneStripRe = regexp.MustCompile(`[\s\-()]`)
	docStripRe   = regexp.MustCompile(`[\s\-.]`)
)

func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "El nombre es obligatorio"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "El nombre debe tener al menos 2 caracteres"
	}
	if utf8.RuneCountInString(trimmed) > 100 {
		return "El nombre no puede superar los 100 caracteres"
	}
	if !nameRe.MatchString(trimmed) {
		return "El nombre solo puede contener letras y espacios"
	}
	return ""
}

func ValidatePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "El teléfono es obligatorio"
	}
	cleaned := phoneStripRe.ReplaceAllString(phone, "")
	if !phoneRe.MatchString(cleaned) {
		return "Ingresa un número de celular colombiano válido (3XX XXX XXXX)"
	}
	return ""
}

func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "El correo electrónico es obligatorio"
	}
	if len(trimmed) > 254 {
		return "El correo electrónico es demasiado largo"
	}
	if !emailRe.MatchString(trimmed) {
		return "Ingresa un correo electrónico válido"
	}
	return ""
}

// ValidateEmailStrict es la variante del formulario de edición: además
// del patrón básico rechaza puntos finales, más de una arroba y
// dominios con etiquetas consecutivas duplicadas ("example.comcom").
func ValidateEmailStrict(email string) string {
	if msg := ValidateEmail(email); msg != "" {
		return msg
	}

	trimmed := strings.TrimSpace(email)
	if strings.HasSuffix(trimmed, ".") {
		return "Ingresa un correo electrónico válido"
	}
	if strings.Count(trimmed, "@") != 1 {
		return "Ingresa un correo electrónico válido"
	}

	domain := trimmed[strings.Index(trimmed, "@")+1:]
	labels := strings.Split(domain, ".")
	for i := 1; i < len(labels); i++ {
		if labels[i] != "" && labels[i] == labels[i-1] {
			return "Ingresa un correo electrónico válido"
		}
	}

	// etiqueta final con duplicación interna: "comcom", "coco"
	last := labels[len(labels)-1]
	if n := len(last); n >= 4 && n%2 == 0 && last[:n/2] == last[n/2:] {
		return "Ingresa un correo electrónico válido"
	}

	return ""
}

func ValidateDocumentType(docType string) string {
	if strings.TrimSpace(docType) == "" {
		return "Selecciona un tipo de documento"
	}
	if !IsValidDocumentType(DocumentType(docType)) {
		return "Tipo de documento no válido"
	}
	return ""
}

// ValidateDocumentNumber depende del tipo: la pareja se revalida cada
// vez que cambia cualquiera de los dos campos.
func ValidateDocumentNumber(number, docType string) string {
	if strings.TrimSpace(number) == "" {
		return "El número de documento es obligatorio"
	}

	rule, ok := documentRules[DocumentType(docType)]
	if !ok {
		return "Selecciona primero un tipo de documento válido"
	}

	cleaned := docStripRe.ReplaceAllString(number, "")

	charsetRe := digitsRe
	if rule.alphanumeric {
		charsetRe = alphaNumRe
	}
	if !charsetRe.MatchString(cleaned) {
		return rule.label
	}
	if len(cleaned) < rule.minLen || len(cleaned) > rule.maxLen {
		return rule.label
	}
	return ""
}

// ValidateDate exige fecha presente y no anterior a hoy (medianoche de
// `now`). Es la regla del asistente de creación.
func ValidateDate(dateStr string, now time.Time) string {
	if strings.TrimSpace(dateStr) == "" {
		return "La fecha es obligatoria"
	}

	d, err := time.ParseInLocation(DateLayout, dateStr, now.Location())
	if err != nil {
		return "Fecha no válida"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return "La fecha no puede ser anterior a hoy"
	}
	return ""
}

// ValidateDateEdit es la variante laxa del formulario de edición: las
// fechas pasadas se aceptan sin aviso.
func ValidateDateEdit(dateStr string) string {
	if strings.TrimSpace(dateStr) == "" {
		return "La fecha es obligatoria"
	}
	if _, err := time.Parse(DateLayout, dateStr); err != nil {
		return "Fecha no válida"
	}
	return ""
}

// ValidateTime valida el flujo de creación: slot de 12 horas dentro del
// horario de atención, en incrementos de media hora.
func ValidateTime(timeStr string) string {
	if strings.TrimSpace(timeStr) == "" {
		return "La hora es obligatoria"
	}

	hour, ok := ParseSlot(timeStr)
	if !ok {
		return "Hora no válida"
	}
	if hour < openingHour || hour >= closingHour {
		return "La hora debe estar entre las 08:00 am y las 05:30 pm"
	}
	return ""
}

// ValidateTimeEdit valida por pertenencia a la lista fija de slots del
// formulario de edición.
func ValidateTimeEdit(timeStr string) string {
	if strings.TrimSpace(timeStr) == "" {
		return "La hora es obligatoria"
	}
	for _, s := range EditableSlots {
		if s == timeStr {
			return ""
		}
	}
	return "Hora no válida"
}

func ValidateService(service string) string {
	if strings.TrimSpace(service) == "" {
		return "Selecciona un servicio"
	}
	if !IsValidService(Service(service)) {
		return "Servicio no válido"
	}
	return ""
}
