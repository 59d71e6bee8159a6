package appointment

import (
	"fmt"
	"regexp"
	"strings"
)

// ===============================
// Franjas horarias
// ===============================

const (
	openingHour = 8.0  // 08:00 am
	closingHour = 18.0 // 06:00 pm, exclusivo

	middayBreakStart = 12.0 // 12:00 pm
	middayBreakEnd   = 14.0 // 02:00 pm
)

// formatSlot convierte una hora decimal (17.5) al formato de 12 horas
// que viaja en los registros ("05:30 pm").
func formatSlot(hour float64) string {
	h := int(hour)
	m := 0
	if hour != float64(h) {
		m = 30
	}

	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", h12, m, suffix)
}

var slotTimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// ParseSlot interpreta un slot de 12 horas ("05:30 pm") como hora
// decimal (17.5). Devuelve false si la cadena no tiene esa forma o los
// minutos no caen en una media hora exacta.
func ParseSlot(s string) (float64, bool) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(parts) != 2 {
		return 0, false
	}

	suffix := parts[1]
	if suffix != "am" && suffix != "pm" {
		return 0, false
	}

	// Sscanf deja pasar basura al final ("9:30zz"); la forma completa
	// se exige antes de parsear.
	if !slotTimeRe.MatchString(parts[0]) {
		return 0, false
	}

	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 1 || h > 12 || (m != 0 && m != 30) {
		return 0, false
	}

	if suffix == "pm" && h != 12 {
		h += 12
	}
	if suffix == "am" && h == 12 {
		h = 0
	}

	return float64(h) + float64(m)/60, true
}

// Slots genera las franjas de media hora del flujo de creación,
// "08:00 am" hasta "05:30 pm".
func Slots() []string {
	return generateSlots(false)
}

// SlotsWithMiddayBreak omite la franja de cierre del mediodía
// (12:00 pm a 02:00 pm).
func SlotsWithMiddayBreak() []string {
	return generateSlots(true)
}

func generateSlots(skipMidday bool) []string {
	var out []string
	for h := openingHour; h < closingHour; h += 0.5 {
		if skipMidday && h >= middayBreakStart && h < middayBreakEnd {
			continue
		}
		out = append(out, formatSlot(h))
	}
	return out
}

// EditableSlots es la lista fija contra la que valida el formulario de
// edición (pertenencia, no rango recalculado).
var EditableSlots = SlotsWithMiddayBreak()
