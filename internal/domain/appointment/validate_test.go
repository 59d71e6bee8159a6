package appointment

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"nombre completo", "Juan Pérez", true},
		{"con acentos y eñe", "María Muñoz Ibáñez", true},
		{"vacío", "", false},
		{"solo espacios", "   ", false},
		{"una letra", "J", false},
		{"con dígitos", "Juan 2", false},
		{"con símbolos", "Juan_Pérez", false},
		{"demasiado largo", strings.Repeat("a", 101), false},
		{"largo máximo", strings.Repeat("a", 100), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := ValidateName(tc.value)
			if (msg == "") != tc.valid {
				t.Fatalf("ValidateName(%q) = %q, valid esperado %v", tc.value, msg, tc.valid)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"3001234567",
		"300 123 4567",
		"300-123-4567",
		"(300) 123 4567",
		"+573001234567",
		"573001234567",
		"+57 300 123 4567",
	}
	for _, v := range valid {
		if msg := ValidatePhone(v); msg != "" {
			t.Errorf("ValidatePhone(%q) = %q, se esperaba válido", v, msg)
		}
	}

	invalid := []string{
		"",
		"123",
		"30012345",      // corto
		"30012345678",   // largo
		"4001234567",    // no empieza por 3
		"+583001234567", // prefijo ajeno
		"300123456a",
	}
	for _, v := range invalid {
		if msg := ValidatePhone(v); msg == "" {
			t.Errorf("ValidatePhone(%q) aceptado, se esperaba rechazo", v)
		}
	}
}

func TestValidatePhoneIdempotent(t *testing.T) {
	for _, v := range []string{"3001234567", "123", ""} {
		if ValidatePhone(v) != ValidatePhone(v) {
			t.Fatalf("ValidatePhone(%q) no es idempotente", v)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if msg := ValidateEmail("juan@test.com"); msg != "" {
		t.Fatalf("correo válido rechazado: %q", msg)
	}
	for _, v := range []string{"", "sin-arroba", "a@b", "a@b.", "a b@c.com", "a@b.c"} {
		if ValidateEmail(v) == "" {
			t.Errorf("ValidateEmail(%q) aceptado, se esperaba rechazo", v)
		}
	}

	long := strings.Repeat("a", 250) + "@x.com"
	if ValidateEmail(long) == "" {
		t.Error("correo de más de 254 caracteres aceptado")
	}
}

func TestValidateEmailStrict(t *testing.T) {
	if msg := ValidateEmailStrict("juan@test.com"); msg != "" {
		t.Fatalf("correo válido rechazado por la variante estricta: %q", msg)
	}

	for _, v := range []string{
		"juan@example.comcom",  // etiqueta final duplicada
		"juan@example.com.com", // etiquetas consecutivas repetidas
		"juan@test.com.",
		"ju@an@test.com",
	} {
		if ValidateEmailStrict(v) == "" {
			t.Errorf("ValidateEmailStrict(%q) aceptado, se esperaba rechazo", v)
		}
	}
}

func TestValidateDocumentType(t *testing.T) {
	for _, v := range []string{"CC", "CE", "NIT", "PASAPORTE", "TI"} {
		if msg := ValidateDocumentType(v); msg != "" {
			t.Errorf("tipo %q rechazado: %q", v, msg)
		}
	}
	for _, v := range []string{"", "DNI", "cc", "RUT"} {
		if ValidateDocumentType(v) == "" {
			t.Errorf("tipo %q aceptado, se esperaba rechazo", v)
		}
	}
}

func TestValidateDocumentNumber(t *testing.T) {
	cases := []struct {
		docType string
		number  string
		valid   bool
	}{
		{"CC", "12345678", true},
		{"CC", "1234567890", true},
		{"CC", "1234567", false},   // 7 dígitos
		{"CC", "12345678901", false},
		{"CC", "12.345.678", true}, // separadores se limpian
		{"CC", "1234567a", false},  // solo dígitos

		{"CE", "123456", true},
		{"CE", "12345", false},

		{"NIT", "900123456", true},
		{"NIT", "900123", false},

		{"PASAPORTE", "AB123456", true}, // 8 alfanuméricos
		{"PASAPORTE", "AB1", false},     // mínimo 6
		{"PASAPORTE", strings.Repeat("A", 21), false},
		{"PASAPORTE", "AB-123456", true},

		{"TI", "1234567890", true},
		{"TI", "12345678901", true},
		{"TI", "123456789", false},

		{"DNI", "12345678", false}, // tipo desconocido siempre falla
		{"CC", "", false},
	}

	for _, tc := range cases {
		msg := ValidateDocumentNumber(tc.number, tc.docType)
		if (msg == "") != tc.valid {
			t.Errorf("ValidateDocumentNumber(%q, %q) = %q, valid esperado %v",
				tc.number, tc.docType, msg, tc.valid)
		}
	}
}

func TestValidateDate(t *testing.T) {
	today := testNow.Format(DateLayout)
	tomorrow := testNow.AddDate(0, 0, 1).Format(DateLayout)
	yesterday := testNow.AddDate(0, 0, -1).Format(DateLayout)

	if msg := ValidateDate(tomorrow, testNow); msg != "" {
		t.Errorf("mañana rechazada: %q", msg)
	}
	// hoy cuenta como válido: la regla corta en la medianoche
	if msg := ValidateDate(today, testNow); msg != "" {
		t.Errorf("hoy rechazado: %q", msg)
	}
	if ValidateDate(yesterday, testNow) == "" {
		t.Error("ayer aceptado en el flujo de creación")
	}
	if ValidateDate("", testNow) == "" {
		t.Error("fecha vacía aceptada")
	}
	if ValidateDate("10/03/2026", testNow) == "" {
		t.Error("formato no ISO aceptado")
	}
}

func TestValidateDateEditAllowsPast(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(DateLayout)
	if msg := ValidateDateEdit(yesterday); msg != "" {
		t.Fatalf("el formulario de edición debe aceptar fechas pasadas: %q", msg)
	}
	if ValidateDateEdit("") == "" {
		t.Error("fecha vacía aceptada en edición")
	}
}

func TestValidateTime(t *testing.T) {
	for _, v := range []string{"08:00 am", "09:00 am", "11:30 am", "12:00 pm", "01:30 pm", "05:30 pm"} {
		if msg := ValidateTime(v); msg != "" {
			t.Errorf("slot %q rechazado: %q", v, msg)
		}
	}
	for _, v := range []string{"", "07:30 am", "06:00 pm", "09:15 am", "25:00 pm", "mediodía", "9:30zz am", "09:00x pm"} {
		if ValidateTime(v) == "" {
			t.Errorf("slot %q aceptado, se esperaba rechazo", v)
		}
	}
}

func TestValidateTimeEdit(t *testing.T) {
	// la edición valida por pertenencia a la lista fija, que omite la
	// franja del mediodía
	if msg := ValidateTimeEdit("09:00 am"); msg != "" {
		t.Errorf("slot de la lista rechazado: %q", msg)
	}
	if ValidateTimeEdit("12:30 pm") == "" {
		t.Error("slot del mediodía aceptado en edición")
	}
	if ValidateTimeEdit("") == "" {
		t.Error("hora vacía aceptada en edición")
	}
}

func TestValidateService(t *testing.T) {
	for _, v := range []string{"Avalúos", "Gestión de Alquileres", "Asesoría Legal"} {
		if msg := ValidateService(v); msg != "" {
			t.Errorf("servicio %q rechazado: %q", v, msg)
		}
	}
	for _, v := range []string{"", "Ventas", "avalúos"} {
		if ValidateService(v) == "" {
			t.Errorf("servicio %q aceptado, se esperaba rechazo", v)
		}
	}
}

// Escenario completo del flujo de creación: todos los campos del
// ejemplo pasan.
func TestValidExampleScenario(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1).Format(DateLayout)

	checks := map[string]string{
		"cliente":         ValidateName("Juan Pérez"),
		"telefono":        ValidatePhone("300 123 4567"),
		"email":           ValidateEmail("juan@test.com"),
		"tipoDocumento":   ValidateDocumentType("CC"),
		"numeroDocumento": ValidateDocumentNumber("12345678", "CC"),
		"fecha":           ValidateDate(tomorrow, testNow),
		"hora":            ValidateTime("09:00 am"),
		"servicio":        ValidateService("Avalúos"),
	}

	for field, msg := range checks {
		if msg != "" {
			t.Errorf("campo %s del escenario válido rechazado: %q", field, msg)
		}
	}
}
