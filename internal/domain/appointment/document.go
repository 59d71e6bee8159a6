package appointment

// ===============================
// Tipos de documento (Colombia)
// ===============================

type DocumentType string

const (
	DocCC       DocumentType = "CC"        // cédula de ciudadanía
	DocCE       DocumentType = "CE"        // cédula de extranjería
	DocNIT      DocumentType = "NIT"       // número de identificación tributaria
	DocPassport DocumentType = "PASAPORTE" // pasaporte
	DocTI       DocumentType = "TI"        // tarjeta de identidad
)

var AllDocumentTypes = []DocumentType{
	DocCC,
	DocCE,
	DocNIT,
	DocPassport,
	DocTI,
}

func IsValidDocumentType(t DocumentType) bool {
	for _, dt := range AllDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// documentRule define longitud y juego de caracteres del número según
// el tipo de documento.
type documentRule struct {
	minLen       int
	maxLen       int
	alphanumeric bool
	label        string
}

var documentRules = map[DocumentType]documentRule{
	DocCC:       {minLen: 8, maxLen: 10, label: "la cédula de ciudadanía debe tener entre 8 y 10 dígitos"},
	DocCE:       {minLen: 6, maxLen: 10, label: "la cédula de extranjería debe tener entre 6 y 10 dígitos"},
	DocNIT:      {minLen: 8, maxLen: 10, label: "el NIT debe tener entre 8 y 10 dígitos"},
	DocPassport: {minLen: 6, maxLen: 20, alphanumeric: true, label: "el pasaporte debe tener entre 6 y 20 caracteres alfanuméricos"},
	DocTI:       {minLen: 10, maxLen: 11, label: "la tarjeta de identidad debe tener entre 10 y 11 dígitos"},
}
