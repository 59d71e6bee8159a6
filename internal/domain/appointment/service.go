package appointment

// Servicios que ofrece la inmobiliaria.
type Service string

const (
	ServiceAppraisal   Service = "Avalúos"
	ServiceRentals     Service = "Gestión de Alquileres"
	ServiceLegalAdvice Service = "Asesoría Legal"
)

var AllServices = []Service{
	ServiceAppraisal,
	ServiceRentals,
	ServiceLegalAdvice,
}

func IsValidService(s Service) bool {
	for _, sv := range AllServices {
		if s == sv {
			return true
		}
	}
	return false
}
