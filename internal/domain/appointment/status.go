package appointment

// ===============================
// Estado de la cita
// ===============================

type Status string

const (
	StatusScheduled Status = "programada"
	StatusConfirmed Status = "confirmada"
	StatusCompleted Status = "completada"
	StatusCancelled Status = "cancelada"
)

var AllStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Las transiciones de estado no tienen orden forzado: cualquier estado
// es alcanzable desde cualquier otro (simplificación deliberada del
// flujo del panel).
func IsValidStatus(s Status) bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
