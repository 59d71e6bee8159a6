package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid verifica que el dominio del correo resuelva (MX o
// A). Solo se usa en el registro de usuarios del panel; las citas
// validan el correo con los validadores de dominio puros.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
