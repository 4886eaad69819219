package validators

import (
	"net"
	"strings"
)

// NormalizeEmail prepara o email para busca e unicidade no banco.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid checa se o domínio resolve de fato (MX ou A/AAAA)
// antes de aceitar o cadastro — corta erro de digitação cedo.
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
