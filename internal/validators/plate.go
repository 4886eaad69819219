package validators

import (
	"regexp"
	"strings"
)

// Placas brasileiras: padrão antigo ABC-1234 e Mercosul ABC1D23
var (
	plateLegacy   = regexp.MustCompile(`^[A-Z]{3}-?[0-9]{4}$`)
	plateMercosul = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

func IsPlateValid(plate string) bool {
	p := strings.ToUpper(strings.TrimSpace(plate))
	if p == "" {
		return false
	}
	return plateLegacy.MatchString(p) || plateMercosul.MatchString(p)
}

func NormalizePlate(plate string) string {
	p := strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(p, "-", "")
}
