package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "joao@example.com", NormalizeEmail("  Joao@Example.COM "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
}

func TestIsEmailDomainValidMalformed(t *testing.T) {
	// casos que falham antes de qualquer consulta DNS
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("termina-em-arroba@"))
	assert.False(t, IsEmailDomainValid(""))
}
