package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
)

// Con fases de 8: 1-8 → fase 1, 9-16 → fase 2, 17-24 → fase 3.
func TestPhaseForNumber_BordesDeFase(t *testing.T) {
	cases := []struct {
		number, want int
	}{
		{1, 1}, {8, 1},
		{9, 2}, {16, 2},
		{17, 3}, {24, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.PhaseForNumber(c.number, 8),
			"sesión %d debe caer en fase %d", c.number, c.want)
	}
}

// Tamaño de fase inválido degrada a fase 1 en vez de dividir por cero.
func TestPhaseForNumber_TamanoInvalido(t *testing.T) {
	assert.Equal(t, 1, entity.PhaseForNumber(5, 0))
	assert.Equal(t, 1, entity.PhaseForNumber(5, -1))
}

// La expiración es exacta: una sesión vence en el instante ExpiresAt, no después.
func TestUserSessionExpired_InstanteExacto(t *testing.T) {
	now := time.Now()
	s := &entity.UserSession{ExpiresAt: now}

	assert.True(t, s.Expired(now), "en el instante exacto ya está vencida")
	assert.True(t, s.Expired(now.Add(time.Second)))
	assert.False(t, s.Expired(now.Add(-time.Second)))
}
