package kingdom

import (
	"time"

	"github.com/osse101/kingdomroll/internal/domain"
)

// EffectiveStamina returns the player's stamina after applying regen
// accrued since the last stamina write, capped at the maximum.
func EffectiveStamina(p *domain.Player, now time.Time) int {
	if p.Stamina >= domain.StaminaMax {
		return domain.StaminaMax
	}
	elapsed := now.Sub(p.StaminaUpdatedAt)
	if elapsed < 0 {
		return p.Stamina
	}
	regen := int(elapsed / domain.StaminaRegenInterval)
	stamina := p.Stamina + regen
	if stamina > domain.StaminaMax {
		return domain.StaminaMax
	}
	return stamina
}

// SpendStamina deducts cost from the player's effective stamina and
// resets the regen clock. Returns domain.ErrInsufficientStamina when
// the player cannot cover the cost.
func SpendStamina(p *domain.Player, cost int, now time.Time) error {
	effective := EffectiveStamina(p, now)
	if effective < cost {
		return domain.ErrInsufficientStamina
	}
	p.Stamina = effective - cost
	p.StaminaUpdatedAt = now
	return nil
}
