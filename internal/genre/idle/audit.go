package idle

import (
	"github.com/avila-gabriel/game-balance/internal/audit"
	"github.com/avila-gabriel/game-balance/internal/systems/offline"
	"github.com/avila-gabriel/game-balance/internal/systems/prestige"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
	"github.com/avila-gabriel/game-balance/internal/systems/upgradecurve"
)

// AuditFields lists every θ field of a pass against the bounds Balance uses.
func AuditFields(p Pass) []audit.Field {
	var fields []audit.Field
	fields = append(fields, production.AuditFields(p.Core.Theta, production.SoftBounds())...)
	fields = append(fields, upgradecurve.AuditFields(p.Curve.Theta, upgradecurve.SoftBounds())...)
	fields = append(fields, prestige.AuditFields(p.Prestige.Theta, prestige.SoftBounds())...)
	fields = append(fields, offline.AuditFields(p.Offline.Theta, offline.SoftBounds())...)
	return fields
}
