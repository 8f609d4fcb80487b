package config

import (
	"github.com/avila-gabriel/game-balance/internal/systems/prestige"
	"github.com/avila-gabriel/game-balance/internal/systems/production"
	"github.com/avila-gabriel/game-balance/internal/systems/upgradecurve"
)

func productionEnv(c CoreEnv) production.Env {
	return production.Env{
		UpgradeCostBase:   c.UpgradeCostBase,
		UpgradeCostGrowth: c.UpgradeCostGrowth,
		GainPerLevel:      c.GainPerLevel,
		Leak:              c.Leak,
		StorageCap:        c.StorageCap,
	}
}

func curveEnv(c CurveEnv) upgradecurve.Env {
	return upgradecurve.Env{Levels: c.Levels, GainPerLevel: c.GainPerLevel}
}

func prestigeEnv(c PrestigeEnv) prestige.Env {
	return prestige.Env{SessionGoalMinutes: c.SessionGoalMinutes}
}
