// Package models builds ready-made DiscreteDP models.
//
// CakeEating discretizes the classic cake-eating problem: an agent holding
// a cake of size x chooses how much cake x' ≤ x to keep for tomorrow and
// consumes the rest, earning u(x − x') = √(x − x'). States and actions share
// one grid, so action a means "keep Grid[a]"; actions with Grid[a] > Grid[s]
// carry reward −Inf and are never chosen.
//
// The returned Model plugs straight into ddp.New:
//
//	m, _ := models.CakeEating(50, 1.0)
//	d, _ := ddp.New(m.Rewards, m.Transitions, 0.95)
package models
