// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdd

import "fmt"

// traceUnique logs a unique-table probe when built with -tags debug.
func (m *Manager) traceUnique(level int32, hit bool) {
	if debugEnabled {
		m.logger.Debugw("unique probe", "level", level, "hit", hit)
	}
}

// zapStatsLine renders the human-readable summary Manager.Stats returns,
// alongside the structured fields the same counters feed into Metrics()
// and the zap logger (§4.12 expansion).
func zapStatsLine(m *Manager) string {
	return fmt.Sprintf(
		"xdd: varnum=%d nodesize=%d live=%d dead=%d gc=%d cache=%d hit=%d miss=%d ratio=%.3f",
		m.nvars, m.store.size(), m.store.live(), m.deadCount, m.gcCount,
		len(m.cache.table), m.cache.hit, m.cache.miss, m.cache.ratio(),
	)
}
