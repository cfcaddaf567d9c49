package store

import (
	"github.com/cnet-digital/backoffice-api/schema"
)

type countRow struct {
	K string
	N int64
}

// RequestStatistics aggregates request counts per category, status and
// city in the store, so the statistics views never pull the raw list.
func (s *BackOfficeStore) RequestStatistics() (*schema.RequestStatistics, error) {
	statistics := schema.RequestStatistics{
		ByCategory: map[string]int64{},
		ByStatus:   map[string]int64{},
		ByCity:     map[string]int64{},
	}

	if err := s.ormDB.Model(schema.Request{}).
		Count(&statistics.Total).Error; err != nil {
		return nil, err
	}

	groups := []struct {
		column string
		into   map[string]int64
	}{
		{"offre_title", statistics.ByCategory},
		{"status", statistics.ByStatus},
		{"city", statistics.ByCity},
	}

	for _, g := range groups {
		rows := []countRow{}
		if err := s.ormDB.Model(schema.Request{}).
			Select(g.column + ` AS k, COUNT(*) AS n`).
			Group(g.column).
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			g.into[row.K] = row.N
		}
	}

	return &statistics, nil
}
