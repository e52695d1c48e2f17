package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager counts per server events. Every row is keyed by the
// ip of the server the peer runs on.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) IncrementRoomsCreatedCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementRoomsCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementMatchesPairedCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsIncrementMatchesPairedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetRoomsCreatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetRoomsCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetMatchesPairedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.AnalyticsGetMatchesPairedCount(ctx, a.serverIp)
}
