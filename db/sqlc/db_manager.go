package sqlc

import (
	"net"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	States    *StateStore
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier, serverIpNet net.IPNet) DbManager {
	return DbManager{
		States:    NewStateStore(queries),
		Analytics: NewAnalyticsManager(queries, serverIpNet),
	}
}
