package utils

import (
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

type MongoPoolMetrics struct {
	ActiveConnections  int64
	CreatedConnections int64
	ClosedConnections  int64
	LastCheckTime      time.Time
}

var poolMetrics MongoPoolMetrics

// PoolMonitor wires connection pool events into the pool counters.
func PoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				atomic.AddInt64(&poolMetrics.CreatedConnections, 1)
			case event.ConnectionClosed:
				atomic.AddInt64(&poolMetrics.ClosedConnections, 1)
			case event.GetSucceeded:
				atomic.AddInt64(&poolMetrics.ActiveConnections, 1)
			case event.ConnectionReturned:
				atomic.AddInt64(&poolMetrics.ActiveConnections, -1)
			}
		},
	}
}

func GetMongoPoolMetrics() MongoPoolMetrics {
	return MongoPoolMetrics{
		ActiveConnections:  atomic.LoadInt64(&poolMetrics.ActiveConnections),
		CreatedConnections: atomic.LoadInt64(&poolMetrics.CreatedConnections),
		ClosedConnections:  atomic.LoadInt64(&poolMetrics.ClosedConnections),
		LastCheckTime:      time.Now(),
	}
}
