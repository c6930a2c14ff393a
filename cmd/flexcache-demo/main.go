// Command flexcache-demo is a small runnable walkthrough of the
// flexcache engine: capacity eviction, TTL expiry, and a synchronized
// wrapper running a background janitor.
package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bellirodrigo2/flexcache"
	"github.com/bellirodrigo2/flexcache/flexsync"
)

func main() {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()

	c := flexcache.New(flexcache.RealClock{},
		flexcache.WithItemMax(3),
		flexcache.WithPolicy(flexcache.NewLRUPolicy()),
		flexcache.WithLogger(zapLogger.Sugar()),
	)

	_ = c.Insert([]byte("alpha"), "first", 5, 0, 0)
	_ = c.Insert([]byte("beta"), "second", 6, 0, 0)
	_ = c.Insert([]byte("gamma"), "third", 5, 0, 0)

	if _, ok := c.Get([]byte("alpha")); ok {
		fmt.Println("alpha touched, now most recently used")
	}

	if err := c.Insert([]byte("delta"), "fourth", 5, 0, 0); err != nil {
		fmt.Println("insert failed:", err)
	}

	if _, ok := c.Get([]byte("beta")); !ok {
		fmt.Println("beta was evicted to make room for delta")
	}

	fmt.Printf("stats: %+v (hit ratio %.2f)\n", c.Stats(), c.Stats().HitRatio())

	synced := flexsync.Wrap(
		flexcache.New(flexcache.RealClock{}),
		100*time.Millisecond,
	)
	defer synced.Stop()

	_ = synced.Insert([]byte("ephemeral"), "gone soon", 9, 50*time.Millisecond, 0)
	time.Sleep(200 * time.Millisecond)
	fmt.Println("items remaining after janitor sweep:", synced.Len())
}
