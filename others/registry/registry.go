// Command registry registers the running process in ZooKeeper under an
// ephemeral node named by a freshly minted beautiful GUID. The node data
// carries both identifier forms plus liveness timestamps, and a heartbeat
// loop keeps the timestamp current until the process is signalled to stop.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/lmittmann/tint"

	"github.com/idtext/bguid"
)

const rootPath = "/bguid_registry"

// nodeInfo is the JSON payload stored on each instance node.
type nodeInfo struct {
	ID        string `json:"id"`        // canonical UUID
	Beautiful string `json:"beautiful"` // shareable short form
	Service   string `json:"service"`
	StartedAt int64  `json:"started_at"` // unix millis
	LastSeen  int64  `json:"last_seen"`  // unix millis, updated by heartbeat
}

func main() {
	var (
		servers   = flag.String("zk", "127.0.0.1:2181", "comma-separated ZooKeeper servers")
		service   = flag.String("service", "demo", "service name to register under")
		heartbeat = flag.Duration("heartbeat", 10*time.Second, "heartbeat interval")
	)
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))

	conn, _, err := zk.Connect(strings.Split(*servers, ","), 5*time.Second)
	if err != nil {
		logger.Error("zookeeper connect failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	id, err := bguid.NewRandom()
	if err != nil {
		logger.Error("id generation failed", "error", err)
		os.Exit(1)
	}

	servicePath := rootPath + "/" + *service
	for _, path := range []string{rootPath, servicePath} {
		if err := ensurePath(conn, path); err != nil {
			logger.Error("ensure path failed", "path", path, "error", err)
			os.Exit(1)
		}
	}

	now := time.Now().UnixMilli()
	info := nodeInfo{
		ID:        id.String(),
		Beautiful: id.Beautiful(),
		Service:   *service,
		StartedAt: now,
		LastSeen:  now,
	}

	nodePath := servicePath + "/" + info.Beautiful
	data, err := json.Marshal(info)
	if err != nil {
		logger.Error("marshal node info failed", "error", err)
		os.Exit(1)
	}
	if _, err := conn.Create(nodePath, data, zk.FlagEphemeral, zk.WorldACL(zk.PermAll)); err != nil {
		logger.Error("register node failed", "node", nodePath, "error", err)
		os.Exit(1)
	}
	logger.Info("registered", "node", nodePath, "id", info.ID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down", "node", nodePath)
			return
		case <-ticker.C:
			info.LastSeen = time.Now().UnixMilli()
			data, err := json.Marshal(info)
			if err != nil {
				logger.Error("marshal heartbeat failed", "error", err)
				continue
			}
			if _, err := conn.Set(nodePath, data, -1); err != nil {
				logger.Warn("heartbeat failed", "node", nodePath, "error", err)
				continue
			}
			logger.Debug("heartbeat", "node", nodePath, "last_seen", info.LastSeen)
		}
	}
}

// ensurePath creates a persistent node if it does not already exist.
func ensurePath(conn *zk.Conn, path string) error {
	exists, _, err := conn.Exists(path)
	if err != nil || exists {
		return err
	}
	_, err = conn.Create(path, nil, 0, zk.WorldACL(zk.PermAll))
	if err == zk.ErrNodeExists {
		return nil
	}
	return err
}
