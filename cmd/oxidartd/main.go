// Command oxidartd runs a standalone RESP2 server in front of a single
// in-memory tree.Tree: one process, one tree, one TCP listener.
package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"time"

	"github.com/JoshuaBOUCHAT/radixox/internal/clockd"
	"github.com/JoshuaBOUCHAT/radixox/internal/engine/tree"
	"github.com/JoshuaBOUCHAT/radixox/internal/resp"
	"github.com/JoshuaBOUCHAT/radixox/internal/snapshot"
	"github.com/JoshuaBOUCHAT/radixox/internal/xflag"
)

var durationFlag = xflag.Func("tick", "interval between clock advances (e.g. 100ms)", time.ParseDuration)

func main() {
	addr := flag.String("addr", ":6379", "TCP listen address")
	snapshotPath := flag.String("snapshot", "", "write a one-shot diagnostic snapshot to this path and exit")
	flag.Parse()

	resolution := 100 * time.Millisecond
	if xflag.Parsed("tick") {
		resolution = *durationFlag
	}

	t := tree.New()

	if *snapshotPath != "" {
		if err := dumpSnapshot(t, *snapshotPath); err != nil {
			log.Fatalf("oxidartd: %v", err)
		}
		return
	}

	srv := resp.NewServer(t)

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("oxidartd: listen %s: %v", *addr, err)
	}
	log.Printf("oxidartd: listening on %s (tick=%s)", *addr, resolution)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := clockd.New(srv, resolution)
	go ticker.Run(ctx)

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	if err := srv.Serve(ln); err != nil {
		select {
		case <-ctx.Done():
			log.Println("oxidartd: shutting down")
		default:
			log.Fatalf("oxidartd: serve: %v", err)
		}
	}
}

func dumpSnapshot(t *tree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := snapshot.Write(f, t)
	if err != nil {
		return err
	}
	log.Printf("oxidartd: wrote snapshot to %s (%d keys)", path, n)
	return nil
}
