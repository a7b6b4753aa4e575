package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Asutorufa/flist/internal/script"
	"github.com/Asutorufa/flist/pkg/log"
	"golang.org/x/term"
)

func main() {
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "also write logs to this file, rotated over 1 MB")
	path := flag.String("script", "", "read commands from this file instead of stdin")
	flag.Parse()

	os.Exit(run(*level, *logFile, *path))
}

func run(level, logFile, path string) int {
	lev, err := log.ParseLevel(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log.Set(log.Config{Level: lev, Save: logFile != ""}, logFile)
	defer log.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var in io.ReadCloser = os.Stdin
	var prompt func()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Error("open script failed", "path", path, "err", err)
			return 1
		}
		defer f.Close()
		in = f
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println(`type "help" for commands`)
		prompt = func() { fmt.Print("> ") }
	}

	// unblock the pending read on interrupt
	go func() {
		<-ctx.Done()
		in.Close()
	}()

	failed, err := script.New(os.Stdout).Run(ctx, in, prompt)
	if err != nil && ctx.Err() == nil {
		log.Error("read commands failed", "err", err)
		return 1
	}

	if failed > 0 {
		log.Warn("some commands failed", "count", failed)
		return 1
	}
	return 0
}
