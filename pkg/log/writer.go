package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

var _ io.WriteCloser = new(FileWriter)

const (
	defaultMaxSize = 1024 * 1024
	defaultKeep    = 5
)

// FileWriter appends to path. Once an hour it renames the file to
// path_<unix time> when it grew over MaxSize and removes all but the
// newest Keep renamed files.
type FileWriter struct {
	MaxSize int64
	Keep    int

	path  string
	timer *time.Ticker
	w     *os.File
	log   *log.Logger

	mu sync.Mutex
}

func NewLogWriter(file string) *FileWriter {
	return &FileWriter{
		MaxSize: defaultMaxSize,
		Keep:    defaultKeep,
		path:    file,
		timer:   time.NewTicker(time.Nanosecond),
		log:     log.New(os.Stderr, "[log]: ", 0),
	}
}

func (f *FileWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.timer.Stop()

	if f.w == nil {
		return nil
	}
	err := f.w.Close()
	f.w = nil
	return err
}

func (f *FileWriter) Write(p []byte) (n int, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	select {
	case <-f.timer.C:
		f.timer.Reset(time.Hour)
		f.rotate()
	default:
	}

	if f.w == nil {
		f.w, err = os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			f.log.Println(err)
			return 0, err
		}
	}

	return f.w.Write(p)
}

func (f *FileWriter) rotate() {
	fs, err := os.Stat(f.path)
	if err != nil {
		return
	}

	if fs.Size() < f.MaxSize {
		return
	}

	if f.w != nil {
		f.w.Close()
		f.w = nil
	}

	if err = os.Rename(f.path, fmt.Sprintf("%s_%d", f.path, time.Now().UnixNano())); err != nil {
		f.log.Println(err)
	}

	f.removeOldFile()
}

func (f *FileWriter) removeOldFile() {
	dir, filename := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		f.log.Println(err)
		return
	}

	var rotated []string
	for _, file := range files {
		if strings.HasPrefix(file.Name(), filename+"_") {
			rotated = append(rotated, file.Name())
		}
	}

	if len(rotated) <= f.Keep {
		return
	}

	slices.Sort(rotated)

	for _, name := range rotated[:len(rotated)-f.Keep] {
		if err = os.Remove(filepath.Join(dir, name)); err != nil {
			f.log.Printf("remove log file %s failed: %v\n", name, err)
		}
	}
}
