// Package devserver watches the template and asset directories during
// development and tells open pages to reload over a websocket.
package devserver

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

// Path is where pages open the reload socket.
const Path = "/__dev/reload"

// ReloadMessage is sent to every page after a successful reload.
const ReloadMessage = "reload"

// Reloader couples a file watcher with the set of connected pages.
type Reloader struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func() error
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New watches dirs recursively. onChange runs once per burst of changes;
// pages are told to reload only when it succeeds.
func New(onChange func() error, debounce time.Duration, dirs ...string) (*Reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("devserver: create watcher: %w", err)
	}
	r := &Reloader{
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		clients:  make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Dev only.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, dir := range dirs {
		if err := r.watchTree(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return r, nil
}

func (r *Reloader) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("devserver: watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return r.watcher.Add(path)
	})
}

// Run processes file events until ctx is done.
func (r *Reloader) Run(ctx context.Context) {
	debounce := time.NewTimer(0)
	<-debounce.C
	pending := false

	for {
		select {
		case <-ctx.Done():
			debounce.Stop()
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := r.watchTree(event.Name); err != nil {
						log.Printf("dev: %v", err)
					}
				}
			}
			if !relevant(event) {
				continue
			}
			pending = true
			debounce.Reset(r.debounce)

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("dev: watcher error: %v", err)

		case <-debounce.C:
			if pending {
				pending = false
				r.reload()
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	return !strings.HasPrefix(name, ".") && !strings.HasSuffix(name, "~") && !strings.HasSuffix(name, ".swp")
}

func (r *Reloader) reload() {
	if err := r.onChange(); err != nil {
		log.Printf("dev: reload failed, keeping previous version: %v", err)
		return
	}
	n := r.Broadcast(ReloadMessage)
	log.Printf("dev: reloaded, notified %d page(s)", n)
}

// ServeHTTP upgrades the request and keeps the page registered until it
// disconnects.
func (r *Reloader) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("dev: websocket upgrade: %v", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = struct{}{}
	r.mu.Unlock()

	defer r.drop(conn)

	// Pages never send anything; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (r *Reloader) drop(conn *websocket.Conn) {
	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	conn.Close()
}

// Broadcast sends msg to every connected page and returns how many got it.
func (r *Reloader) Broadcast(msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sent := 0
	for conn := range r.clients {
		conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			delete(r.clients, conn)
			conn.Close()
			continue
		}
		sent++
	}
	return sent
}

// Clients returns the number of connected pages.
func (r *Reloader) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close stops the watcher and disconnects every page.
func (r *Reloader) Close() error {
	r.mu.Lock()
	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
	r.mu.Unlock()
	return r.watcher.Close()
}
