// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"github.com/urfave/cli"
	"golang.org/x/crypto/sha3"
)

// redraws a tree file, skipping contents already drawn within the
// debounce period
type treeRefresher struct {
	log      *logger.L
	fileName string
	w        io.Writer
	seen     *cache.Cache
}

func newTreeRefresher(log *logger.L, fileName string, w io.Writer, debounce time.Duration) *treeRefresher {
	return &treeRefresher{
		log:      log,
		fileName: fileName,
		w:        w,
		seen:     cache.New(debounce, 2*debounce),
	}
}

// refresh - draw the tree file unless these exact contents were drawn
// recently, returns true if drawn
func (r *treeRefresher) refresh() (bool, error) {
	data, err := os.ReadFile(r.fileName)
	if nil != err {
		return false, err
	}

	digest := sha3.Sum256(data)
	key := hex.EncodeToString(digest[:])
	if _, found := r.seen.Get(key); found {
		r.log.Debugf("unchanged contents: %s", key)
		return false, nil
	}
	r.seen.SetDefault(key, struct{}{})

	a, roots, err := loadTree(r.log, r.fileName)
	if nil != err {
		return false, err
	}
	r.log.Infof("redraw: %q  digest: %s", r.fileName, key)
	return true, printRoots(r.w, a, slices.Values(roots))
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("tree"), ErrRequiredTreeFile)
	if nil != err {
		return err
	}

	log := logger.New("watch")

	channels := watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(fileName, log, channels)
	if nil != err {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(); nil != err {
		return err
	}

	debounce := time.Duration(m.config.Debounce) * time.Second
	refresher := newTreeRefresher(log, fileName, m.w, debounce)

	// an invalid edit is reported and the watch continues
	draw := func() {
		if _, err := refresher.refresh(); nil != err {
			log.Errorf("refresh: %q  error: %s", fileName, err)
			fmt.Fprintf(m.e, "error: %s\n", err)
		}
	}
	draw()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	for {
		select {
		case <-channels.change:
			draw()
		case <-channels.remove:
			log.Infof("tree file: %q removed", fileName)
			return nil
		case s := <-sigs:
			log.Infof("received signal: %v", s)
			return nil
		}
	}
}
