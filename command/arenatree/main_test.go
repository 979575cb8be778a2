// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/arenatree/configuration"
	"github.com/bitmark-inc/arenatree/fault"
)

const (
	logCategory = "testing"
)

const sampleTree = `
return {
    roots = {
        {
            value = "root",
            children = {
                { value = "1" },
                { value = "2", children = { { value = "2_1" }, { value = "2_2" } } },
            },
        },
        { value = "other" },
    },
}
`

const sampleDrawing = "root\n" +
	"|-- 1\n" +
	"`-- 2\n" +
	"    |-- 2_1\n" +
	"    `-- 2_2\n" +
	"\n" +
	"other\n"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "arenatree-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600), "write: %s", name)
	return fileName
}

// an application with the commands but without the configuration
// and logger setup of main
func testApp(w *bytes.Buffer, e *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Name = "arenatree"
	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{
		"config": &metadata{
			config: &configuration.Configuration{Workers: 2, Debounce: 1},
			log:    logger.New(logCategory),
			e:      e,
			w:      w,
		},
	}
	treeFlag := cli.StringFlag{Name: "tree, t"}
	app.Commands = []cli.Command{
		{Name: "print", Flags: []cli.Flag{treeFlag}, Action: runPrint},
		{Name: "stats", Flags: []cli.Flag{treeFlag}, Action: runStats},
		{Name: "encode", Flags: []cli.Flag{treeFlag, cli.StringFlag{Name: "output, o"}}, Action: runEncode},
		{Name: "decode", Flags: []cli.Flag{cli.StringFlag{Name: "input, i"}}, Action: runDecode},
	}
	return app
}

func TestLoadTreeAndPrint(t *testing.T) {
	fileName := writeFile(t, t.TempDir(), "tree.lua", sampleTree)

	a, roots, err := loadTree(logger.New(logCategory), fileName)
	require.NoError(t, err, "load")
	assert.Len(t, roots, 2, "roots")
	assert.Equal(t, 6, a.Count(), "count")

	b := bytes.Buffer{}
	require.NoError(t, printRoots(&b, a, slices.Values(roots)), "print")
	assert.Equal(t, sampleDrawing, b.String(), "drawing")
}

func TestCollectStats(t *testing.T) {
	fileName := writeFile(t, t.TempDir(), "tree.lua", sampleTree)
	a, _, err := loadTree(logger.New(logCategory), fileName)
	require.NoError(t, err, "load")

	stats, err := collectStats(context.Background(), a, 3)
	require.NoError(t, err, "stats")
	assert.Equal(t, treeStats{Nodes: 6, Roots: 2, Leaves: 4, MaxDepth: 2}, stats, "stats")
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	tree := writeFile(t, dir, "tree.lua", sampleTree)
	snapshot := filepath.Join(dir, "tree.snapshot")

	w := bytes.Buffer{}
	e := bytes.Buffer{}
	app := testApp(&w, &e)

	require.NoError(t, app.Run([]string{"arenatree", "print", "--tree", tree}), "print")
	assert.Equal(t, sampleDrawing, w.String(), "print output")

	w.Reset()
	require.NoError(t, app.Run([]string{"arenatree", "stats", "--tree", tree}), "stats")
	assert.Contains(t, w.String(), `"max_depth": 2`, "stats output")

	w.Reset()
	require.NoError(t, app.Run([]string{"arenatree", "encode", "--tree", tree, "--output", snapshot}), "encode")
	require.NoError(t, app.Run([]string{"arenatree", "decode", "--input", snapshot}), "decode")
	assert.Equal(t, sampleDrawing, w.String(), "decode output")

	assert.Equal(t, ErrRequiredTreeFile, app.Run([]string{"arenatree", "print"}), "missing tree")
	assert.Equal(t, ErrRequiredOutputFile, app.Run([]string{"arenatree", "encode", "--tree", tree}), "missing output")
	assert.Equal(t, ErrRequiredInputFile, app.Run([]string{"arenatree", "decode"}), "missing input")
	assert.Equal(t, fault.ErrNotFoundSnapshotFile, app.Run([]string{"arenatree", "decode", "--input", filepath.Join(dir, "none")}), "missing snapshot")
}

func TestRefresher(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "tree.lua", sampleTree)

	w := bytes.Buffer{}
	r := newTreeRefresher(logger.New(logCategory), fileName, &w, time.Minute)

	drawn, err := r.refresh()
	require.NoError(t, err, "first refresh")
	assert.True(t, drawn, "first refresh not drawn")
	assert.Equal(t, sampleDrawing, w.String(), "drawing")

	drawn, err = r.refresh()
	require.NoError(t, err, "second refresh")
	assert.False(t, drawn, "unchanged contents drawn")

	writeFile(t, dir, "tree.lua", `return { roots = { { value = "new" } } }`)
	w.Reset()
	drawn, err = r.refresh()
	require.NoError(t, err, "third refresh")
	assert.True(t, drawn, "changed contents not drawn")
	assert.Equal(t, "new\n", w.String(), "new drawing")

	writeFile(t, dir, "tree.lua", `return { roots = { { value = "" } } }`)
	_, err = r.refresh()
	assert.ErrorIs(t, err, fault.ErrEmptyTreeValue, "invalid contents")
}

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	fileName := writeFile(t, dir, "tree.lua", sampleTree)

	channels := watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	w, err := newFileWatcher(fileName, logger.New(logCategory), channels)
	require.NoError(t, err, "new watcher")
	require.NoError(t, w.Start(), "start")
	defer w.Stop()

	writeFile(t, dir, "tree.lua", `return { roots = { { value = "x" } } }`)
	select {
	case <-channels.change:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(fileName), "remove")
	select {
	case <-channels.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("no remove event")
	}
}

func TestFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(t.TempDir(), "none.lua"), logger.New(logCategory), watcherChannels{})
	assert.Equal(t, fault.ErrNotFoundTreeFile, err, "missing file")
}
