// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package worldclim

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Base URLs of the WorldClim 1.4
// current climate download trees.
var (
	GridBaseURL = "http://biogeo.ucdavis.edu/data/climate/worldclim/1_4/grid/cur/"
	TileBaseURL = "http://biogeo.ucdavis.edu/data/climate/worldclim/1_4/tiles/cur/"
)

// GlobalURL returns the download URL of the archive
// that stores a layer of a global dataset.
func (v Variable) GlobalURL(res Resolution, layer int) string {
	return GridBaseURL + v.GlobalArchive(res, layer)
}

// TileURL returns the download URL of the archive
// that stores a tile of a variable.
func (v Variable) TileURL(t Tile) string {
	return TileBaseURL + v.TileArchive(t)
}

// A FetchStrategy describes how archive downloads
// are retried on failure.
type FetchStrategy struct {
	MaximumRetries int
	RetrySleep     time.Duration
	FetchTimeout   time.Duration
}

// DefaultFetchStrategy is the fetch strategy
// used by the worldclim commands.
var DefaultFetchStrategy = FetchStrategy{
	MaximumRetries: 5,
	RetrySleep:     30 * time.Second,
	FetchTimeout:   5 * time.Minute,
}

// Fetch downloads an URL into the indicated file.
// The download is first written to a partial file
// that is renamed on success,
// so an interrupted download
// never leaves a valid-looking archive behind.
func (fs FetchStrategy) Fetch(url, path string) error {
	var err error
	for try := 0; try <= fs.MaximumRetries; try++ {
		if try > 0 {
			time.Sleep(fs.RetrySleep)
		}
		if err = fetch(url, path, fs.FetchTimeout); err == nil {
			return nil
		}
	}
	return fmt.Errorf("fetching %q: %v", url, err)
}

func fetch(url, path string, timeout time.Duration) (err error) {
	cl := &http.Client{Timeout: timeout}
	resp, err := cl.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	part := path + ".part"
	f, err := os.Create(part)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
		if err != nil {
			os.Remove(part)
			return
		}
		err = os.Rename(part, path)
	}()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	return nil
}
