// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gonbt reads and writes NBT files. Buffers are indexed by the scan
// package and materialized by the tag package; this package adds the file
// container conventions: optional gzip compression and the named compound
// root tag.
package gonbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/tag"
)

// File represents a named compound root tag along with the container
// settings it was read with
type File struct {
	// Name is the root tag's name, usually empty
	Name string
	// Root holds the file's data
	Root tag.Compound
	// Gzipped records whether the on-disk form is gzip compressed
	Gzipped bool
	// ByteOrder is the byte order of the on-disk form. Big-endian is the
	// standard convention; Bedrock-style files are little-endian.
	ByteOrder binary.ByteOrder

	path string
}

type fileConfig struct {
	order    binary.ByteOrder
	gzipped  *bool
	scanOpts []scan.ScanOptionFunc
}

// FileOptionFunc is a type that represents functions that modify the file config
type FileOptionFunc func(*fileConfig)

// WithByteOrder specifies the byte order to read or write with. The default
// is big-endian
func WithByteOrder(order binary.ByteOrder) FileOptionFunc {
	return func(c *fileConfig) {
		c.order = order
	}
}

// WithGzip specifies explicitly whether the data is gzip compressed. If not
// provided, Load and Read sniff the gzip magic number, and Save keeps the
// compression the file was loaded with
func WithGzip(gzipped bool) FileOptionFunc {
	return func(c *fileConfig) {
		c.gzipped = &gzipped
	}
}

// WithScanOptions specifies options forwarded to scan.Scan, such as
// scan.WithMaxDepth for inputs nested beyond the default limit
func WithScanOptions(opts ...scan.ScanOptionFunc) FileOptionFunc {
	return func(c *fileConfig) {
		c.scanOpts = opts
	}
}

func buildFileConfig(opts []FileOptionFunc) fileConfig {
	cfg := fileConfig{
		order: binary.BigEndian,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Load reads the NBT file at the given path
func Load(path string, opts ...FileOptionFunc) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	f.path = path
	return f, nil
}

// Read reads NBT data from a reader
func Read(r io.Reader, opts ...FileOptionFunc) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// Decode parses NBT data held in memory. Unless WithGzip was given, gzip
// compression is detected from the magic number.
func Decode(data []byte, opts ...FileOptionFunc) (*File, error) {
	cfg := buildFileConfig(opts)
	gzipped := len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
	if cfg.gzipped != nil {
		gzipped = *cfg.gzipped
	}
	if gzipped {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, err
		}
	}
	ix, err := scan.Scan(data, cfg.order, cfg.scanOpts...)
	if err != nil {
		return nil, err
	}
	name, root, err := tag.UnpackRoot(ix)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:      name,
		Root:      root,
		Gzipped:   gzipped,
		ByteOrder: cfg.order,
	}, nil
}

// Write encodes the file's uncompressed wire form to a writer
func (f *File) Write(w io.Writer) error {
	order := f.ByteOrder
	if order == nil {
		order = binary.BigEndian
	}
	return tag.NewEncoder(w, order).EncodeRoot(f.Name, f.Root)
}

// Encode returns the file's on-disk form, applying gzip compression when
// the file is marked as gzipped
func (f *File) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if f.Gzipped {
		zw := gzip.NewWriter(&buf)
		if err := f.Write(zw); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	} else if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the file to the given path, or back to the path it was loaded
// from when path is empty. Options override the stored byte order and
// compression.
func (f *File) Save(path string, opts ...FileOptionFunc) error {
	if path == "" {
		path = f.path
	}
	if path == "" {
		return fmt.Errorf("nbt: no filename specified")
	}
	cfg := fileConfig{
		order: f.ByteOrder,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	out := *f
	if cfg.order != nil {
		out.ByteOrder = cfg.order
	}
	if cfg.gzipped != nil {
		out.Gzipped = *cfg.gzipped
	}
	data, err := out.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	f.path = path
	return nil
}
