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

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/gzip"

	gonbt "github.com/blinklabs-io/gonbt"
	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/snbt"
	"github.com/blinklabs-io/gonbt/tag"
)

type cmdFlags struct {
	little   bool
	compact  bool
	pretty   bool
	jsonOut  bool
	cborOut  bool
	statsOut bool
	maxDepth int
}

func main() {
	var f cmdFlags
	flag.BoolVar(&f.little, "little", false, "use little-endian byte order")
	flag.BoolVar(&f.compact, "compact", false, "output compact snbt")
	flag.BoolVar(&f.pretty, "pretty", false, "output indented snbt")
	flag.BoolVar(&f.jsonOut, "json", false, "output json")
	flag.BoolVar(&f.cborOut, "cbor", false, "output cbor as hex")
	flag.BoolVar(
		&f.statsOut,
		"stats",
		false,
		"print tag index statistics without materializing values",
	)
	flag.IntVar(
		&f.maxDepth,
		"max-depth",
		scan.DefaultMaxDepth,
		"maximum nesting depth",
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	order := binary.ByteOrder(binary.BigEndian)
	if f.little {
		order = binary.LittleEndian
	}
	if f.statsOut {
		if err := printStats(flag.Arg(0), order, f.maxDepth); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return
	}
	nbtFile, err := gonbt.Load(
		flag.Arg(0),
		gonbt.WithByteOrder(order),
		gonbt.WithScanOptions(scan.WithMaxDepth(f.maxDepth)),
	)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	if err := display(nbtFile, f); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
}

func display(nbtFile *gonbt.File, f cmdFlags) error {
	switch {
	case f.jsonOut:
		var data []byte
		var err error
		if f.pretty {
			data, err = json.MarshalIndent(tag.ToPlain(nbtFile.Root), "", "    ")
		} else {
			data, err = json.Marshal(tag.ToPlain(nbtFile.Root))
		}
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case f.cborOut:
		data, err := cbor.Marshal(tag.ToPlain(nbtFile.Root))
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(data))
	default:
		serializer := snbt.Serializer{
			Compact: f.compact,
		}
		if f.pretty {
			serializer.Indent = "    "
		}
		fmt.Println(serializer.Serialize(nbtFile.Root))
	}
	return nil
}

// printStats scans the file and reports descriptor counts straight from the
// flat index, which is cheap even for very large files
func printStats(path string, order binary.ByteOrder, maxDepth int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return err
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return err
		}
	}
	ix, err := scan.Scan(data, order, scan.WithMaxDepth(maxDepth))
	if err != nil {
		return err
	}
	counts := make(map[scan.TagType]int)
	for i := 0; i < ix.Len(); i++ {
		counts[ix.Tag(i).Type]++
	}
	fmt.Printf("Records: %d\n", ix.Len())
	fmt.Printf("Native byte order: %v\n", ix.Native())
	for t := scan.TypeByte; t <= scan.TypeLongArray; t++ {
		if counts[t] > 0 {
			fmt.Printf("  %-10s %d\n", t, counts[t])
		}
	}
	return nil
}
