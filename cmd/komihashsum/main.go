// Command komihashsum streams its input through komihash.Stream and
// reports the digest, or, with -r, emits a run of raw KOMIRAND
// samples. Structure is lifted from the teacher's stream-commp: read
// stdin through a io.TeeReader into the hasher, drain it with a dumb
// discarder to avoid io.Discard's micro-write limit, report on stderr.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/options"

	komihash "github.com/avaneev/komihash"
	"github.com/avaneev/komihash/komirand"
)

const bufSize = ((16 << 20) / 64 * 64)

func main() {
	opts := &struct {
		Seed        string       `getopt:"-s --seed          Hex 64-bit seed, default 0"`
		Seed2       string       `getopt:"   --seed2         Hex second seed word, -r mode only"`
		BufferSize  int          `getopt:"-b --buffer-size   Override the streaming context's internal buffer size"`
		RandomState int          `getopt:"-r --random-state  Emit N KOMIRAND samples instead of hashing stdin"`
		Check       string       `getopt:"-c --check         Compare the computed digest against a 'seed  hexdigest' manifest line"`
		Help        options.Help `getopt:"-h --help          Display help"`
	}{
		BufferSize: komihash.DefaultBufSize,
	}

	options.RegisterAndParse(opts)

	seed, err := parseHexSeed(opts.Seed)
	if err != nil {
		log.Fatalf("invalid --seed: %s", err)
	}

	if opts.RandomState > 0 {
		seed2, err := parseHexSeed(opts.Seed2)
		if err != nil {
			log.Fatalf("invalid --seed2: %s", err)
		}
		emitRandomState(seed, seed2, opts.RandomState)
		return
	}

	var wantDigest string
	if opts.Check != "" {
		seed, wantDigest, err = parseManifestLine(opts.Check)
		if err != nil {
			log.Fatalf("invalid --check manifest %q: %s", opts.Check, err)
		}
	}

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		log.Println("Reading from STDIN...")
	}

	stream, err := komihash.NewWithBufSize(seed, opts.BufferSize)
	if err != nil {
		log.Fatal(err)
	}

	streamBuf := bufio.NewReaderSize(io.TeeReader(os.Stdin, stream), bufSize)

	streamLen, err := io.Copy(uDiscard, streamBuf)
	if err != nil && err != io.EOF {
		log.Fatalf("unexpected error at offset %d: %s", streamLen, err)
	}

	got := stream.Sum64()
	fmt.Fprintf(os.Stderr, "%016x  %d bytes\n", got, streamLen)

	if opts.Check != "" {
		gotDigest := fmt.Sprintf("%016x", got)
		if gotDigest != wantDigest {
			fmt.Fprintf(os.Stderr, "MISMATCH: expected %s\n", wantDigest)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "OK")
	}
}

// parseManifestLine reads a "seed  hexdigest" manifest line from path,
// sha256sum -c style, and returns the seed and the lower-cased expected
// digest.
func parseManifestLine(path string) (seed uint64, digest string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, "", err
	}

	fields := strings.Fields(strings.SplitN(string(data), "\n", 2)[0])
	if len(fields) != 2 {
		return 0, "", fmt.Errorf("expected two whitespace-separated fields, got %d", len(fields))
	}

	seed, err = parseHexSeed(fields[0])
	if err != nil {
		return 0, "", fmt.Errorf("seed field: %w", err)
	}

	return seed, strings.ToLower(fields[1]), nil
}

func emitRandomState(s1, s2 uint64, n int) {
	for i := 0; i < n; i++ {
		fmt.Fprintf(os.Stderr, "%016x\n", komirand.Next(&s1, &s2))
	}
}

func parseHexSeed(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 16, 64)
}

// Using io.Discard in the Copy() call above results in invoking
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.7:src/io/io.go;l=647-661
// which is bound by a limit that results in micro-writes into the
// hasher. Use a dumb discarder instead.
type unsmartDiscard struct{}

var uDiscard io.Writer = unsmartDiscard{}

func (unsmartDiscard) Write(p []byte) (int, error) { return len(p), nil }
