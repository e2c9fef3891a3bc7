package automatic

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"
)

// GenerateSeeds returns n fresh random seeds.
func GenerateSeeds(n int) [][32]byte {
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds
}

// DeriveSeed returns the seed of game number n of a run started from base.
// The same base and n always give the same seed.
func DeriveSeed(base uint64, n int) [32]byte {
	var seed [32]byte
	var buf [20]byte
	binary.LittleEndian.PutUint64(buf[0:], base)
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	for lane := 0; lane < 4; lane++ {
		binary.LittleEndian.PutUint32(buf[16:], uint32(lane))
		binary.LittleEndian.PutUint64(seed[lane*8:], xxhash.Sum64(buf[:]))
	}
	return seed
}

// SeedFromString turns a user-given seed (a number or any word) into a
// base seed for DeriveSeed.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// WriteSeeds writes seeds as hex, one per line, after a comment line.
func WriteSeeds(w io.Writer, seeds [][32]byte) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d iota game seeds\n", len(seeds))
	for _, seed := range seeds {
		bw.WriteString(hex.EncodeToString(seed[:]))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadSeeds reads the format of WriteSeeds. Blank lines and lines
// starting with # are skipped.
func ReadSeeds(r io.Reader) ([][32]byte, error) {
	var seeds [][32]byte
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		var seed [32]byte
		if hex.DecodedLen(len(text)) != len(seed) {
			return nil, fmt.Errorf("%w: line %d is not a 32-byte seed", ErrBadSeed, n)
		}
		if _, err := hex.Decode(seed[:], []byte(text)); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadSeed, n, err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, sc.Err()
}

var ErrBadSeed = errors.New("bad seed")

func SaveSeeds(seeds [][32]byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSeeds(f, seeds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func LoadSeeds(path string) ([][32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeeds(f)
}
