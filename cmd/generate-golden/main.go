// Command generate-golden writes the golden vectors checked by the wide
// package tests. Results come from math/big, never from the code under
// test.
//
//	go run ./cmd/generate-golden -out internal/wide/testdata/golden.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"os"
)

const goldenVersion = 1

// pairsPerWidth caps the binary-operation cases per width.
const pairsPerWidth = 24

// randomOperands is the number of random operands added to the edges.
const randomOperands = 3

// defaultSeed produced the committed internal/wide/testdata/golden.json.
const defaultSeed = 20261017

type goldenFile struct {
	Version int          `json:"version"`
	Cases   []goldenCase `json:"cases"`
}

type goldenCase struct {
	Width  int    `json:"width"`
	Op     string `json:"op"`
	A      string `json:"a"`
	B      string `json:"b,omitempty"`
	Shift  uint   `json:"shift,omitempty"`
	Result string `json:"result"`
	Flag   uint64 `json:"flag,omitempty"`
}

func main() {
	out := flag.String("out", "internal/wide/testdata/golden.json", "Output file.")
	seed := flag.Uint64("seed", defaultSeed, "Seed for the random operands.")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g := generate(rand.New(rand.NewPCG(*seed, 0)))
	if err := write(f, g); err != nil {
		f.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d cases to %s\n", len(g.Cases), *out)
}

func write(w io.Writer, g goldenFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func generate(r *rand.Rand) goldenFile {
	g := goldenFile{Version: goldenVersion}
	for _, width := range []int{256, 512} {
		g.Cases = append(g.Cases, widthCases(width, r)...)
	}
	return g
}

// edgeOperands returns zero, one, max, max-1, the single-limb max, the top
// bit alone and the alternating 1010 pattern.
func edgeOperands(width int) []*big.Int {
	one := big.NewInt(1)
	limit := new(big.Int).Lsh(one, uint(width))
	top := new(big.Int).Sub(limit, one)
	alt := new(big.Int).Div(new(big.Int).Mul(top, big.NewInt(2)), big.NewInt(3))
	return []*big.Int{
		new(big.Int),
		big.NewInt(1),
		top,
		new(big.Int).Sub(top, one),
		new(big.Int).SetUint64(^uint64(0)),
		new(big.Int).Lsh(one, uint(width-1)),
		alt,
	}
}

func randomBits(r *rand.Rand, bits int) *big.Int {
	v := new(big.Int)
	for i := 0; i < bits; i += 64 {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(r.Uint64()))
	}
	return v
}

func widthCases(width int, r *rand.Rand) []goldenCase {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width))
	operands := edgeOperands(width)
	for i := 0; i < randomOperands; i++ {
		operands = append(operands, randomBits(r, width))
	}

	var cases []goldenCase
	pairs := 0
	for i := range operands {
		for j := range operands {
			if (i+j)%3 != 0 || pairs == pairsPerWidth {
				continue
			}
			pairs++
			cases = append(cases, binaryCases(width, mod, operands[i], operands[j])...)
		}
	}

	for _, a := range operands {
		s := ^uint64(0)
		if a.Bit(0) == 1 {
			s = r.Uint64()
		}
		k := uint(r.IntN(64))
		sv := new(big.Int).SetUint64(s)
		cases = append(cases,
			goldenCase{Width: width, Op: "sqr", A: hex(a), Result: hex(new(big.Int).Mul(a, a))},
			goldenCase{Width: width, Op: "mulscalar", A: hex(a), B: hex(sv), Result: hex(new(big.Int).Mul(a, sv))},
			goldenCase{Width: width, Op: "shl", A: hex(a), Shift: k, Result: hex(new(big.Int).Mod(new(big.Int).Lsh(a, k), mod))},
			goldenCase{Width: width, Op: "shr", A: hex(a), Shift: k, Result: hex(new(big.Int).Rsh(a, k))},
			goldenCase{Width: width, Op: "clz", A: hex(a), Result: fmt.Sprint(width - a.BitLen())},
		)
	}
	return cases
}

func binaryCases(width int, mod, a, b *big.Int) []goldenCase {
	sum := new(big.Int).Add(a, b)
	carry := uint64(0)
	if sum.Cmp(mod) >= 0 {
		carry = 1
		sum.Sub(sum, mod)
	}
	diff := new(big.Int).Sub(a, b)
	borrow := uint64(0)
	if diff.Sign() < 0 {
		borrow = 1
		diff.Add(diff, mod)
	}
	prod := new(big.Int).Mul(a, b)

	cases := []goldenCase{
		{Width: width, Op: "add", A: hex(a), B: hex(b), Result: hex(sum), Flag: carry},
		{Width: width, Op: "sub", A: hex(a), B: hex(b), Result: hex(diff), Flag: borrow},
		{Width: width, Op: "mul", A: hex(a), B: hex(b), Result: hex(prod)},
	}
	if width == 256 {
		cases = append(cases, goldenCase{Width: width, Op: "kmul", A: hex(a), B: hex(b), Result: hex(prod)})
	}
	return append(cases, goldenCase{Width: width, Op: "cmp", A: hex(a), B: hex(b), Result: fmt.Sprint(a.Cmp(b))})
}

func hex(v *big.Int) string {
	return fmt.Sprintf("%#x", v)
}
