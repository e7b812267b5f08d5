package wide

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// goldenFile mirrors the output of cmd/generate-golden.
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

func loadGolden(t *testing.T) goldenFile {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "golden.json"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	var g goldenFile
	if err := json.Unmarshal(data, &g); err != nil {
		t.Fatalf("decoding golden file: %v", err)
	}
	return g
}

// evalGolden runs one golden case at 256 or 512 bits and returns the result
// and flag in the file's formatting.
func evalGolden(c goldenCase) (string, uint64, error) {
	switch c.Width {
	case 256:
		a, err := ParseU256(c.A)
		if err != nil {
			return "", 0, err
		}
		b, err := parseOptional256(c.B)
		if err != nil {
			return "", 0, err
		}
		switch c.Op {
		case "add":
			r, f := a.Add(b)
			return r.String(), f, nil
		case "sub":
			r, f := a.Sub(b)
			return r.String(), f, nil
		case "mul":
			return a.MulWide(b).String(), 0, nil
		case "kmul":
			return a.MulKaratsuba(b).String(), 0, nil
		case "sqr":
			return a.Square().String(), 0, nil
		case "mulscalar":
			p := a.MulScalar(b[0])
			return formatHex(p[:]), 0, nil
		case "shl":
			return a.Lsh(c.Shift).String(), 0, nil
		case "shr":
			return a.Rsh(c.Shift).String(), 0, nil
		case "clz":
			return fmt.Sprint(a.LeadingZeros()), 0, nil
		case "cmp":
			return fmt.Sprint(a.Cmp(b)), 0, nil
		}
	case 512:
		a, err := ParseU512(c.A)
		if err != nil {
			return "", 0, err
		}
		var b U512
		if c.B != "" {
			if b, err = ParseU512(c.B); err != nil {
				return "", 0, err
			}
		}
		switch c.Op {
		case "add":
			r, f := a.Add(b)
			return r.String(), f, nil
		case "sub":
			r, f := a.Sub(b)
			return r.String(), f, nil
		case "mul":
			return a.MulWide(b).String(), 0, nil
		case "sqr":
			return a.Square().String(), 0, nil
		case "mulscalar":
			p := a.MulScalar(b[0])
			return formatHex(p[:]), 0, nil
		case "shl":
			return a.Lsh(c.Shift).String(), 0, nil
		case "shr":
			return a.Rsh(c.Shift).String(), 0, nil
		case "clz":
			return fmt.Sprint(a.LeadingZeros()), 0, nil
		case "cmp":
			return fmt.Sprint(a.Cmp(b)), 0, nil
		}
	}
	return "", 0, fmt.Errorf("unsupported golden case %d/%s", c.Width, c.Op)
}

func parseOptional256(s string) (U256, error) {
	if s == "" {
		return U256{}, nil
	}
	return ParseU256(s)
}

func TestGoldenVectors(t *testing.T) {
	t.Parallel()
	g := loadGolden(t)
	if g.Version != 1 {
		t.Fatalf("golden version = %d, want 1", g.Version)
	}
	if len(g.Cases) == 0 {
		t.Fatal("golden file has no cases")
	}
	for i, c := range g.Cases {
		t.Run(fmt.Sprintf("%03d_%s_%d", i, c.Op, c.Width), func(t *testing.T) {
			got, flag, err := evalGolden(c)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.Result {
				t.Errorf("%s(%s, %s) = %s, want %s", c.Op, c.A, c.B, got, c.Result)
			}
			if flag != c.Flag {
				t.Errorf("%s flag = %d, want %d", c.Op, flag, c.Flag)
			}
		})
	}
}
