package simd

// scalarKernel runs every lane as an independent 64-bit scalar operation.
type scalarKernel struct{}

func (scalarKernel) Name() string { return "scalar" }

func (scalarKernel) Xor(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] ^ b[i]
	}
	return z
}

func (scalarKernel) And(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] & b[i]
	}
	return z
}

func (scalarKernel) Or(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] | b[i]
	}
	return z
}

func (scalarKernel) Add(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] + b[i]
	}
	return z
}

func (scalarKernel) Sub(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] - b[i]
	}
	return z
}

// Go defines x << n and x >> n as 0 for n >= 64, matching VPSLLVQ/VPSRLVQ.

func (scalarKernel) ShlImm(a Vec8, n uint) (z Vec8) {
	for i := range z {
		z[i] = a[i] << n
	}
	return z
}

func (scalarKernel) ShrImm(a Vec8, n uint) (z Vec8) {
	for i := range z {
		z[i] = a[i] >> n
	}
	return z
}

func (scalarKernel) ShlVar(a, n Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] << n[i]
	}
	return z
}

func (scalarKernel) ShrVar(a, n Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[i] >> n[i]
	}
	return z
}

func (scalarKernel) Equal(a, b Vec8) bool {
	return a == b
}

func (scalarKernel) LessMask(a, b Vec8) (m Mask) {
	for i := range a {
		if a[i] < b[i] {
			m |= 1 << i
		}
	}
	return m
}

func (scalarKernel) GreaterMask(a, b Vec8) (m Mask) {
	for i := range a {
		if a[i] > b[i] {
			m |= 1 << i
		}
	}
	return m
}

func (scalarKernel) Min(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = min(a[i], b[i])
	}
	return z
}

func (scalarKernel) Max(a, b Vec8) (z Vec8) {
	for i := range z {
		z[i] = max(a[i], b[i])
	}
	return z
}

func (scalarKernel) Blend(a, b Vec8, m Mask) (z Vec8) {
	for i := range z {
		if m&(1<<i) != 0 {
			z[i] = b[i]
		} else {
			z[i] = a[i]
		}
	}
	return z
}

func (scalarKernel) Permute(a, idx Vec8) (z Vec8) {
	for i := range z {
		z[i] = a[idx[i]&(Lanes-1)]
	}
	return z
}

func (scalarKernel) Splat(v uint64) (z Vec8) {
	for i := range z {
		z[i] = v
	}
	return z
}

func (scalarKernel) Zero() Vec8 { return Vec8{} }
