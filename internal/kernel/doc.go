// Package kernel implements the element-wise operations and reductions
// behind mem/buffer.
//
// Every kernel is generic over core.Number. Plain []float64 operands are
// routed to github.com/cwbudde/algo-vecmath, which selects an AVX2, SSE2,
// NEON or pure Go implementation at first use; all other element types run
// the scalar loops here. Operands must have equal length; kernels do not
// validate it.
package kernel
