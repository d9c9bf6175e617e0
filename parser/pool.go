package parser

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Scanners are short-lived objects, one per Parse call. To avoid
// multiple allocation of small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &Scanner{}
			return sc, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// newPooledScanner returns a Scanner initialized for input. The
// Scanner is pooled for efficiency.
func newPooledScanner(input string) *Scanner {
	o, _ := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	sc := o.(*Scanner)
	sc.init(input)
	return sc
}

// releaseIntoPool clears the Scanner and puts it back into the pool.
func (sc *Scanner) releaseIntoPool() {
	sc.input = ""
	sc.pos = 0
	sc.line = 0
	sc.errh = nil
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}
