//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
)

// boardFlashWindow caps how much of the data area after the firmware the
// clock claims. The alarm record needs one erase block.
const boardFlashWindow = 16 * 1024

// rp2Flash exposes the start of machine.Flash, the region the linker leaves
// after the program image.
type rp2Flash struct {
	size  uint32
	block uint32
}

func newBoardFlash() Flash {
	f := rp2Flash{}
	if bs := machine.Flash.EraseBlockSize(); bs > 0 && bs <= boardFlashWindow {
		f.block = uint32(bs)
	}
	if sz := machine.Flash.Size(); sz > 0 {
		f.size = uint32(min(sz, boardFlashWindow))
	}
	if f.block == 0 || f.size < f.block {
		return noFlash{}
	}
	f.size -= f.size % f.block
	return f
}

func (f rp2Flash) SizeBytes() uint32       { return f.size }
func (f rp2Flash) EraseBlockBytes() uint32 { return f.block }

func (f rp2Flash) ReadAt(p []byte, off uint32) (int, error) {
	p, err := f.clip(p, off)
	if err != nil {
		return 0, err
	}
	n, err := machine.Flash.ReadAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (f rp2Flash) WriteAt(p []byte, off uint32) (int, error) {
	p, err := f.clip(p, off)
	if err != nil {
		return 0, err
	}
	n, err := machine.Flash.WriteAt(p, int64(off))
	if err != nil {
		return n, fmt.Errorf("flash write at %d: %w", off, err)
	}
	return n, nil
}

func (f rp2Flash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	if off%f.block != 0 || size%f.block != 0 || off+size > f.size {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, ErrNotImplemented)
	}
	return machine.Flash.EraseBlocks(int64(off/f.block), int64(size/f.block))
}

func (f rp2Flash) clip(p []byte, off uint32) ([]byte, error) {
	if off >= f.size {
		return nil, fmt.Errorf("flash access at %d past %d: %w", off, f.size, ErrNotImplemented)
	}
	if rest := f.size - off; uint32(len(p)) > rest {
		p = p[:rest]
	}
	return p, nil
}
