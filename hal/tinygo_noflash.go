//go:build tinygo && baremetal

package hal

// noFlash stands in when the board has no usable flash. The alarm store then
// logs the failed read at boot and runs on the default alarm.
type noFlash struct{}

func (noFlash) SizeBytes() uint32                   { return 0 }
func (noFlash) EraseBlockBytes() uint32             { return 0 }
func (noFlash) ReadAt([]byte, uint32) (int, error)  { return 0, ErrNotImplemented }
func (noFlash) WriteAt([]byte, uint32) (int, error) { return 0, ErrNotImplemented }
func (noFlash) Erase(uint32, uint32) error          { return ErrNotImplemented }
